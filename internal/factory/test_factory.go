package factory

import (
	"time"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/mocks"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/storage/memory"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/testutil"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/variant"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// It panics if the built-in variant files fail to load, since that is a
// programming error rather than a runtime condition.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	registry, err := variant.NewRegistry("", testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	app := newWithDependencies(store, registry, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
