package variant

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/model"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Registry holds every loaded variant, keyed by name. It is populated once
// at construction and read-only afterwards, so lookups need no locking.
type Registry struct {
	logger   *slog.Logger
	variants map[string]*model.RuleConfig
}

// NewRegistry loads the built-in variants and, if overrideDir is non-empty,
// overlays any *.yaml files found there. An override with the same name as a
// built-in replaces it; a malformed file fails the whole load.
func NewRegistry(overrideDir string, logger *slog.Logger) (*Registry, error) {
	r := &Registry{
		logger:   logger,
		variants: make(map[string]*model.RuleConfig),
	}

	if err := r.loadFS(defaultsFS, "defaults"); err != nil {
		return nil, err
	}
	if overrideDir != "" {
		if err := r.loadFS(os.DirFS(overrideDir), "."); err != nil {
			return nil, fmt.Errorf("loading variants from %s: %w", overrideDir, err)
		}
	}

	logger.Info("variants loaded", "count", len(r.variants))
	return r, nil
}

func (r *Registry) loadFS(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		rc, err := Parse(name, data)
		if err != nil {
			return err
		}

		if _, exists := r.variants[rc.Name]; exists {
			r.logger.Debug("variant overridden", "variant", rc.Name, "file", path)
		}
		r.variants[rc.Name] = rc
		return nil
	})
}

// Get returns the named variant's rules
func (r *Registry) Get(name string) (*model.RuleConfig, error) {
	rc, ok := r.variants[name]
	if !ok {
		return nil, fmt.Errorf("variant %q: %w", name, model.ErrVariantNotFound)
	}
	return rc, nil
}

// Names returns every registered variant name in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered variant in name order
func (r *Registry) All() []*model.RuleConfig {
	out := make([]*model.RuleConfig, 0, len(r.variants))
	for _, name := range r.Names() {
		out = append(out, r.variants[name])
	}
	return out
}
