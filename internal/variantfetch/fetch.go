// Package variantfetch scrapes backgammon variant rule pages from
// bkgm.com and normalizes them into a uniform JSON schema. The pages are
// mostly unstructured prose, so the page text lands in the notes field;
// the remaining fields are placeholders for later hand-curation into
// rule configs.
package variantfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// BaseIndexURL is the variant index page on Backgammon Galore
const BaseIndexURL = "https://www.bkgm.com/variants/"

// Entry is the normalized record for one variant page. Every field is
// always present in the JSON output, empty when unknown.
type Entry struct {
	Name          string `json:"name"`
	SourceURL     string `json:"source_url"`
	Setup         string `json:"setup"`
	Movement      string `json:"movement"`
	Dice          string `json:"dice"`
	Hitting       string `json:"hitting"`
	BarEnter      string `json:"bar_enter"`
	ForcedMoves   string `json:"forced_moves"`
	CombinedMoves string `json:"combined_moves"`
	BearingOff    string `json:"bearing_off"`
	WinCondition  string `json:"win_condition"`
	SpecialRules  string `json:"special_rules"`
	Notes         string `json:"notes"`
}

// Fetcher downloads the variant index and the pages it links to
type Fetcher struct {
	indexURL   string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Fetcher. An empty indexURL uses BaseIndexURL; a nil
// logger discards output.
func New(indexURL string, logger *slog.Logger) *Fetcher {
	if indexURL == "" {
		indexURL = BaseIndexURL
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Fetcher{
		indexURL: indexURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FetchAll downloads the index, follows every variant link, and returns
// one Entry per page. A page that fails to download still yields an
// Entry recording the error in its notes, so one dead link does not
// lose the rest of the catalogue.
func (f *Fetcher) FetchAll(ctx context.Context) ([]Entry, error) {
	f.logger.Info("fetching variant index", slog.String("url", f.indexURL))

	indexHTML, err := f.get(ctx, f.indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetching index: %w", err)
	}

	links, err := ExtractLinks(f.indexURL, strings.NewReader(indexHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	f.logger.Info("found variant links", slog.Int("count", len(links)))

	entries := make([]Entry, 0, len(links))
	for _, link := range links {
		entry, err := f.fetchEntry(ctx, link)
		if err != nil {
			f.logger.Warn("failed to fetch variant page",
				slog.String("url", link),
				slog.String("error", err.Error()))
			entries = append(entries, Entry{
				Name:      InferNameFromURL(link),
				SourceURL: link,
				Notes:     fmt.Sprintf("Fetch error: %v", err),
			})
			continue
		}

		f.logger.Info("fetched variant", slog.String("name", entry.Name))
		entries = append(entries, entry)
	}

	return entries, nil
}

// fetchEntry downloads a single variant page and builds its Entry
func (f *Fetcher) fetchEntry(ctx context.Context, link string) (Entry, error) {
	pageHTML, err := f.get(ctx, link)
	if err != nil {
		return Entry{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return Entry{}, err
	}

	name := cleanTitle(doc.Find("title").First().Text())
	if name == "" {
		name = InferNameFromURL(link)
	}

	notes, err := ExtractText(strings.NewReader(pageHTML))
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:      name,
		SourceURL: link,
		Notes:     notes,
	}, nil
}

// get performs a GET request and returns the body as a string
func (f *Fetcher) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// ExtractLinks collects the variant page links from the index HTML.
// Only hrefs ending in .html count; relative links are resolved against
// baseURL and duplicates are dropped while preserving order.
func ExtractLinks(baseURL string, r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	var links []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !strings.HasSuffix(strings.ToLower(href), ".html") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		full := base.ResolveReference(ref).String()
		if _, dup := seen[full]; dup {
			return
		}
		seen[full] = struct{}{}
		links = append(links, full)
	})

	return links, nil
}

// ExtractText flattens a page into whitespace-normalized text, with
// script and style content stripped
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// InferNameFromURL derives a display name from the last path segment,
// e.g. ".../Plakoto-Express.html" becomes "Plakoto Express"
func InferNameFromURL(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}

	name := strings.TrimRight(path, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if strings.HasSuffix(strings.ToLower(name), ".html") {
		name = name[:len(name)-len(".html")]
	}

	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCase(name)
}

// titleNoise matches site branding that pollutes page titles
var titleNoise = regexp.MustCompile(`(?i)Backgammon Galore!|\s*Backgammon\s*Variants?`)

// cleanTitle strips site branding and leftover separators from a page title
func cleanTitle(title string) string {
	title = titleNoise.ReplaceAllString(strings.TrimSpace(title), "")
	return strings.Trim(title, " -|")
}

// titleCase uppercases the first letter of each word and lowercases the rest
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// WriteJSON writes entries as an indented JSON array
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
