// Package detector synthesizes problem records from problem-hosting pages.
// Extraction is ordered selector probing: per field, the first selector with
// non-empty text wins.
package detector

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// ErrNoProblem means the page never produced a title within the per-selector
// waits. Detection aborts silently, callers log and move on.
var ErrNoProblem = errors.New("no problem found on page")

const (
	// MaxDescriptionLength matches the backend's stored bound
	MaxDescriptionLength = 1000

	defaultSelectorWait = 3 * time.Second
	unknownDifficulty   = "Unknown"
)

type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// ProblemRecord is the local, unpersisted view of a detected problem. It is
// discarded on navigation and rebuilt from scratch on the next page.
type ProblemRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Difficulty  string    `json:"difficulty"`
	Description string    `json:"description"`
	Examples    []Example `json:"examples"`
	Constraints []string  `json:"constraints"`
	URL         string    `json:"url"`
	Platform    string    `json:"platform"`
}

// PageSource abstracts the DOM behind detection. Text returns the trimmed
// text of the first element matching the selector, empty when nothing
// matches before the context expires.
type PageSource interface {
	Text(ctx context.Context, selector string) (string, error)
}

// fieldStrategy is one declarative extraction attempt list, tried in order
type fieldStrategy struct {
	field     string
	selectors []string
	required  bool
}

var strategies = []fieldStrategy{
	{
		field: "title",
		selectors: []string{
			`[data-cy="question-title"]`,
			`.text-title-large`,
			`.css-v3d350`,
			`.question-title h3`,
			`h1`,
		},
		required: true,
	},
	{
		field: "difficulty",
		selectors: []string{
			`[diff]`,
			`[class*="text-difficulty"]`,
			`.css-10o4wqw`,
			`[class*="difficulty"]`,
		},
	},
	{
		field: "description",
		selectors: []string{
			`[data-track-load="description_content"]`,
			`.question-content`,
			`.content__u3I1`,
			`.elfjS`,
		},
	},
}

type Detector struct {
	Source PageSource

	// per-selector wait before moving on to the next candidate
	SelectorWait time.Duration
}

func New(source PageSource) *Detector {
	return &Detector{
		Source:       source,
		SelectorWait: defaultSelectorWait,
	}
}

// Detect classifies the url and probes the page for problem metadata.
// Returns ErrNoProblem for non-problem pages and for pages where no title
// selector matched in time.
func (d *Detector) Detect(ctx context.Context, pageURL string) (*ProblemRecord, error) {
	if !IsProblemURL(pageURL) {
		return nil, ErrNoProblem
	}

	fields := make(map[string]string, len(strategies))
	for _, strategy := range strategies {
		value := d.probe(ctx, strategy)
		if value == "" && strategy.required {
			log.WithField("url", pageURL).Info("no title found, aborting detection")
			return nil, ErrNoProblem
		}
		fields[strategy.field] = value
	}

	difficulty := fields["difficulty"]
	if difficulty == "" {
		difficulty = unknownDifficulty
	}

	description := truncateRunes(fields["description"], MaxDescriptionLength)

	record := &ProblemRecord{
		ID:          SlugFromURL(pageURL),
		Title:       fields["title"],
		Difficulty:  difficulty,
		Description: description,
		Examples:    []Example{},
		Constraints: []string{},
		URL:         pageURL,
		Platform:    PlatformFromURL(pageURL),
	}

	log.WithFields(log.Fields{
		"id":         record.ID,
		"title":      record.Title,
		"difficulty": record.Difficulty,
	}).Info("detected problem")

	return record, nil
}

// probe tries the strategy's selectors in order, giving each one the
// per-selector wait. First non-empty text wins.
func (d *Detector) probe(ctx context.Context, strategy fieldStrategy) string {
	wait := d.SelectorWait
	if wait <= 0 {
		wait = defaultSelectorWait
	}

	for _, selector := range strategy.selectors {
		selectorCtx, cancel := context.WithTimeout(ctx, wait)
		text, err := d.Source.Text(selectorCtx, selector)
		cancel()
		if err != nil {
			log.Debugf("selector %q failed for %s, %v", selector, strategy.field, err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

// truncateRunes caps s at max characters. Problem statements carry math
// symbols, cutting bytes would split a rune and corrupt the stored text.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// IsProblemURL reports whether the url belongs to a single-problem page.
// Submission listings under a problem are explicitly not problem pages.
func IsProblemURL(pageURL string) bool {
	return strings.Contains(pageURL, "/problems/") &&
		!strings.Contains(pageURL, "/submissions/")
}

// SlugFromURL extracts the problem id, the path segment after /problems/.
// "https://leetcode.com/problems/two-sum/" yields "two-sum".
func SlugFromURL(pageURL string) string {
	_, after, found := strings.Cut(pageURL, "/problems/")
	if !found {
		return ""
	}
	slug, _, _ := strings.Cut(after, "/")
	slug, _, _ = strings.Cut(slug, "?")
	slug, _, _ = strings.Cut(slug, "#")
	return slug
}

// PlatformFromURL derives the platform name from the host, "leetcode.com"
// yields "leetcode"
func PlatformFromURL(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}
	host := strings.TrimPrefix(parsed.Host, "www.")
	platform, _, _ := strings.Cut(host, ".")
	return platform
}
