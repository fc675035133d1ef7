package hint_service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service/problem_service"
	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
)

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	geminiModel    = "gemini-pro"

	// free tier allows 15 requests per minute, stay one under the limit
	maxRequestsPerMinute = 14
	rateWindow           = time.Minute

	geminiMaxRetries  = 3
	hintCacheSize     = 512
	geminiHTTPTimeout = 30 * time.Second
)

// GeminiProvider generates hints with the Generative Language API. Responses
// are cached per (title, difficulty, level) so repeated unlocks of the same
// hint never burn quota.
type GeminiProvider struct {
	apiKey string
	model  string
	client *http.Client
	cache  *lru.Cache[string, string]

	mu           sync.Mutex
	requestTimes []time.Time
}

func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w, gemini api key is required", mentor_errors.ErrInvalidRequest)
	}
	cache, err := lru.New[string, string](hintCacheSize)
	if err != nil {
		return nil, fmt.Errorf("cannot create hint cache, %w", err)
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  geminiModel,
		client: &http.Client{Timeout: geminiHTTPTimeout},
		cache:  cache,
	}, nil
}

func (g *GeminiProvider) Hint(
	ctx context.Context,
	problem problem_service.Problem,
	level int,
	progress *UserProgress,
) (string, error) {
	key := cacheKey(problem, level)
	if hint, ok := g.cache.Get(key); ok {
		return hint, nil
	}

	prompt := g.buildPrompt(problem, level, progress)

	var hint string
	operation := func() error {
		if err := g.waitForSlot(ctx); err != nil {
			return backoff.Permanent(err)
		}
		generated, err := g.generateContent(ctx, prompt)
		if err != nil {
			log.Warnf("gemini request failed, %v", err)
			return err
		}
		hint = generated
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), geminiMaxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return "", fmt.Errorf("%w, %w", mentor_errors.ErrHintUnavailable, err)
	}

	hint = cleanHint(hint)
	g.cache.Add(key, hint)
	log.WithFields(log.Fields{
		"problem": problem.PlatformID,
		"level":   level,
		"length":  len(hint),
	}).Info("generated hint with gemini")
	return hint, nil
}

// waitForSlot blocks until a request slot is free in the sliding one minute
// window, or the context expires.
func (g *GeminiProvider) waitForSlot(ctx context.Context) error {
	for {
		g.mu.Lock()
		now := time.Now()
		kept := g.requestTimes[:0]
		for _, stamp := range g.requestTimes {
			if now.Sub(stamp) < rateWindow {
				kept = append(kept, stamp)
			}
		}
		g.requestTimes = kept

		if len(g.requestTimes) < maxRequestsPerMinute {
			g.requestTimes = append(g.requestTimes, now)
			g.mu.Unlock()
			return nil
		}
		oldest := g.requestTimes[0]
		g.mu.Unlock()

		wait := rateWindow - now.Sub(oldest) + time.Second
		log.Warnf("gemini rate limit reached, waiting %v", wait)
		select {
		case <-ctx.Done():
			return errors.Join(mentor_errors.ErrRateLimited, ctx.Err())
		case <-time.After(wait):
		}
	}
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiProvider) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: 200,
			Temperature:     0.7,
			TopP:            0.8,
			TopK:            40,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(geminiEndpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w, gemini returned status %d", mentor_errors.ErrHttpResponse, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w, empty response from gemini", mentor_errors.ErrHttpResponse)
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w, empty response from gemini", mentor_errors.ErrHttpResponse)
	}
	return text, nil
}

func (g *GeminiProvider) buildPrompt(
	problem problem_service.Problem,
	level int,
	progress *UserProgress,
) string {
	var b strings.Builder

	switch level {
	case 1:
		b.WriteString("You are a coding mentor helping a student with a programming problem. ")
		b.WriteString("Provide a Level 1 hint that identifies the problem type and suggests the general approach WITHOUT giving away the solution.\n\n")
	case 2:
		b.WriteString("You are a coding mentor providing a Level 2 hint. The student already received Level 1 guidance. ")
		b.WriteString("Build upon it with more specific algorithmic guidance, the step-by-step approach and complexity considerations, still without exact implementation code.\n\n")
	default:
		b.WriteString("You are a coding mentor providing a Level 3 hint, the most detailed hint before revealing the full solution. ")
		b.WriteString("Provide implementation-level guidance, coding patterns and pseudocode structure, but let the student write the actual code.\n\n")
	}

	fmt.Fprintf(&b, "Problem: %s\n", problem.Title)
	fmt.Fprintf(&b, "Difficulty: %s\n", problem.Difficulty)
	fmt.Fprintf(&b, "Description: %s\n", problem.Description)

	for prev := 1; prev < level; prev++ {
		if hint, ok := g.cache.Get(cacheKey(problem, prev)); ok {
			fmt.Fprintf(&b, "Previous Level %d Hint: %s\n", prev, hint)
		}
	}

	if level == MaxHintLevel && progress != nil {
		fmt.Fprintf(
			&b,
			"User Progress: %d lines written, has function: %t, has loop: %t, time spent: %ds\n",
			progress.LinesOfCode, progress.HasFunction, progress.HasLoop, progress.TimeSpent,
		)
	}

	b.WriteString("\nKeep it educational and encouraging. Provide only the hint text, nothing else:")
	return b.String()
}

func cacheKey(problem problem_service.Problem, level int) string {
	key := fmt.Sprintf("%s_%s_%d", problem.Title, problem.Difficulty, level)
	return strings.ReplaceAll(strings.ToLower(key), " ", "_")
}

var hintPrefixes = []string{
	"here's a hint:",
	"here's your hint:",
	"for this problem:",
	"level 1 hint:",
	"level 2 hint:",
	"level 3 hint:",
	"hint:",
}

// cleanHint strips the boilerplate prefixes the model tends to add despite
// the prompt asking for hint text only.
func cleanHint(hint string) string {
	cleaned := strings.TrimSpace(hint)
	for _, prefix := range hintPrefixes {
		if strings.HasPrefix(strings.ToLower(cleaned), prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
		}
	}
	return cleaned
}
