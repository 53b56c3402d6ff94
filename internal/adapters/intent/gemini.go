package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-flash"

	defaultTimeout   = 20 * time.Second
	maxResponseBytes = 1 << 20
	apiKeyHeader     = "x-goog-api-key"
)

const promptTemplate = `The user wants to search for products. The user's request is: %q. ` +
	`Extract **all** product keywords the user wants to find and return a JSON object ` +
	`of the form {"keywords":["keyword 1","keyword 2",...]}. If no keyword is found, return an empty array.`

var errEmptyAnswer = errors.New("model returned no text")

// Extractor asks a Gemini model for the product keywords in a chat message.
type Extractor struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	Log        logrus.FieldLogger
}

var _ ports.KeywordExtractor = (*Extractor)(nil)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type keywordAnswer struct {
	Keywords []string `json:"keywords"`
}

// Keywords returns an empty slice when the model is unreachable or answers
// with anything other than a keyword object.
func (e *Extractor) Keywords(ctx context.Context, message string) []string {
	keywords, err := e.extract(ctx, message)
	if err != nil {
		e.logger().WithError(err).Warn("keyword extraction failed")
		return []string{}
	}

	return keywords
}

func (e *Extractor) extract(ctx context.Context, message string) ([]string, error) {
	if strings.TrimSpace(e.APIKey) == "" {
		return nil, errors.New("intent api key is not configured")
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, message)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("encode intent request: %w", err)
	}

	requestCtx, cancel := e.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, e.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, e.APIKey)

	resp, err := e.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request intent: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read intent response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("intent request failed with status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode intent response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, errEmptyAnswer
	}

	return ParseKeywords(decoded.Candidates[0].Content.Parts[0].Text)
}

// ParseKeywords reads a {"keywords":[...]} object from model output that may
// be wrapped in a markdown code fence. Blank and repeated keywords are dropped.
func ParseKeywords(text string) ([]string, error) {
	cleaned := stripFence(text)
	if cleaned == "" {
		return nil, errEmptyAnswer
	}

	if start, end := strings.Index(cleaned, "{"), strings.LastIndex(cleaned, "}"); start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}

	var answer keywordAnswer
	if err := json.Unmarshal([]byte(cleaned), &answer); err != nil {
		return nil, fmt.Errorf("decode keyword answer: %w", err)
	}

	keywords := make([]string, 0, len(answer.Keywords))
	seen := make(map[string]struct{}, len(answer.Keywords))
	for _, keyword := range answer.Keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		key := strings.ToLower(keyword)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keywords = append(keywords, keyword)
	}

	return keywords, nil
}

func stripFence(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

func (e *Extractor) endpoint() string {
	baseURL := e.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := e.Model
	if model == "" {
		model = DefaultModel
	}

	return strings.TrimRight(baseURL, "/") + "/models/" + model + ":generateContent"
}

func (e *Extractor) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return http.DefaultClient
}

func (e *Extractor) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

func (e *Extractor) logger() logrus.FieldLogger {
	if e.Log != nil {
		return e.Log
	}
	return logrus.StandardLogger()
}
