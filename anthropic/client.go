package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/NekoNekoNiko120/relay"
)

// Interface compliance check.
var _ relay.MergeService = (*Client)(nil)

// Client implements [relay.MergeService] for the Anthropic Messages API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithModel sets the model ID.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Anthropic [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Merge sends the merge prompt to the Messages API and returns the merged
// document from the response's first text block.
func (c *Client) Merge(ctx context.Context, req relay.MergeRequest) (relay.MergeResult, error) {
	body, err := json.Marshal(apiRequest{
		Model:     c.model,
		MaxTokens: defaultMaxTokens,
		System:    systemPrompt,
		Messages:  []apiMessage{{Role: "user", Content: buildPrompt(req)}},
	})
	if err != nil {
		return relay.MergeResult{}, fmt.Errorf("anthropic: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return relay.MergeResult{}, fmt.Errorf("anthropic: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return relay.MergeResult{}, ctx.Err()
		}
		return relay.MergeResult{}, fmt.Errorf("anthropic: %w: %s", relay.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return relay.MergeResult{}, parseHTTPError(resp)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return relay.MergeResult{}, fmt.Errorf("anthropic: malformed response: %w", relay.ErrParse)
	}

	merged, err := extractMerged(apiResp)
	if err != nil {
		return relay.MergeResult{}, err
	}
	return relay.MergeResult{MergedContent: merged}, nil
}

const systemPrompt = `You are a code merging assistant. You are given the original content of a document, a proposed edit sketch, and instructions. Apply the edit to the original and return the COMPLETE updated document inside a single fenced code block. Do not add commentary, do not elide unchanged sections.`

func buildPrompt(req relay.MergeRequest) string {
	var b strings.Builder
	b.WriteString("Instructions:\n")
	b.WriteString(req.Instructions)
	b.WriteString("\n\nOriginal document:\n```\n")
	b.WriteString(req.OriginalContent)
	b.WriteString("\n```\n\nProposed edit:\n```\n")
	b.WriteString(req.ProposedSketch)
	b.WriteString("\n```\n")
	return b.String()
}

// extractMerged pulls the merged document out of the response: the content
// of the first fenced code block in the first text block, or the text
// verbatim when unfenced. Empty content is a parse failure.
func extractMerged(resp apiResponse) (string, error) {
	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("anthropic: empty response: %w", relay.ErrParse)
	}

	start := strings.Index(text, "```")
	if start == -1 {
		return text, nil
	}
	rest := text[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", fmt.Errorf("anthropic: unterminated code fence: %w", relay.ErrParse)
	}
	merged := strings.TrimSuffix(rest[:end], "\n")
	if strings.TrimSpace(merged) == "" {
		return "", fmt.Errorf("anthropic: empty merged document: %w", relay.ErrParse)
	}
	return merged, nil
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic: HTTP %d (failed to read body): %w", resp.StatusCode, relay.ErrNetwork)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fmt.Errorf("anthropic: HTTP %d: %s: %w", resp.StatusCode, string(body), relay.ErrNetwork)
	}
	return fmt.Errorf("anthropic: %s: %s: %w", apiErr.Error.Type, apiErr.Error.Message, relay.ErrNetwork)
}
