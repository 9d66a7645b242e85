package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/NekoNekoNiko120/relay"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ relay.MergeService = (*Client)(nil)

// Client implements [relay.MergeService] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-3.1-pro-preview.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Merge sends the merge prompt to the Gemini API and returns the complete
// merged document extracted from the response.
func (c *Client) Merge(ctx context.Context, req relay.MergeRequest) (relay.MergeResult, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: BuildPrompt(req)}},
	}}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: defaultMaxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		if ctx.Err() != nil {
			return relay.MergeResult{}, ctx.Err()
		}
		return relay.MergeResult{}, fmt.Errorf("gemini: %w: %s", relay.ErrNetwork, err)
	}

	merged, err := ExtractMerged(responseText(resp))
	if err != nil {
		return relay.MergeResult{}, err
	}
	return relay.MergeResult{MergedContent: merged}, nil
}

const systemPrompt = `You are a code merging assistant. You are given the original content of a document, a proposed edit sketch, and instructions. Apply the edit to the original and return the COMPLETE updated document inside a single fenced code block. Do not add commentary, do not elide unchanged sections.`

// BuildPrompt assembles the user prompt for a merge request.
// Exported for testing.
func BuildPrompt(req relay.MergeRequest) string {
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

// ExtractMerged pulls the merged document out of a model response. The
// content of the first fenced code block wins; a response with no fence is
// taken verbatim. An empty response is a parse failure.
// Exported for testing.
func ExtractMerged(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("gemini: empty response: %w", relay.ErrParse)
	}

	start := strings.Index(text, "```")
	if start == -1 {
		return text, nil
	}
	rest := text[start+3:]
	// Skip the info string on the opening fence line.
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", fmt.Errorf("gemini: unterminated code fence: %w", relay.ErrParse)
	}
	merged := strings.TrimSuffix(rest[:end], "\n")
	if strings.TrimSpace(merged) == "" {
		return "", fmt.Errorf("gemini: empty merged document: %w", relay.ErrParse)
	}
	return merged, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Thought {
				continue
			}
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
