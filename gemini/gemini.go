// Package gemini implements [relay.MergeService] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK: the merge prompt carries the
// original document, the proposed sketch, and the edit instructions, and
// the model returns the complete merged document.
package gemini

const (
	defaultModel     = "gemini-3.1-pro-preview"
	defaultMaxTokens = 65536
)
