package relay

import "context"

// DocumentStore is the host document API. Targets are identified by path.
//
// ReplaceLines mutates only the displayed content — what the user sees while
// a preview is open. Persist makes the currently displayed content the
// document's real content. ReadLines returns the displayed content when a
// display mutation is in effect, the real content otherwise.
type DocumentStore interface {
	ReadLines(ctx context.Context, targetID string) ([]string, error)
	IsDirectory(ctx context.Context, targetID string) (bool, error)
	ReplaceLines(ctx context.Context, targetID string, lines []string) error
	Persist(ctx context.Context, targetID string) error
}
