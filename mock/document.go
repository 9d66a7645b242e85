package mock

import (
	"context"

	"github.com/NekoNekoNiko120/relay"
)

// Interface compliance check.
var _ relay.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a test double for relay.DocumentStore.
// Set the function fields for the methods you need.
type DocumentStore struct {
	ReadLinesFn    func(ctx context.Context, targetID string) ([]string, error)
	IsDirectoryFn  func(ctx context.Context, targetID string) (bool, error)
	ReplaceLinesFn func(ctx context.Context, targetID string, lines []string) error
	PersistFn      func(ctx context.Context, targetID string) error
}

// ReadLines delegates to ReadLinesFn.
func (s *DocumentStore) ReadLines(ctx context.Context, targetID string) ([]string, error) {
	return s.ReadLinesFn(ctx, targetID)
}

// IsDirectory delegates to IsDirectoryFn.
func (s *DocumentStore) IsDirectory(ctx context.Context, targetID string) (bool, error) {
	return s.IsDirectoryFn(ctx, targetID)
}

// ReplaceLines delegates to ReplaceLinesFn.
func (s *DocumentStore) ReplaceLines(ctx context.Context, targetID string, lines []string) error {
	return s.ReplaceLinesFn(ctx, targetID, lines)
}

// Persist delegates to PersistFn.
func (s *DocumentStore) Persist(ctx context.Context, targetID string) error {
	return s.PersistFn(ctx, targetID)
}
