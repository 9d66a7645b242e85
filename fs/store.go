// Package fs implements the host document API over the local filesystem.
// Displayed content lives in an in-memory overlay so preview mutations are
// visible without touching the file; Persist writes the overlay through.
package fs

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/NekoNekoNiko120/relay"
)

// Interface compliance check.
var _ relay.DocumentStore = (*Store)(nil)

// Store is a filesystem-backed DocumentStore. Targets are file paths.
type Store struct {
	mu      sync.Mutex
	overlay map[string][]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{overlay: make(map[string][]string)}
}

// ReadLines returns the displayed content: the overlay when a display
// mutation is in effect, the file's content otherwise.
func (s *Store) ReadLines(_ context.Context, targetID string) ([]string, error) {
	s.mu.Lock()
	if lines, ok := s.overlay[targetID]; ok {
		out := make([]string, len(lines))
		copy(out, lines)
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	data, err := os.ReadFile(targetID)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document %q: %w", targetID, relay.ErrNotFound)
		}
		return nil, fmt.Errorf("read %q: %w", targetID, err)
	}
	return splitLines(string(data)), nil
}

// IsDirectory reports whether the target is a directory.
func (s *Store) IsDirectory(_ context.Context, targetID string) (bool, error) {
	info, err := os.Stat(targetID)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("document %q: %w", targetID, relay.ErrNotFound)
		}
		return false, fmt.Errorf("stat %q: %w", targetID, err)
	}
	return info.IsDir(), nil
}

// ReplaceLines sets the displayed content for the target. The file itself
// is untouched until Persist.
func (s *Store) ReplaceLines(_ context.Context, targetID string, lines []string) error {
	snapshot := make([]string, len(lines))
	copy(snapshot, lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay[targetID] = snapshot
	return nil
}

// Persist writes the displayed content to the file and clears the overlay.
// A no-op when no display mutation is in effect.
func (s *Store) Persist(_ context.Context, targetID string) error {
	s.mu.Lock()
	lines, ok := s.overlay[targetID]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(targetID); err == nil {
		perm = info.Mode().Perm()
	}

	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(targetID, []byte(content), perm); err != nil {
		return fmt.Errorf("persist %q: %w", targetID, err)
	}

	s.mu.Lock()
	delete(s.overlay, targetID)
	s.mu.Unlock()
	return nil
}

// splitLines splits file content into lines, treating the final line as a
// line even without a trailing newline. A trailing newline does NOT
// produce an empty final element.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
