package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendLister(t *testing.T) {
	t.Parallel()

	t.Run("returns static Backends when no function set", func(t *testing.T) {
		t.Parallel()
		l := mock.BackendLister{Backends: []relay.Backend{{ID: "b1", Kind: "filesystem", Alive: true}}}
		got, err := l.ListActive(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "b1", got[0].ID)
	})

	t.Run("delegates to ListActiveFn when set", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("boom")
		l := mock.BackendLister{
			ListActiveFn: func(ctx context.Context) ([]relay.Backend, error) {
				return nil, wantErr
			},
		}
		_, err := l.ListActive(context.Background())
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestMergeService(t *testing.T) {
	t.Parallel()

	m := mock.MergeService{
		MergeFn: func(ctx context.Context, req relay.MergeRequest) (relay.MergeResult, error) {
			return relay.MergeResult{MergedContent: req.ProposedSketch}, nil
		},
	}
	got, err := m.Merge(context.Background(), relay.MergeRequest{ProposedSketch: "merged"})
	require.NoError(t, err)
	assert.Equal(t, "merged", got.MergedContent)
}

func TestApprover(t *testing.T) {
	t.Parallel()

	var gotTarget string
	a := mock.Approver{
		RequestApprovalFn: func(ctx context.Context, message, targetID string) (bool, error) {
			gotTarget = targetID
			return true, nil
		},
	}
	ok, err := a.RequestApproval(context.Background(), "msg", "f.txt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "f.txt", gotTarget)
}

func TestDocumentStore(t *testing.T) {
	t.Parallel()

	s := mock.DocumentStore{
		ReadLinesFn: func(ctx context.Context, targetID string) ([]string, error) {
			return []string{"a"}, nil
		},
		IsDirectoryFn: func(ctx context.Context, targetID string) (bool, error) {
			return false, nil
		},
		ReplaceLinesFn: func(ctx context.Context, targetID string, lines []string) error {
			return nil
		},
		PersistFn: func(ctx context.Context, targetID string) error {
			return nil
		},
	}

	lines, err := s.ReadLines(context.Background(), "f.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, lines)

	dir, err := s.IsDirectory(context.Background(), "f.txt")
	require.NoError(t, err)
	assert.False(t, dir)

	require.NoError(t, s.ReplaceLines(context.Background(), "f.txt", []string{"b"}))
	require.NoError(t, s.Persist(context.Background(), "f.txt"))
}

func TestToolRunner(t *testing.T) {
	t.Parallel()

	r := mock.ToolRunner{
		RunFn: func(ctx context.Context, req relay.ToolRequest) (relay.ToolResult, error) {
			return relay.Output("ran " + req.Name), nil
		},
	}
	got, err := r.Run(context.Background(), relay.ToolRequest{Name: "read"})
	require.NoError(t, err)
	assert.Equal(t, "ran read", got.Output)
}

func TestBackendInvoker(t *testing.T) {
	t.Parallel()

	b := mock.BackendInvoker{
		InvokeFn: func(ctx context.Context, inv relay.RedirectedInvocation) (relay.ToolResult, error) {
			return relay.Output(inv.Operation), nil
		},
	}
	got, err := b.Invoke(context.Background(), relay.RedirectedInvocation{Operation: "write_file"})
	require.NoError(t, err)
	assert.Equal(t, "write_file", got.Output)
}
