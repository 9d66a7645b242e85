package policy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/mock"
	"github.com/NekoNekoNiko120/relay/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprover(t *testing.T) {
	t.Parallel()

	t.Run("allow pattern approves", func(t *testing.T) {
		t.Parallel()
		p, err := policy.New([]string{"docs/**"}, nil)
		require.NoError(t, err)

		ok, err := p.RequestApproval(context.Background(), "apply edit?", "docs/guide/intro.md")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("deny wins over allow", func(t *testing.T) {
		t.Parallel()
		p, err := policy.New([]string{"**/*.go"}, []string{"vendor/**"})
		require.NoError(t, err)

		ok, err := p.RequestApproval(context.Background(), "apply edit?", "vendor/lib/lib.go")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unmatched target without fallback is rejected", func(t *testing.T) {
		t.Parallel()
		p, err := policy.New([]string{"docs/**"}, nil)
		require.NoError(t, err)

		ok, err := p.RequestApproval(context.Background(), "apply edit?", "main.go")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unmatched target defers to fallback", func(t *testing.T) {
		t.Parallel()
		fallback := &mock.Approver{
			RequestApprovalFn: func(_ context.Context, _, targetID string) (bool, error) {
				assert.Equal(t, "main.go", targetID)
				return true, nil
			},
		}
		p, err := policy.New([]string{"docs/**"}, nil, policy.WithFallback(fallback))
		require.NoError(t, err)

		ok, err := p.RequestApproval(context.Background(), "apply edit?", "main.go")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fallback error propagates", func(t *testing.T) {
		t.Parallel()
		fallback := &mock.Approver{
			RequestApprovalFn: func(context.Context, string, string) (bool, error) {
				return false, errors.New("prompt failed")
			},
		}
		p, err := policy.New(nil, nil, policy.WithFallback(fallback))
		require.NoError(t, err)

		_, err = p.RequestApproval(context.Background(), "apply edit?", "main.go")
		require.Error(t, err)
	})

	t.Run("invalid pattern fails construction", func(t *testing.T) {
		t.Parallel()
		_, err := policy.New([]string{"[invalid"}, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, relay.ErrConfiguration))
	})
}
