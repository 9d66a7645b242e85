package relay_test

import (
	"errors"
	"testing"

	"github.com/NekoNekoNiko120/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformApply(t *testing.T) {
	t.Parallel()

	t.Run("write transform canonicalizes legacy content field", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformWrite}
		out, err := tr.Apply(map[string]any{"path": "f.txt", "file_text": "hi"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"path": "f.txt", "content": "hi"}, out)
	})

	t.Run("write transform accepts canonical fields unchanged", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformWrite}
		out, err := tr.Apply(map[string]any{"path": "f.txt", "content": "hi"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"path": "f.txt", "content": "hi"}, out)
	})

	t.Run("write transform fails when no content alias present", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformWrite}
		_, err := tr.Apply(map[string]any{"path": "f.txt"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, relay.ErrTransform))
		assert.Contains(t, err.Error(), "content")
	})

	t.Run("first alias in priority order wins", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformWrite}
		out, err := tr.Apply(map[string]any{
			"path":      "f.txt",
			"content":   "canonical",
			"file_text": "legacy",
		})
		require.NoError(t, err)
		assert.Equal(t, "canonical", out["content"])
		// The losing alias is consumed, not passed through.
		assert.NotContains(t, out, "file_text")
	})

	t.Run("read transform resolves path aliases", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformRead}
		out, err := tr.Apply(map[string]any{"file_path": "f.txt"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"path": "f.txt"}, out)
	})

	t.Run("move transform requires source and destination", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformMove}

		out, err := tr.Apply(map[string]any{"old_path": "a.txt", "new_path": "b.txt"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"source": "a.txt", "destination": "b.txt"}, out)

		_, err = tr.Apply(map[string]any{"old_path": "a.txt"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, relay.ErrTransform))
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("command transform accepts cmd and script aliases", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformCommand}
		for _, alias := range []string{"command", "cmd", "script"} {
			out, err := tr.Apply(map[string]any{alias: "ls"})
			require.NoError(t, err)
			assert.Equal(t, "ls", out["command"])
		}
	})

	t.Run("unconsumed fields pass through", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformCommand}
		out, err := tr.Apply(map[string]any{"command": "ls", "timeout": 5000})
		require.NoError(t, err)
		assert.Equal(t, 5000, out["timeout"])
	})

	t.Run("does not mutate the input map", func(t *testing.T) {
		t.Parallel()
		tr := relay.Transform{Family: relay.TransformWrite}
		in := map[string]any{"path": "f.txt", "file_text": "hi"}
		_, err := tr.Apply(in)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"path": "f.txt", "file_text": "hi"}, in)
	})
}

func TestTransformFamilyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "write", relay.TransformWrite.String())
	assert.Equal(t, "read", relay.TransformRead.String())
	assert.Equal(t, "move", relay.TransformMove.String())
	assert.Equal(t, "command", relay.TransformCommand.String())
}
