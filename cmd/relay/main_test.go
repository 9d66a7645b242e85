package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/builtin"
	relayjson "github.com/NekoNekoNiko120/relay/json"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()

	t.Run("inline json input", func(t *testing.T) {
		t.Parallel()
		req, err := parseRequest([]string{"read", `{"file_path": "main.go"}`}, strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "read", req.Name)
		assert.Equal(t, map[string]any{"file_path": "main.go"}, req.Input)
	})

	t.Run("stdin input", func(t *testing.T) {
		t.Parallel()
		req, err := parseRequest([]string{"bash"}, strings.NewReader(`{"command": "ls"}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"command": "ls"}, req.Input)
	})

	t.Run("empty input yields empty object", func(t *testing.T) {
		t.Parallel()
		req, err := parseRequest([]string{"glob"}, strings.NewReader(""))
		require.NoError(t, err)
		assert.NotNil(t, req.Input)
		assert.Empty(t, req.Input)
	})

	t.Run("non-object input fails", func(t *testing.T) {
		t.Parallel()
		_, err := parseRequest([]string{"read", `"just a string"`}, strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing default path is tolerated", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(defaultConfigPath)
		require.NoError(t, err)
		assert.Empty(t, cfg.Rules)
	})

	t.Run("missing explicit path errors", func(t *testing.T) {
		t.Parallel()
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("loads an existing config", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.json")
		want := relayjson.Config{
			RedirectPatterns: []string{"write*"},
			Rules: []relay.RedirectionRule{{
				SourceTool:      "write_file",
				TargetKind:      "filesystem",
				TargetOperation: "fs.write",
				Transform:       relay.Transform{Family: relay.TransformWrite},
				Edit:            true,
			}},
			MergeTimeout: 60 * time.Second,
		}
		require.NoError(t, relayjson.Save(path, want))

		got, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestLocalBackends(t *testing.T) {
	t.Parallel()

	backends, err := localBackends().ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, backends, 2)

	kinds := map[string]bool{}
	for _, b := range backends {
		assert.True(t, b.Alive)
		kinds[b.Kind] = true
	}
	assert.True(t, kinds["filesystem"])
	assert.True(t, kinds["shell"])
}

func TestLocalInvoker(t *testing.T) {
	t.Parallel()

	t.Run("maps operations to builtin tools", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))

		inv := &localInvoker{runner: builtin.NewRunner()}
		res, err := inv.Invoke(context.Background(), relay.RedirectedInvocation{
			BackendID: "local-fs",
			Operation: "fs.read",
			Input:     map[string]any{"path": path},
		})
		require.NoError(t, err)
		assert.True(t, res.Success, res.Error)
		assert.Contains(t, res.Output, "hello")
	})

	t.Run("unknown operation is a tool failure", func(t *testing.T) {
		t.Parallel()
		inv := &localInvoker{runner: builtin.NewRunner()}
		res, err := inv.Invoke(context.Background(), relay.RedirectedInvocation{
			BackendID: "local-fs",
			Operation: "fs.teleport",
		})
		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "fs.teleport")
	})
}
