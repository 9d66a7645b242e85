// Package json persists engine configuration as versioned JSON: the
// redirection rule set, the redirect patterns, and the approval policy.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NekoNekoNiko120/relay"
)

// Config is the engine configuration loaded at startup.
type Config struct {
	// RedirectPatterns are doublestar globs; tool names matching any of
	// them are subject to redirection.
	RedirectPatterns []string

	// Rules is the redirection rule set, one per source tool.
	Rules []relay.RedirectionRule

	// ApproveAllow and ApproveDeny drive the policy approver. Empty lists
	// leave every decision to the interactive prompt.
	ApproveAllow []string
	ApproveDeny  []string

	// MergeTimeout bounds the remote merge wait. Zero means the default.
	MergeTimeout time.Duration
}

// envelope is the v1 wire format for a persisted configuration.
type envelope struct {
	Version          int        `json:"version"`
	RedirectPatterns []string   `json:"redirect_patterns"`
	Rules            []ruleDTO  `json:"rules"`
	Approve          approveDTO `json:"approve"`
	MergeTimeoutSecs int        `json:"merge_timeout_seconds,omitempty"`
}

// ruleDTO is the JSON representation of a RedirectionRule. The transform
// family travels as its string name.
type ruleDTO struct {
	SourceTool       string `json:"source_tool"`
	TargetKind       string `json:"target_kind"`
	TargetOperation  string `json:"target_operation"`
	PreferredBackend string `json:"preferred_backend,omitempty"`
	Transform        string `json:"transform"`
	Edit             bool   `json:"edit,omitempty"`
}

type approveDTO struct {
	Allow []string `json:"allow,omitempty"`
	Deny  []string `json:"deny,omitempty"`
}

// MarshalConfig serializes a Config to JSON in v1 envelope format.
func MarshalConfig(c Config) ([]byte, error) {
	env := envelope{
		Version:          1,
		RedirectPatterns: c.RedirectPatterns,
		Rules:            make([]ruleDTO, len(c.Rules)),
		Approve:          approveDTO{Allow: c.ApproveAllow, Deny: c.ApproveDeny},
		MergeTimeoutSecs: int(c.MergeTimeout / time.Second),
	}
	for i, r := range c.Rules {
		env.Rules[i] = ruleDTO{
			SourceTool:       r.SourceTool,
			TargetKind:       r.TargetKind,
			TargetOperation:  r.TargetOperation,
			PreferredBackend: r.PreferredBackend,
			Transform:        r.Transform.Family.String(),
			Edit:             r.Edit,
		}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalConfig deserializes a Config from JSON in v1 envelope format.
func UnmarshalConfig(data []byte) (Config, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Config{}, fmt.Errorf("unmarshal envelope: %w: %v", relay.ErrConfiguration, err)
	}
	if env.Version != 1 {
		return Config{}, fmt.Errorf("unsupported envelope version %d: %w", env.Version, relay.ErrConfiguration)
	}

	c := Config{
		RedirectPatterns: env.RedirectPatterns,
		Rules:            make([]relay.RedirectionRule, len(env.Rules)),
		ApproveAllow:     env.Approve.Allow,
		ApproveDeny:      env.Approve.Deny,
		MergeTimeout:     time.Duration(env.MergeTimeoutSecs) * time.Second,
	}
	for i, dto := range env.Rules {
		family, err := parseFamily(dto.Transform)
		if err != nil {
			return Config{}, fmt.Errorf("rule %d (%s): %w", i, dto.SourceTool, err)
		}
		c.Rules[i] = relay.RedirectionRule{
			SourceTool:       dto.SourceTool,
			TargetKind:       dto.TargetKind,
			TargetOperation:  dto.TargetOperation,
			PreferredBackend: dto.PreferredBackend,
			Transform:        relay.Transform{Family: family},
			Edit:             dto.Edit,
		}
	}
	return c, nil
}

// Save writes a Config to a JSON file atomically, creating parent
// directories as needed.
func Save(path string, c Config) error {
	data, err := MarshalConfig(c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Config from a JSON file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalConfig(data)
}

func parseFamily(name string) (relay.TransformFamily, error) {
	switch name {
	case "write":
		return relay.TransformWrite, nil
	case "read":
		return relay.TransformRead, nil
	case "move":
		return relay.TransformMove, nil
	case "command":
		return relay.TransformCommand, nil
	default:
		return 0, fmt.Errorf("unknown transform family %q: %w", name, relay.ErrConfiguration)
	}
}
