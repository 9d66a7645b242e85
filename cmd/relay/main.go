// Command relay runs one tool invocation through the redirection engine.
//
// Usage:
//
//	GEMINI_API_KEY=gk-...   relay [flags] TOOL [JSON-INPUT]
//	ANTHROPIC_API_KEY=sk-... relay [flags] TOOL [JSON-INPUT]
//
// The tool input is a JSON object, given as the second argument or piped
// on stdin. Tools matching the configured redirect patterns are routed to
// the local backends; edit-class tools open a diff preview and wait for
// approval before any byte reaches disk.
//
// Flags:
//
//	-config string    Path to config file (default .relay/config.json)
//	-provider string  Merge provider: anthropic, gemini (auto-detected from env vars if omitted)
//	-api-key string   API key (overrides provider's env var)
//	-yes              Approve edits without prompting
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/NekoNekoNiko120/relay"
	bt "github.com/NekoNekoNiko120/relay/bubbletea"
	"github.com/NekoNekoNiko120/relay/builtin"
	"github.com/NekoNekoNiko120/relay/edit"
	"github.com/NekoNekoNiko120/relay/engine"
	"github.com/NekoNekoNiko120/relay/fs"
	relayjson "github.com/NekoNekoNiko120/relay/json"
	"github.com/NekoNekoNiko120/relay/policy"
	"github.com/NekoNekoNiko120/relay/preview"
	"github.com/NekoNekoNiko120/relay/route"
)

const defaultConfigPath = ".relay/config.json"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "relay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath   = flag.String("config", defaultConfigPath, "Path to config file")
		providerFlag = flag.String("provider", "", "Merge provider: anthropic, gemini (auto-detected from env vars if omitted)")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
		autoApprove  = flag.Bool("yes", false, "Approve edits without prompting")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		return fmt.Errorf("usage: relay [flags] TOOL [JSON-INPUT]")
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	req, err := parseRequest(flag.Args(), os.Stdin)
	if err != nil {
		return err
	}

	// Routing.
	registry, err := route.NewRegistry(cfg.Rules)
	if err != nil {
		return err
	}
	resolver := route.NewResolver(localBackends())
	dispatcher, err := route.NewDispatcher(registry, resolver, cfg.RedirectPatterns)
	if err != nil {
		return err
	}

	// Documents and previews.
	store := fs.NewStore()
	sessions := preview.NewRegistry(store)

	// Merge provider. Resolved lazily enough to keep non-edit invocations
	// working without an API key.
	merger, mergerErr := resolveMerger(ctx, *providerFlag, *apiKey,
		os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("GEMINI_API_KEY"))
	if mergerErr != nil {
		merger = unavailableMerger{err: mergerErr}
	}

	approver, err := buildApprover(cfg, sessions, *autoApprove)
	if err != nil {
		return err
	}

	editOpts := []edit.Option{edit.WithEventHandler(printEvent)}
	if cfg.MergeTimeout > 0 {
		editOpts = append(editOpts, edit.WithTimeout(cfg.MergeTimeout))
	}
	runner := builtin.NewRunner()
	editor := edit.New(store, merger, approver, sessions, editOpts...)
	eng := engine.New(dispatcher, runner, &localInvoker{runner: runner}, editor,
		engine.WithEventHandler(printEvent))

	res := eng.Invoke(ctx, req)
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprint(os.Stdout, res.Output)
	return nil
}

// loadConfig reads the config file. A missing file at the default path is
// tolerated: the engine runs with everything passing through.
func loadConfig(path string) (relayjson.Config, error) {
	cfg, err := relayjson.Load(path)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, os.ErrNotExist) && path == defaultConfigPath:
		return relayjson.Config{}, nil
	default:
		return relayjson.Config{}, fmt.Errorf("load config: %w", err)
	}
}

// parseRequest builds the tool request from argv: the tool name plus a JSON
// input object, given inline or piped on stdin.
func parseRequest(args []string, stdin io.Reader) (relay.ToolRequest, error) {
	req := relay.ToolRequest{Name: args[0]}

	var raw []byte
	if len(args) > 1 {
		raw = []byte(args[1])
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return relay.ToolRequest{}, fmt.Errorf("read input: %w", err)
		}
		raw = data
	}
	if len(raw) == 0 {
		req.Input = map[string]any{}
		return req, nil
	}
	if err := json.Unmarshal(raw, &req.Input); err != nil {
		return relay.ToolRequest{}, fmt.Errorf("tool input must be a JSON object: %w", err)
	}
	return req, nil
}

// buildApprover assembles the approval chain: policy patterns first, the
// interactive prompt for everything the policy does not cover.
func buildApprover(cfg relayjson.Config, sessions *preview.Registry, autoApprove bool) (relay.Approver, error) {
	if autoApprove {
		return approveAll{}, nil
	}
	prompt := bt.NewApprover(sessions, relay.DefaultTheme())
	return policy.New(cfg.ApproveAllow, cfg.ApproveDeny, policy.WithFallback(prompt))
}

// approveAll approves everything. Selected with -yes.
type approveAll struct{}

func (approveAll) RequestApproval(context.Context, string, string) (bool, error) {
	return true, nil
}

// unavailableMerger surfaces the provider resolution failure at merge time,
// so invocations that never merge are unaffected.
type unavailableMerger struct {
	err error
}

func (m unavailableMerger) Merge(context.Context, relay.MergeRequest) (relay.MergeResult, error) {
	return relay.MergeResult{}, fmt.Errorf("merge provider: %w", m.err)
}

func printEvent(evt relay.Event) {
	switch e := evt.(type) {
	case relay.EventPassThrough:
		fmt.Fprintf(os.Stderr, "run %s\n", e.Tool)
	case relay.EventRedirected:
		fmt.Fprintf(os.Stderr, "redirect %s -> %s %s\n", e.Tool, e.BackendID, e.Operation)
	case relay.EventPreviewOpened:
		fmt.Fprintf(os.Stderr, "preview %s +%d -%d\n", e.TargetID, e.Added, e.Deleted)
	case relay.EventCommitted:
		fmt.Fprintf(os.Stderr, "committed %s\n", e.TargetID)
	case relay.EventReverted:
		fmt.Fprintf(os.Stderr, "reverted %s (%s)\n", e.TargetID, e.Reason)
	}
}

// Interface compliance checks.
var (
	_ relay.Approver     = approveAll{}
	_ relay.MergeService = unavailableMerger{}
)
