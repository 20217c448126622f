// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program ghactivity prints the recent public activity of a GitHub user.
//
// Usage:
//
//	ghactivity [flags] <username>
//
// Settings are read from $XDG_CONFIG_HOME/ghactivity/config.json (or the file
// named by --config) if it exists, then from the GITHUB_TOKEN environment
// variable, then from flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/ghactivity"
	"github.com/creachadair/ghactivity/fetch"
	"github.com/creachadair/ghactivity/format"
	"github.com/creachadair/ghactivity/internal/config"
	"github.com/creachadair/mds/mapset"
	"github.com/spf13/pflag"
)

// Overridden by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	getenv           = os.Getenv
)

// errUsage is reported when the command line is not well-formed. The usage
// message has already been printed.
var errUsage = errors.New("usage error")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	token      string
	baseURL    string
	pages      int
	perPage    int
	public     bool
	kinds      []string
	limit      int
	verbose    bool
	version    bool
}

func run(ctx context.Context, args []string) error {
	var f flags
	fs := pflag.NewFlagSet("ghactivity", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "configuration file (default: "+defaultConfigPath()+")")
	fs.StringVar(&f.token, "token", "", "GitHub API token (overrides $"+config.TokenEnv+")")
	fs.StringVar(&f.baseURL, "base-url", "", "GitHub API base URL (default: "+fetch.DefaultBaseURL+")")
	fs.IntVar(&f.pages, "pages", 1, "maximum number of pages to fetch")
	fs.IntVar(&f.perPage, "per-page", 0, "events per page, at most 100 (default: server choice)")
	fs.BoolVar(&f.public, "public", false, "list only public events")
	fs.StringArrayVar(&f.kinds, "kind", nil, "show only events of this type (repeatable)")
	fs.IntVar(&f.limit, "limit", 0, "show at most this many events (0 means no limit)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&f.version, "version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ghactivity [flags] <username>")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		fs.Usage()
		return errUsage
	}
	if f.version {
		fmt.Fprintln(stdout, "ghactivity", version())
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	user := fs.Arg(0)

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(getenv)
	if fs.Changed("token") {
		cfg.Token = f.token
	}
	if fs.Changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if fs.Changed("pages") || cfg.Pages == 0 {
		cfg.Pages = f.pages
	}
	if fs.Changed("per-page") {
		cfg.PerPage = f.perPage
	}
	if fs.Changed("public") {
		cfg.PublicOnly = f.public
	}
	if fs.Changed("kind") {
		cfg.Kinds = f.kinds
	}
	logger.Debug("configuration loaded", "pages", cfg.Pages, "perPage", cfg.PerPage,
		"public", cfg.PublicOnly, "kinds", cfg.Kinds, "auth", cfg.Token != "")

	cli, err := fetch.New(ctx, cfg.FetchConfig(logger))
	if err != nil {
		return err
	}
	evts, err := cli.Events(ctx, user)
	if err != nil {
		if fetch.IsNotFound(err) {
			return fmt.Errorf("user %q not found", user)
		}
		return err
	}

	evts = filterKinds(evts, cfg.Kinds)
	if f.limit > 0 && len(evts) > f.limit {
		evts = evts[:f.limit]
	}
	if len(evts) == 0 {
		fmt.Fprintln(stdout, format.NoEvents(user))
		return nil
	}

	bold := lipgloss.NewRenderer(stdout).NewStyle().Bold(true)
	fmt.Fprintln(stdout, bold.Render(format.Header(user, len(evts))))
	fmt.Fprintln(stdout)
	return format.Write(stdout, evts)
}

// filterKinds returns the elements of evts whose kind is among kinds.
// If kinds is empty, evts is returned unmodified.
func filterKinds(evts []ghactivity.Event, kinds []string) []ghactivity.Event {
	if len(kinds) == 0 {
		return evts
	}
	keep := mapset.New(kinds...)
	var out []ghactivity.Event
	for _, e := range evts {
		if keep.Has(e.Kind) {
			out = append(out, e)
		}
	}
	return out
}

func defaultConfigPath() string {
	p, err := config.DefaultPath()
	if err != nil {
		return "none"
	}
	return p
}

func version() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}
