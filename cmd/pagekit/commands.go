package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/pagekit/config"
	"github.com/randalmurphal/pagekit/page"
	"github.com/randalmurphal/pagekit/template"
	"github.com/randalmurphal/pagekit/truncate"
)

// defaultDescriptionLength suits a meta description.
const defaultDescriptionLength = 160

func (a *app) truncateCmd() *cobra.Command {
	var (
		length int
		marker string
		exact  bool
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "truncate [file]",
		Short: "Truncate HTML or text read from a file or stdin",
		Long: `Truncate shortens its input to a number of visible characters.

Tags cost nothing, each character reference counts as one character, and
tags left open by the cut are closed after the marker. Unless --exact is
set the cut backs off to the previous space. With --plain the input is cut
as a plain string. Flags override the configured truncate settings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			opts := a.cfg.Truncate
			if cmd.Flags().Changed("length") {
				opts.MaxLength = length
			}
			if cmd.Flags().Changed("marker") {
				opts.Marker = marker
			}
			if cmd.Flags().Changed("exact") {
				opts.Exact = exact
			}
			if plain {
				opts.HTMLAware = false
			}

			out, truncated := truncate.New(opts).Truncate(input, opts.MaxLength)
			if !truncated {
				slog.Debug("input fits, left unchanged", slog.Int("max_length", opts.MaxLength))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", truncate.DefaultMaxLength, "Visible characters to keep")
	cmd.Flags().StringVarP(&marker, "marker", "m", truncate.DefaultMarker, "Text appended at the cut")
	cmd.Flags().BoolVar(&exact, "exact", false, "Cut exactly at the limit, even inside a word")
	cmd.Flags().BoolVar(&plain, "plain", false, "Treat input as plain text")

	return cmd
}

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <page>",
		Short: "Print a page's summary",
		Long: `Summary prints the summary of a page under the site configuration and
the page's own frontmatter overrides.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := page.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summarize(a.cfg, p))
			return nil
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "describe <page>",
		Short: "Print a plain-text description of a page",
		Long: `Describe prints the page's frontmatter description, or a plain-text
excerpt of its content cut at a word boundary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := page.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Excerpt(length))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", defaultDescriptionLength, "Characters to keep")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the pages in the pages directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pages, err := page.Discover(a.cfg.PagesDir)
			if err != nil {
				return err
			}
			if len(pages) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No pages in %s\n", a.cfg.PagesDir)
				return nil
			}
			for _, p := range pages {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Slug(), p.Excerpt(length))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 60, "Characters of each description to show")

	return cmd
}

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <template> [page]",
		Short: "Render a template with page variables",
		Long: `Render executes a Go text template.

With a page argument the template sees the page's variables: .title,
.description, .summary, .content, .slug and .path. Without one it sees
.pages, the variables of every page in the pages directory.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read template: %w", err)
			}

			vars, err := a.templateVars(args[1:])
			if err != nil {
				return err
			}

			out, err := template.NewEngineWithOptions(a.cfg.Truncate).Render(string(tmpl), vars)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func (a *app) templateVars(pagePaths []string) (map[string]any, error) {
	if len(pagePaths) > 0 {
		p, err := page.Load(pagePaths[0])
		if err != nil {
			return nil, err
		}
		return p.Vars(a.cfg.Summarizer()), nil
	}

	pages, err := page.Discover(a.cfg.PagesDir)
	if err != nil {
		return nil, err
	}
	s := a.cfg.Summarizer()
	list := make([]map[string]any, len(pages))
	for i, p := range pages {
		list[i] = p.Vars(s)
	}
	return map[string]any{"pages": list}, nil
}

func (a *app) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <page>",
		Short: "Re-print a page's summary whenever the config file changes",
		Long: `Watch prints the page's summary, then prints it again each time the file
named by --config changes. Invalid edits are logged and skipped. Stop with
Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath == "" {
				return errors.New("watch requires --config")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			for cfg := range config.NewWatcher(a.configPath).Watch(ctx) {
				p, err := page.Load(args[0])
				if err != nil {
					slog.Warn("page reload failed", slog.String("error", err.Error()))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), summarize(cfg, p))
			}
			return nil
		},
	}
}

// summarize summarizes the page with the configured summarizer.
func summarize(cfg *config.Config, p *page.Page) string {
	return p.SummaryHTML(cfg.Summarizer())
}
