package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/turbodash/internal/config"
)

// Init-specific flag values.
var (
	initForce bool
	initTitle string
)

// defaultDeclaration is the file init writes when no path is given.
const defaultDeclaration = "dashboard.yaml"

// initCmd writes a starter declaration file.
var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter declaration file",
	Long: `Write a starter dashboard declaration built on the bundled gapminder
sample, ready for 'turbodash serve'. The format follows the file extension:
.yaml, .yml or .toml. Defaults to ` + defaultDeclaration + `.

This command is non-destructive by default: it refuses to overwrite an
existing file. Use --force to replace it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing declaration file")
	initCmd.Flags().StringVar(&initTitle, "title", "Gapminder", "dashboard title")
}

func runInit(cmd *cobra.Command, args []string) error {
	arg := defaultDeclaration
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := cmdFS.Abs(arg)
	if err != nil {
		return exitError(ExitInvalidArgs, "turbodash: cannot resolve path %q (%v)", arg, err)
	}
	syntax, err := config.SyntaxOf(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "turbodash: %v", err)
	}
	if info, err := cmdFS.Stat(path); err == nil {
		if info.IsDir() {
			return exitError(ExitInvalidArgs, "turbodash: %q is a directory", arg)
		}
		if !initForce {
			return exitError(ExitInvalidArgs, "turbodash: %q already exists (use --force to overwrite)", arg)
		}
	}

	var buf bytes.Buffer
	if err := config.Write(&buf, starter(initTitle), syntax); err != nil {
		return fmt.Errorf("turbodash: encoding declaration (%v)", err)
	}
	if err := cmdFS.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return exitError(ExitInvalidArgs, "turbodash: cannot create directory for %q (%v)", arg, err)
	}
	if err := cmdFS.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return exitError(ExitInvalidArgs, "turbodash: cannot write %q (%v)", arg, err)
	}
	slog.Info("wrote declaration", "path", path)

	// Print summary to cobra's stdout so tests can capture it.
	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "turbodash init complete")
	_, _ = fmt.Fprintf(w, "%s%s\n", green.Sprint("  + "), arg)
	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "Next steps:")
	_, _ = fmt.Fprintf(w, "  1. Run: turbodash validate %s\n", arg)
	_, _ = fmt.Fprintf(w, "  2. Run: turbodash serve %s\n", arg)
	_, _ = fmt.Fprintln(w)
	return nil
}

// starter returns a two-page dashboard over the gapminder sample.
func starter(title string) *config.Config {
	return &config.Config{
		Title:    title,
		Template: "turbo",
		Datasets: map[string]config.DatasetConfig{
			"gapminder": {Format: "sample", Path: "gapminder"},
		},
		Pages: []config.PageConfig{
			{
				URL:         "/life",
				Name:        "Life expectancy",
				Dataset:     "gapminder",
				Description: "Life expectancy by country. Pick a **continent** and a range of years.",
				Filters: []config.FilterConfig{
					{Kind: "Dropdown", Column: "continent"},
					{Kind: "RangeSlider", Column: "year"},
				},
				Charts: []config.ChartConfig{
					{Kind: "line", Title: "Life expectancy", X: "year", Y: "lifeExp", Color: "country", Inputs: []string{"y"}},
					{Kind: "scatter", Title: "Wealth and health", X: "gdpPercap", Y: "lifeExp", Size: "pop", Color: "continent", HoverName: "country"},
				},
			},
			{
				URL:     "/map",
				Name:    "World map",
				Dataset: "gapminder",
				Filters: []config.FilterConfig{
					{Kind: "Slider", Column: "year", Default: 2007},
				},
				Charts: []config.ChartConfig{
					{Kind: "choropleth", Locations: "iso_alpha", Color: "lifeExp", HoverName: "country", Inputs: []string{"projection"}},
				},
			},
		},
	}
}
