package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davetashner/turbodash/internal/config"
	"github.com/davetashner/turbodash/internal/dashboard"
	"github.com/davetashner/turbodash/internal/summary"
	"github.com/davetashner/turbodash/internal/table"
)

// Validate-specific flag values.
var validateSkipData bool

// validateCmd checks a declaration file without serving it.
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a declaration file",
	Long: `Validate a declaration file and report every problem found.

By default the datasets are loaded and the dashboard is assembled, which
also checks that filter and chart columns exist and that bound columns have
the right kinds. Use --skip-data to check only the file itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateSkipData, "skip-data", false,
		"check the declaration only; do not load datasets or assemble pages")
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := resolveFile(args[0])
	if err != nil {
		return err
	}

	var (
		tables map[string]*table.Table
		app    *dashboard.App
	)
	cfg, err := readDeclaration(path, "")
	if err == nil {
		err = config.Validate(cfg)
	}
	if err == nil && !validateSkipData {
		tables, err = config.Tables(cmd.Context(), cfg, filepath.Dir(path))
		if err == nil {
			var decl dashboard.Dashboard
			if decl, err = config.Declaration(cfg, tables); err == nil {
				app, err = dashboard.Assemble(decl)
			}
		}
	}

	w := cmd.OutOrStdout()
	if werr := summary.Validation(w, args[0], err); werr != nil {
		return werr
	}
	if err != nil {
		return exitError(ExitInvalidDeclaration, "")
	}
	if tables != nil {
		_, _ = fmt.Fprintln(w)
		if err := summary.Datasets(w, tables); err != nil {
			return err
		}
	}
	if app != nil {
		_, _ = fmt.Fprintln(w)
		if err := summary.Routes(w, app); err != nil {
			return err
		}
	}
	return nil
}
