package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/diag"
	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/project"
	"lumen/internal/source"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.lm>...",
	Short: "Run file-identity diagnostics over lumen source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	diagCmd.Flags().Bool("context", false, "print source lines with caret underlines")
	diagCmd.Flags().String("path-mode", "as-is", "file path display (as-is|relative|basename)")
	diagCmd.Flags().String("base-dir", "", "base directory for relative path display")
	diagCmd.Flags().String("locale-file", "", "TOML message table overriding the built-in texts")
	diagCmd.Flags().Int("jobs", 0, "max parallel file reads (0=auto)")
	diagCmd.Flags().Bool("disk-cache", false, "enable the persistent diagnostics cache")
	diagCmd.Flags().String("cache-dir", "", "diagnostics cache directory (default: XDG cache)")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}

	if localeFile, _ := cmd.Flags().GetString("locale-file"); localeFile != "" {
		if err := diag.LoadLocaleFile(localeFile); err != nil {
			return err
		}
	}

	maxDiags, _ := cmd.Flags().GetInt("max-diagnostics")
	if maxDiags <= 0 {
		maxDiags = cfg.MaxDiagnostics
	}
	jobs, _ := cmd.Flags().GetInt("jobs")

	opts := &driver.DiagnoseOptions{
		MaxDiagnostics: maxDiags,
		Jobs:           jobs,
		Canon:          source.CaseSensitive,
	}
	if !cfg.CaseSensitive {
		opts.Canon = source.CaseInsensitive
	}
	if enabled, _ := cmd.Flags().GetBool("disk-cache"); enabled {
		cacheDir, _ := cmd.Flags().GetString("cache-dir")
		cache, err := driver.OpenDiskCache(cacheDir)
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	res, err := driver.Diagnose(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	if err := renderDiagnostics(cmd, res); err != nil {
		return err
	}
	if showTimings, _ := cmd.Flags().GetBool("timings"); showTimings {
		fmt.Fprint(os.Stderr, res.Timing.Summary())
	}
	if res.Bag.HasErrors() {
		return fmt.Errorf("diagnostics reported errors")
	}
	return nil
}

func loadProjectConfig(cmd *cobra.Command) (project.Config, error) {
	path, _ := cmd.Flags().GetString("project")
	if path == "" {
		path = project.ManifestName
	}
	return project.Load(path)
}

func renderDiagnostics(cmd *cobra.Command, res *driver.DiagnoseResult) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return diagfmt.JSON(os.Stdout, res.Bag, diagfmt.JSONOpts{IncludePositions: true})
	case "pretty":
		colorMode, _ := cmd.Flags().GetString("color")
		withContext, _ := cmd.Flags().GetBool("context")
		baseDir, _ := cmd.Flags().GetString("base-dir")
		opts := diagfmt.PrettyOpts{
			Color:    useColor(colorMode, os.Stdout),
			Context:  withContext,
			BaseDir:  baseDir,
			PathMode: parsePathMode(cmd),
		}
		diagfmt.Pretty(os.Stdout, res.Bag, opts)
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func parsePathMode(cmd *cobra.Command) diagfmt.PathMode {
	mode, _ := cmd.Flags().GetString("path-mode")
	switch mode {
	case "relative":
		return diagfmt.PathModeRelative
	case "basename":
		return diagfmt.PathModeBasename
	}
	return diagfmt.PathModeAsIs
}
