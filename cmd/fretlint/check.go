package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fretlint/internal/diag"
	"fretlint/internal/diagfmt"
	"fretlint/internal/driver"
)

// errViolationsFound signals exit status 1 after diagnostics were already
// printed; cobra's own error output stays silenced.
var errViolationsFound = errors.New("violations found")

var checkCmd = &cobra.Command{
	Use:   "check [flags] <chart.toml|directory>",
	Short: "Check a chart file or directory of charts against the active rule set",
	Long:  `Check validates every difficulty of a chart's guitar track and prints a diagnostic for each note pattern the selected mode disallows`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// init registers CLI flags for the check command used by runCheck.
func init() {
	checkCmd.Flags().Bool("pro", false, "validate against the Pro Mode rule set")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("cache", false, "enable persistent disk cache for validation results")
	checkCmd.Flags().Bool("with-codes", false, "include rule codes in pretty output")
	checkCmd.Flags().Bool("fail-on-violation", true, "exit with status 1 when any chart has violations")
}

// runCheck executes the "check" command: it parses command flags, validates
// the provided path (single chart file or directory), renders the results in
// the chosen output format, and exits with a non-zero status when any chart
// has violations.
func runCheck(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	pro, err := cmd.Flags().GetBool("pro")
	if err != nil {
		return fmt.Errorf("failed to get pro flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	withCodes, err := cmd.Flags().GetBool("with-codes")
	if err != nil {
		return fmt.Errorf("failed to get with-codes flag: %w", err)
	}
	failOnViolation, err := cmd.Flags().GetBool("fail-on-violation")
	if err != nil {
		return fmt.Errorf("failed to get fail-on-violation flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	var cache *driver.ResultCache
	if useCache {
		cache, err = driver.OpenResultCache("fretlint")
		if err != nil {
			return fmt.Errorf("failed to open result cache: %w", err)
		}
	}

	opts := driver.CheckOptions{
		Pro:            pro,
		MaxDiagnostics: maxDiagnostics,
		EnableTimings:  showTimings,
		Cache:          cache,
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var results []*driver.CheckResult
	if st.IsDir() {
		results, err = driver.CheckDir(cmd.Context(), filePath, opts, jobs)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	} else {
		result, err := driver.Check(cmd.Context(), filePath, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		results = []*driver.CheckResult{result}
	}

	exitCode := 0
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor,
		ShowCodes: withCodes,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludeCodes:   true,
		IncludeSeconds: true,
	}

	for idx, r := range results {
		if r.Bag.HasErrors() {
			exitCode = 1
		}
		r.Bag.Sort()

		switch format {
		case "pretty":
			if len(results) > 1 {
				if idx > 0 {
					fmt.Fprintln(os.Stdout)
				}
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			diagfmt.Pretty(os.Stdout, r.Bag, prettyOpts)
			if r.Bag.Len() == 0 && !quiet {
				fmt.Fprintln(os.Stdout, "no violations found")
			}
		case "short":
			output := diag.FormatGoldenDiagnostics(r.Bag.Items())
			if output != "" {
				fmt.Fprintln(os.Stdout, output)
			}
		case "json":
			if err := diagfmt.JSON(os.Stdout, r.Bag, jsonOpts); err != nil {
				return fmt.Errorf("failed to format diagnostics: %w", err)
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}

		if showTimings && r.Timing != nil && !quiet {
			fmt.Fprintf(os.Stdout, "%s: total %.2f ms\n", r.Path, r.Timing.TotalMS)
		}
	}

	if exitCode != 0 && failOnViolation {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errViolationsFound
	}
	return nil
}
