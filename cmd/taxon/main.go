package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jward/taxon"
	"github.com/jward/taxon/internal/config"
	"github.com/jward/taxon/internal/universe"
	"github.com/spf13/cobra"
)

var flagFormat string

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "taxon",
	Short:         "Classify and describe a runtime's builtin namespace",
	Long:          "Taxon enumerates the predeclared universe scope, classifies every member into a fixed set of categories, and describes each one: type identity, supertype chain, method partition, and documentation.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// Bare invocation prints the summary.
	RunE: runSummary,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: text|json (default from config)")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

// validateFormat rejects unknown --format values before any command runs.
// Empty means "use the configured default".
func validateFormat(format string) error {
	switch format {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be text or json", format)
	}
}

// loadConfig loads configuration relative to the current working directory.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting cwd: %w", err)
	}
	return config.NewLoader(cwd).Load()
}

// outputFormat resolves the effective format: the flag wins over the config.
func outputFormat(cfg *config.Config) string {
	if flagFormat != "" {
		return flagFormat
	}
	return cfg.Output.Format
}

// newEngine builds the engine over the builtin universe with the configured
// extraction bounds.
func newEngine(cfg *config.Config) *taxon.Engine {
	return taxon.New(universe.Builtin(),
		taxon.WithMaxDocLines(cfg.Doc.MaxLines),
		taxon.WithMethodListCap(cfg.Output.MethodListCap),
		taxon.WithCacheSize(cfg.Cache.Size),
	)
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(format string, result CLIResult) error {
	if format == "text" {
		return outputResultText(result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as
// a CLIResult envelope. In text mode it goes to stderr.
func outputError(command, format string, err error) error {
	errorHandled = true
	if format == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// categoryLabels returns the fixed category labels in enumeration order.
func categoryLabels() []string {
	labels := make([]string, len(taxon.Categories))
	for i, cat := range taxon.Categories {
		labels[i] = string(cat)
	}
	return labels
}
