package main

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var (
	flagListMatch string
	flagAllMatch  string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-category counts for the builtin namespace",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return outputError("summary", flagFormat, err)
	}
	format := outputFormat(cfg)

	idx := newEngine(cfg).Inspect()
	sum := idx.Summary()
	return outputResult(format, CLIResult{
		Command:    "summary",
		Results:    sum,
		TotalCount: &sum.Total,
	})
}

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Describe a single builtin by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return outputError("describe", flagFormat, err)
	}
	format := outputFormat(cfg)

	engine := newEngine(cfg)
	idx := engine.Inspect()
	desc, err := engine.Describe(idx, args[0])
	if err != nil {
		return outputError("describe", format, err)
	}

	one := 1
	return outputResult(format, CLIResult{
		Command:    "describe",
		Results:    desc,
		TotalCount: &one,
	})
}

var listCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "List all builtins in a category",
	Long:  "Category labels are case-sensitive. Run 'taxon categories' for the fixed label set.",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListMatch, "match", "", "glob pattern filtering the listed names")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return outputError("list", flagFormat, err)
	}
	format := outputFormat(cfg)

	idx := newEngine(cfg).Inspect()
	names, err := idx.Names(args[0])
	if err != nil {
		return outputError("list", format,
			fmt.Errorf("%w (available: %s)", err, strings.Join(categoryLabels(), ", ")))
	}

	names, err = filterNames(names, flagListMatch)
	if err != nil {
		return outputError("list", format, err)
	}

	count := len(names)
	return outputResult(format, CLIResult{
		Command:    "list",
		Results:    CLICategoryList{Category: args[0], Names: names},
		TotalCount: &count,
	})
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Describe every builtin, grouped by category",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

func init() {
	allCmd.Flags().StringVar(&flagAllMatch, "match", "", "glob pattern filtering the described names")
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return outputError("all", flagFormat, err)
	}
	format := outputFormat(cfg)

	engine := newEngine(cfg)
	idx := engine.Inspect()
	descs := engine.DescribeAll(idx)

	if flagAllMatch != "" {
		g, err := glob.Compile(flagAllMatch)
		if err != nil {
			return outputError("all", format, fmt.Errorf("invalid match pattern %q: %w", flagAllMatch, err))
		}
		kept := descs[:0]
		for _, d := range descs {
			if g.Match(d.Name) {
				kept = append(kept, d)
			}
		}
		descs = kept
	}

	count := len(descs)
	return outputResult(format, CLIResult{
		Command:    "all",
		Results:    CLIInspection{Summary: idx.Summary(), Descriptions: descs},
		TotalCount: &count,
	})
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the fixed category label set",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return outputError("categories", flagFormat, err)
	}
	format := outputFormat(cfg)

	labels := categoryLabels()
	count := len(labels)
	return outputResult(format, CLIResult{
		Command:    "categories",
		Results:    labels,
		TotalCount: &count,
	})
}

// filterNames applies an optional glob pattern to a name list.
func filterNames(names []string, pattern string) ([]string, error) {
	if pattern == "" {
		return names, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
	}
	kept := names[:0]
	for _, name := range names {
		if g.Match(name) {
			kept = append(kept, name)
		}
	}
	return kept, nil
}
