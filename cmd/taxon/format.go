package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jward/taxon"
)

// sectionHeader renders a title underlined with the given character.
func sectionHeader(w io.Writer, title string, char byte) {
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat(string(char), len(title)))
}

// formatSummaryText formats a Summary as readable text.
func formatSummaryText(w io.Writer, sum taxon.Summary) {
	sectionHeader(w, "SUMMARY", '=')
	fmt.Fprintf(w, "Namespace: %s\n", sum.Namespace)
	fmt.Fprintf(w, "Total: %d\n", sum.Total)
	for _, c := range sum.Counts {
		fmt.Fprintf(w, "%s: %d\n", c.Category, c.Count)
	}
}

// formatDescriptionText formats one Description according to its category.
func formatDescriptionText(w io.Writer, d *taxon.Description) {
	switch d.Category {
	case taxon.CategoryFunction:
		formatFunctionText(w, d)
	case taxon.CategoryClass, taxon.CategoryException:
		formatClassText(w, d)
	case taxon.CategoryConstant:
		formatConstantText(w, d)
	default:
		formatOtherText(w, d)
	}
}

func formatFunctionText(w io.Writer, d *taxon.Description) {
	sectionHeader(w, fmt.Sprintf("Function: %s", d.Name), '-')
	fmt.Fprintf(w, "Type: %s\n", d.TypeName)
	fmt.Fprintf(w, "Module: %s\n", d.Module)
	fmt.Fprintf(w, "Callable: %t\n", d.Callable)
	if d.ProtocolMethod != "" {
		fmt.Fprintf(w, "Triggers protocol method: %s\n", d.ProtocolMethod)
		fmt.Fprintf(w, "  └─ calling %s(obj) delegates to obj.%s()\n", d.Name, d.ProtocolMethod)
	}
	formatDocText(w, d.Doc)
	formatNoteText(w, d.Note)
}

func formatClassText(w io.Writer, d *taxon.Description) {
	label := "Class"
	if d.Category == taxon.CategoryException {
		label = "Exception class"
	}
	sectionHeader(w, fmt.Sprintf("%s: %s", label, d.Name), '-')
	fmt.Fprintf(w, "Type: %s\n", d.TypeName)
	fmt.Fprintf(w, "Module: %s\n", d.Module)
	fmt.Fprintf(w, "Callable: %t\n", d.Callable)

	if len(d.Supertypes) > 0 {
		fmt.Fprintln(w, "\nInheritance chain:")
		for i, name := range d.Supertypes {
			prefix := "  ├─"
			if i == len(d.Supertypes)-1 {
				prefix = "  └─"
			}
			fmt.Fprintf(w, "%s %s\n", prefix, name)
		}
	}

	formatMethodListText(w, "Public methods", d.PublicMethods, d.PublicMethodCount)
	formatMethodListText(w, "Special methods", d.SpecialMethods, d.SpecialMethodCount)
	formatDocText(w, d.Doc)
	formatNoteText(w, d.Note)
}

func formatMethodListText(w io.Writer, label string, shown []string, total int) {
	if total == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d):\n", label, total)
	fmt.Fprintf(w, "  %s\n", strings.Join(shown, ", "))
	if total > len(shown) {
		fmt.Fprintf(w, "  ... and %d more\n", total-len(shown))
	}
}

func formatConstantText(w io.Writer, d *taxon.Description) {
	sectionHeader(w, fmt.Sprintf("Constant: %s", d.Name), '-')
	fmt.Fprintf(w, "Value: %s\n", d.Repr)
	fmt.Fprintf(w, "Type: %s\n", d.TypeName)
	fmt.Fprintf(w, "Module: %s\n", d.Module)
	formatNoteText(w, d.Note)
	formatDocText(w, d.Doc)
}

func formatOtherText(w io.Writer, d *taxon.Description) {
	fmt.Fprintf(w, "Name: %s\n", d.Name)
	fmt.Fprintf(w, "Type: %s\n", d.TypeName)
	if d.Repr != "" {
		fmt.Fprintf(w, "Value: %s\n", d.Repr)
	}
	formatNoteText(w, d.Note)
}

func formatDocText(w io.Writer, doc string) {
	if doc == "" {
		return
	}
	fmt.Fprintf(w, "\nDocumentation:\n  %s\n", doc)
}

func formatNoteText(w io.Writer, note string) {
	if note == "" {
		return
	}
	fmt.Fprintf(w, "Note: %s\n", note)
}

// formatCategoryListText formats a category's names in rows of five.
func formatCategoryListText(w io.Writer, list CLICategoryList) {
	sectionHeader(w, fmt.Sprintf("%s (%d)", list.Category, len(list.Names)), '=')
	for i := 0; i < len(list.Names); i += 5 {
		end := i + 5
		if end > len(list.Names) {
			end = len(list.Names)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(list.Names[i:end], ", "))
	}
}

// formatInspectionText renders the describe-all output: summary first, then
// every description grouped under its category header.
func formatInspectionText(w io.Writer, insp CLIInspection) {
	formatSummaryText(w, insp.Summary)
	var current taxon.Category
	for _, d := range insp.Descriptions {
		if d.Category != current {
			current = d.Category
			sectionHeader(w, string(current), '=')
		}
		formatDescriptionText(w, d)
	}
}

// formatSnapshotsText formats snapshot headers as aligned columns.
func formatSnapshotsText(w io.Writer, snaps []CLISnapshot) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAMESPACE\tCREATED\tTOTAL")
	for _, s := range snaps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			s.ID, s.Namespace, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Total)
	}
	tw.Flush()
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type. It writes to os.Stdout.
func outputResultText(result CLIResult) error {
	w := io.Writer(os.Stdout)

	switch v := result.Results.(type) {
	case taxon.Summary:
		formatSummaryText(w, v)
	case *taxon.Description:
		formatDescriptionText(w, v)
	case CLICategoryList:
		formatCategoryListText(w, v)
	case CLIInspection:
		formatInspectionText(w, v)
	case []string:
		for _, label := range v {
			fmt.Fprintln(w, label)
		}
	case []CLISnapshot:
		formatSnapshotsText(w, v)
	case CLIExport:
		fmt.Fprintf(w, "Exported snapshot %s (%d entries) to %s\n", v.SnapshotID, v.Entries, v.Database)
	case nil:
		// No output for nil results.
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}
