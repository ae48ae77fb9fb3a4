package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	seoio "github.com/matzehuels/seohelper/pkg/io"
)

// tagRow is one line of the list and inspect views.
type tagRow struct {
	group     string
	attribute string // "name", "property" or "html"
	key       string
	content   string
	rendered  string
}

// tagRows flattens a snapshot into rows in render order.
func tagRows(s *seoio.Snapshot) []tagRow {
	rows := make([]tagRow, 0, s.Len())
	for _, g := range s.Groups {
		for _, t := range g.Tags {
			row := tagRow{group: g.Name, rendered: t.Render()}
			if t.HTML != "" {
				row.attribute = "html"
				row.content = t.HTML
			} else {
				row.attribute = t.Attribute
				row.key = t.Key
				row.content = t.Content
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// tagTable renders rows as a bordered table. Content longer than maxContent
// runes is cut.
func tagTable(rows []tagRow, maxContent int) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.group, r.attribute, r.key, truncate(r.content, maxContent)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Group", "Attr", "Key", "Content").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(rows) {
				return attrStyle(rows[row].attribute)
			}
			return lipgloss.NewStyle()
		})
}

// truncate cuts s to max runes, marking the cut with "…".
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// listCommand creates the list command, which prints every tag as a table.
func (c *CLI) listCommand() *cobra.Command {
	var (
		page     pageOpts
		maxWidth int
	)

	cmd := &cobra.Command{
		Use:   "list [config|snapshot.json]",
		Short: "List the rendered tags as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			snap, err := buildSnapshot(cmd.Context(), input, page, false, false)
			if err != nil {
				return err
			}
			rows := tagRows(snap)
			if len(rows) == 0 {
				printWarning("no tags")
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tagTable(rows, maxWidth).Render())
			return err
		},
	}

	addPageFlags(cmd, &page)
	cmd.Flags().IntVar(&maxWidth, "max-content", 60, "cut content longer than this many characters (0: no limit)")

	return cmd
}
