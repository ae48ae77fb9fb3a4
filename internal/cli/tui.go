package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// TagListModel - Interactive tag browser
// =============================================================================

// TagListModel is the bubbletea model for browsing rendered tags.
type TagListModel struct {
	Rows   []tagRow
	Cursor int
	Height int
	Offset int
	Width  int
}

// NewTagListModel creates a new tag list model.
func NewTagListModel(rows []tagRow) TagListModel {
	return TagListModel{
		Rows:   rows,
		Height: 15,
		Width:  80,
	}
}

func (m TagListModel) Init() tea.Cmd {
	return nil
}

func (m TagListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.Rows)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = max(msg.Height-10, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m TagListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("SEO Tags"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  no tags"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	keyWidth := 0
	for _, r := range m.Rows {
		keyWidth = max(keyWidth, len(label(r)))
	}

	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-10s %-*s  %s", cursor, r.group, keyWidth, label(r),
			truncate(r.content, max(m.Width-keyWidth-18, 10)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(detailStyle.Render(m.Rows[m.Cursor].rendered))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// label is the key column: the meta key, or the element name of a fragment.
func label(r tagRow) string {
	if r.attribute != "html" {
		return r.key
	}
	name := strings.TrimPrefix(r.content, "<")
	if i := strings.IndexAny(name, " >"); i >= 0 {
		name = name[:i]
	}
	return "<" + name + ">"
}

// inspectCommand creates the inspect command, an interactive tag browser.
func (c *CLI) inspectCommand() *cobra.Command {
	var page pageOpts

	cmd := &cobra.Command{
		Use:   "inspect [config|snapshot.json]",
		Short: "Browse the rendered tags interactively",
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

			p := tea.NewProgram(NewTagListModel(tagRows(snap)),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	addPageFlags(cmd, &page)

	return cmd
}
