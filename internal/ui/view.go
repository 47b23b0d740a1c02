package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fnview/fnview/internal/lambda"
	"github.com/fnview/fnview/internal/theme"
	"github.com/fnview/fnview/internal/ui/state"
	"github.com/muesli/reflow/truncate"
)

const (
	headerTitle   = "AWS Lambda Functions"
	detailHeading = "Function Info"

	// The three detail message contracts. Scripts and tests rely on these
	// exact literals.
	detailNothingSelected = "Nothing selected..."
	detailNoFunctions     = "No functions found..."

	listEmptyMessage = "(no functions)"
	footerHint       = "Use ↓↑ to move, ← to unselect, g/G to go top/bottom, q to quit."

	cursorMarker = "▌"

	// Rows reserved below the list: detail heading + detail body, and the
	// blank spacer + hint row when the footer is enabled.
	detailRows = 2
	footerRows = 2
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View assembles the full frame from the pure render functions. All state
// reads happen up front; rendering the same model twice yields identical
// output.
func (m *Model) View() string {
	cursor := m.cursorIndex()
	sections := []string{
		renderHeader(m.styles, m.width),
		renderList(m.catalog, cursor, m.viewportOffset, m.maxVisibleRows(), m.width, m.styles),
		renderDetail(m.catalog, cursor, m.width, m.styles),
	}
	if m.showFooter {
		sections = append(sections, "", renderFooter(m.styles, m.width))
	}
	return strings.Join(sections, "\n")
}

// renderHeader produces the static title banner.
func renderHeader(st *theme.Styles, width int) string {
	return renderLines([]styledLine{{text: padText(headerTitle, width), style: st.Header}})
}

// renderList projects the catalog window into one row per visible function.
// Rows alternate between two background bands by index parity; the cursor row
// carries the marker glyph and the highlight style.
func renderList(catalog lambda.Catalog, cursor, offset, maxVisible, width int, st *theme.Styles) string {
	if len(catalog) == 0 {
		return renderLines([]styledLine{{text: padText(listEmptyMessage, width), style: st.Info}})
	}
	start := 0
	end := len(catalog)
	if maxVisible > 0 && len(catalog) > maxVisible {
		start = offset
		if start < 0 {
			start = 0
		}
		if start+maxVisible > len(catalog) {
			start = len(catalog) - maxVisible
		}
		end = start + maxVisible
	}
	lines := make([]styledLine, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, buildRowLine(catalog[i].Name, i, cursor, width, st))
	}
	return renderLines(lines)
}

// renderDetail projects the selected entry under the list. The three possible
// message strings are distinct, fixed contracts.
func renderDetail(catalog lambda.Catalog, cursor, width int, st *theme.Styles) string {
	var body string
	switch {
	case len(catalog) == 0:
		body = detailNoFunctions
	case cursor == state.NoSelection:
		body = detailNothingSelected
	default:
		body = catalog[cursor].Name
	}
	lines := []styledLine{
		{text: padText(detailHeading, width), style: st.DetailTitle},
		{text: padText(body, width), style: st.DetailBody},
	}
	return renderLines(lines)
}

func renderFooter(st *theme.Styles, width int) string {
	return renderLines([]styledLine{{text: padText(footerHint, width), style: st.Footer}})
}

// rowBandStyles picks the line and indicator styles for a list row: the
// cursor row gets the highlight pair, everything else alternates bands by
// index parity.
func rowBandStyles(st *theme.Styles, index, cursor int) (line, indicator *lipgloss.Style) {
	if index == cursor {
		return st.SelectedRow, st.SelectedRowIndicator
	}
	if index%2 == 0 {
		return st.Row, st.RowIndicator
	}
	return st.RowAlt, st.RowIndicator
}

// buildRowLine constructs a single list row. The marker column is always
// present so rows stay aligned whether or not anything is selected.
func buildRowLine(name string, index, cursor, width int, st *theme.Styles) styledLine {
	lineStyle, indicatorStyle := rowBandStyles(st, index, cursor)
	marker := " "
	if index == cursor {
		marker = cursorMarker
	}
	return styledLine{
		text:          padText(marker+" "+name, width),
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the marker column
	}
}

// padText pads or truncates text to exactly width visible columns. Width 0
// leaves the text untouched.
func padText(text string, width int) string {
	if width <= 0 {
		return text
	}
	w := lipgloss.Width(text)
	if w > width {
		return truncate.StringWithTail(text, uint(width), "…")
	}
	return text + strings.Repeat(" ", width-w)
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}
