package tui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"pkt.systems/streamtabs/core"
)

const pausedLabel = " (paused)"

// tabHitbox records the columns a tab's box occupies on rows 0..2.
type tabHitbox struct {
	index int
	left  int
	right int
}

// renderState is the hit-test cache left behind by one draw pass. Mouse
// events are resolved against the last frame the user saw, not the
// current model.
type renderState struct {
	tabHitboxes []tabHitbox
	lineRows    []*renderedLine
}

func tabIndexAt(rs renderState, col, row int) (int, bool) {
	if row > 2 {
		return 0, false
	}
	for _, hb := range rs.tabHitboxes {
		if col >= hb.left && col <= hb.right {
			return hb.index, true
		}
	}
	return 0, false
}

func lineAt(rs renderState, row int) *renderedLine {
	if row < 0 || row >= len(rs.lineRows) {
		return nil
	}
	return rs.lineRows[row]
}

// middleVisibleLine picks the lower-middle occupied body row, in row
// order, from the last rendered frame.
func middleVisibleLine(rs renderState) *renderedLine {
	var visible []*renderedLine
	for _, line := range rs.lineRows {
		if line != nil {
			visible = append(visible, line)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	return visible[len(visible)/2]
}

// clipToWidth keeps the first width runes of plain text.
func clipToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == width {
			return text[:i]
		}
		count++
	}
	return text
}

func isANSIFinalByte(r rune) bool { return r >= '@' && r <= '~' }

// clipANSIToVisibleWidth keeps embedded SGR sequences intact while
// counting only printable runes against width. If any escape was seen
// and the text was cut mid-run, a reset is appended so styling cannot
// bleed into the rest of the row.
func clipANSIToVisibleWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	var out strings.Builder
	visible := 0
	sawANSI := false
	clipped := false

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if size == 0 {
			break
		}
		if r == 0x1b {
			sawANSI = true
			out.WriteRune(r)
			i += size
			if i < len(text) {
				next, nextSize := utf8.DecodeRuneInString(text[i:])
				out.WriteRune(next)
				i += nextSize
				if next == '[' {
					for i < len(text) {
						seqRune, seqSize := utf8.DecodeRuneInString(text[i:])
						out.WriteRune(seqRune)
						i += seqSize
						if isANSIFinalByte(seqRune) {
							break
						}
					}
				}
			}
			continue
		}

		if visible >= width {
			clipped = true
			break
		}
		out.WriteRune(r)
		visible++
		i += size
	}

	if clipped && sawANSI {
		out.WriteString(ansiReset)
	}
	return out.String()
}

// stripANSI removes escape sequences, leaving only printable text.
func stripANSI(text string) string { return ansi.Strip(text) }

// clipWithEllipsis truncates text to width runes, marking the cut with
// "...". Budgets of three or fewer degenerate to a run of dots.
func clipWithEllipsis(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	if width <= 3 {
		return strings.Repeat(".", width)
	}
	return clipToWidth(text, width-3) + "..."
}

// fitTabTitle centers a label in the given budget: one space either
// side, ellipsized when too long, padded when short.
func fitTabTitle(label string, width int) string {
	switch width {
	case 0:
		return ""
	case 1:
		return " "
	case 2:
		return "  "
	}
	piece := " " + clipWithEllipsis(label, width-2) + " "
	if count := utf8.RuneCountInString(piece); count < width {
		piece += strings.Repeat(" ", width-count)
	} else if count > width {
		piece = clipToWidth(piece, width)
	}
	return piece
}

// formatUnreadSlot renders the fixed six-column unread badge.
func formatUnreadSlot(unread uint64) string {
	if unread == 0 {
		return "      "
	}
	badge := "•999+"
	if unread <= 999 {
		badge = "•" + strconv.FormatUint(unread, 10)
	}
	if pad := 6 - utf8.RuneCountInString(badge); pad > 0 {
		badge = strings.Repeat(" ", pad) + badge
	}
	return badge
}

func tabShortcutLabel(index int) string {
	return strconv.Itoa(index)
}

// tabColsLimit is the tab-strip width after reserving room for the
// paused marker.
func tabColsLimit(totalCols int, paused bool) int {
	if !paused {
		return totalCols
	}
	limit := totalCols - utf8.RuneCountInString(pausedLabel)
	if limit < 0 {
		limit = 0
	}
	return limit
}

// rowBuilder accumulates one terminal row as a styled string while
// tracking its visible column count.
type rowBuilder struct {
	b    strings.Builder
	cols int
}

func (r *rowBuilder) padTo(col int) {
	for r.cols < col {
		r.b.WriteByte(' ')
		r.cols++
	}
}

func (r *rowBuilder) plain(text string) {
	r.b.WriteString(text)
	r.cols += utf8.RuneCountInString(text)
}

func (r *rowBuilder) styled(style, text string) {
	if style == "" {
		r.plain(text)
		return
	}
	r.b.WriteString(style)
	r.b.WriteString(text)
	r.b.WriteString(ansiReset)
	r.cols += utf8.RuneCountInString(text)
}

// writePiece appends text clipped to the remaining inner budget.
func (r *rowBuilder) writePiece(remaining *int, style, text string) {
	if *remaining <= 0 {
		return
	}
	shown := clipToWidth(text, *remaining)
	if shown == "" {
		return
	}
	r.styled(style, shown)
	*remaining -= utf8.RuneCountInString(shown)
}

// renderFrame produces a full screen frame as one string per terminal
// row, plus the render state used for hit-testing. lineCutoffs is nil
// in live mode; while paused it holds the pause snapshot's per-tab
// buffered-line counts.
func renderFrame(store *core.Store, active int, paused bool, lineCutoffs []int, sel *selectedLine, width, height int, theme tuiTheme) ([]string, renderState) {
	rows := make([]string, height)
	rs := renderState{lineRows: make([]*renderedLine, height)}
	if width <= 0 || height <= 0 {
		return rows, rs
	}

	stripRows := make([]*rowBuilder, 0, 3)
	for i := 0; i < 3 && i < height; i++ {
		stripRows = append(stripRows, &rowBuilder{})
	}

	limit := tabColsLimit(width, paused)
	activeStyle := ansiFgRGB(theme.BorderActiveFG)
	dimStyle := ansiFgRGB(theme.BorderDimFG)

	x := 0
	tabsRight := 0
	for i, tab := range store.Tabs() {
		if x >= limit {
			break
		}

		numberPiece := " " + tabShortcutLabel(i) + " "
		unreadPiece := formatUnreadSlot(tab.Unread())
		fixedInner := utf8.RuneCountInString(numberPiece) + utf8.RuneCountInString(unreadPiece) + 1
		desiredInner := fixedInner + utf8.RuneCountInString(tab.Label()) + 2

		remaining := limit - x
		if remaining < 3 {
			break
		}
		inner := desiredInner
		if inner > remaining-2 {
			inner = remaining - 2
		}
		if inner <= 0 {
			break
		}

		titleBudget := inner - fixedInner
		if titleBudget < 0 {
			titleBudget = 0
		}
		titlePiece := fitTabTitle(tab.Label(), titleBudget)

		right := x + inner + 1
		border := dimStyle
		if i == active {
			border = activeStyle
		}
		horiz := strings.Repeat("─", inner)

		if len(stripRows) >= 1 {
			r0 := stripRows[0]
			r0.padTo(x)
			r0.styled(border, "╭"+horiz+"╮")
		}
		if len(stripRows) >= 2 {
			r1 := stripRows[1]
			r1.padTo(x)
			r1.styled(border, "│")
			remainingInner := inner
			r1.writePiece(&remainingInner, ansiFgRGB(theme.ShortcutFG), numberPiece)
			titleStyle := ""
			if tab.AcceptsAll() {
				titleStyle = ansiFgRGB(theme.TitleDimFG)
			}
			r1.writePiece(&remainingInner, titleStyle, titlePiece)
			r1.writePiece(&remainingInner, ansiFgRGB(theme.BadgeFG), unreadPiece)
			r1.writePiece(&remainingInner, "", " ")
			if remainingInner > 0 {
				r1.plain(strings.Repeat(" ", remainingInner))
			}
			r1.styled(border, "│")
		}
		if len(stripRows) >= 3 {
			r2 := stripRows[2]
			r2.padTo(x)
			r2.styled(border, "╰"+horiz+"╯")
		}

		rs.tabHitboxes = append(rs.tabHitboxes, tabHitbox{index: i, left: x, right: right})
		tabsRight = right
		x = right + 1
		if i+1 < store.Len() && x < limit {
			x++
		}
	}

	if paused {
		startCol := 0
		if tabsRight > 0 {
			startCol = tabsRight + 1
		}
		if startCol < width {
			shown := clipToWidth(pausedLabel, width-startCol)
			if shown != "" {
				target := 0
				if len(stripRows) >= 2 {
					target = 1
				}
				rb := stripRows[target]
				rb.padTo(startCol)
				rb.styled(ansiFgRGB(theme.PausedFG), shown)
			}
		}
	}

	for i, rb := range stripRows {
		rows[i] = rb.b.String()
	}

	bodyStart := 2
	if height >= 3 {
		bodyStart = 3
	}
	if height <= bodyStart {
		return rows, rs
	}
	bodyHeight := height - bodyStart

	activeTab := store.Tab(active)
	cutoffLen := activeTab.BufferedLines()
	if lineCutoffs != nil && active < len(lineCutoffs) && lineCutoffs[active] < cutoffLen {
		cutoffLen = lineCutoffs[active]
	}

	visible := prepareVisibleLines(activeTab.Records(cutoffLen), sel)
	start, count, firstRow := viewportForLines(bodyStart, bodyHeight, visible, paused)
	for j := 0; j < count; j++ {
		line := visible[start+j]
		y := firstRow + j
		if y < 0 || y >= height {
			continue
		}
		if line.selected {
			rows[y] = ansiFgRGB(theme.PinFG) + clipToWidth(stripANSI(line.text), width) + ansiReset
		} else {
			rows[y] = clipANSIToVisibleWidth(line.text, width)
		}
		lineCopy := line
		rs.lineRows[y] = &lineCopy
	}

	return rows, rs
}
