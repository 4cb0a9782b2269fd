package tui

import "pkt.systems/streamtabs/core"

// renderedLine is one body row as drawn: the record plus whether it is
// the pinned line.
type renderedLine struct {
	seq      uint64
	text     string
	selected bool
}

// selectedLine is the cross-tab pin. It survives tab switches and is
// spliced into every tab's viewport regardless of that tab's filter.
type selectedLine struct {
	seq  uint64
	text string
}

// prepareVisibleLines builds the candidate body lines for a tab: its
// buffered records with the pin spliced in. If the pool already holds
// the pinned seq, that entry is flagged; otherwise a transient entry is
// inserted at the first position whose seq exceeds the pin's. The
// synthetic entry never enters any tab buffer.
func prepareVisibleLines(records []core.LineRecord, sel *selectedLine) []renderedLine {
	lines := make([]renderedLine, 0, len(records)+1)
	for _, rec := range records {
		lines = append(lines, renderedLine{seq: rec.Seq, text: rec.Text})
	}
	if sel == nil {
		return lines
	}

	for i := range lines {
		if lines[i].seq == sel.seq {
			lines[i].selected = true
			return lines
		}
	}
	insertAt := len(lines)
	for i := range lines {
		if lines[i].seq > sel.seq {
			insertAt = i
			break
		}
	}
	lines = append(lines, renderedLine{})
	copy(lines[insertAt+1:], lines[insertAt:])
	lines[insertAt] = renderedLine{seq: sel.seq, text: sel.text, selected: true}
	return lines
}

// firstBodyRow bottom-anchors a window of visibleCount lines: when the
// body is not full the lines hug the bottom edge.
func firstBodyRow(bodyStart, bodyHeight, visibleCount int) int {
	if visibleCount > bodyHeight {
		visibleCount = bodyHeight
	}
	return bodyStart + bodyHeight - visibleCount
}

// viewportForLines picks the window of lines to show and where to print
// it. Live mode shows the tail, bottom-anchored. Paused mode centers
// the pinned line when present and otherwise falls back to the live
// rule.
func viewportForLines(bodyStart, bodyHeight int, lines []renderedLine, paused bool) (start, count, firstRow int) {
	count = len(lines)
	if count > bodyHeight {
		count = bodyHeight
	}
	if count == 0 {
		return 0, 0, bodyStart
	}

	if paused {
		if k := selectedIndex(lines); k >= 0 {
			half := bodyHeight / 2
			start = k - half
			if start < 0 {
				start = 0
			}
			if max := len(lines) - count; start > max {
				start = max
			}

			selectedRow := k - start
			firstRow = bodyStart + bodyHeight/2 - selectedRow
			if firstRow < bodyStart {
				firstRow = bodyStart
			}
			if max := bodyStart + bodyHeight - count; firstRow > max {
				firstRow = max
			}
			return start, count, firstRow
		}
	}

	start = len(lines) - count
	return start, count, firstBodyRow(bodyStart, bodyHeight, count)
}

func selectedIndex(lines []renderedLine) int {
	for i := range lines {
		if lines[i].selected {
			return i
		}
	}
	return -1
}
