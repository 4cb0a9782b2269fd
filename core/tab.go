package core

// Tab is a named view onto the input stream: a filter plus a bounded
// history of matches and the counters behind the unread badge.
// seen never exceeds total.
type Tab struct {
	label string
	mode  MatchMode
	lines *lineBuffer
	total uint64
	seen  uint64
}

// NewFilterTab builds a tab matching lines that contain filter.
func NewFilterTab(filter string, maxLines int) *Tab {
	return &Tab{
		label: filter,
		mode:  MatchContains(filter),
		lines: newLineBuffer(maxLines),
	}
}

// NewAllTab builds the synthetic first tab that accepts every line.
func NewAllTab(maxLines int) *Tab {
	return &Tab{
		label: "(all)",
		mode:  MatchAll(),
		lines: newLineBuffer(maxLines),
	}
}

func (t *Tab) Label() string { return t.label }

// AcceptsAll reports whether this is the unfiltered tab.
func (t *Tab) AcceptsAll() bool { return IsAcceptAll(t.mode) }

// Matches tests the tab's filter against line.
func (t *Tab) Matches(line string) bool { return t.mode.Matches(line) }

// Push appends a matched line, evicting the oldest record when the
// buffer is full, and counts the match.
func (t *Tab) Push(seq uint64, line string) {
	t.lines.append(LineRecord{Seq: seq, Text: line})
	t.total++
}

// TotalMatches counts every match ever produced for this tab.
func (t *Tab) TotalMatches() uint64 { return t.total }

// Unread is the number of matches not yet seen.
func (t *Tab) Unread() uint64 {
	if t.seen > t.total {
		return 0
	}
	return t.total - t.seen
}

// MarkSeenThrough advances seen to min(cutoff, total). It never moves
// seen backward.
func (t *Tab) MarkSeenThrough(cutoff uint64) {
	if cutoff > t.total {
		cutoff = t.total
	}
	if cutoff > t.seen {
		t.seen = cutoff
	}
}

// BufferedLines is the number of records currently stored.
func (t *Tab) BufferedLines() int { return t.lines.len() }

// Records returns a copy of at most n buffered records from the front.
func (t *Tab) Records(n int) []LineRecord { return t.lines.prefix(n) }
