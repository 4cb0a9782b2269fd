package core

// DefaultMaxLinesPerTab bounds each tab's stored history.
const DefaultMaxLinesPerTab = 5000

// LineRecord is one stored input line. Seq is the global arrival index
// assigned by the coordinator; it is unique and strictly increasing
// across all tabs.
type LineRecord struct {
	Seq  uint64
	Text string
}

// lineBuffer stores the most recent matched lines in insertion order.
// When full, appending evicts the oldest record. Eviction never touches
// the match counters on the owning tab.
type lineBuffer struct {
	records  []LineRecord
	maxLines int
}

func newLineBuffer(maxLines int) *lineBuffer {
	if maxLines <= 0 {
		maxLines = DefaultMaxLinesPerTab
	}
	return &lineBuffer{maxLines: maxLines}
}

func (b *lineBuffer) append(rec LineRecord) {
	b.records = append(b.records, rec)
	if len(b.records) > b.maxLines {
		trim := len(b.records) - b.maxLines
		b.records = b.records[trim:]
	}
}

func (b *lineBuffer) len() int { return len(b.records) }

// prefix returns a copy of at most n records from the front. n larger
// than the buffer is clamped; this is what keeps a paused viewport valid
// when eviction has shrunk the buffer below the pause cutoff.
func (b *lineBuffer) prefix(n int) []LineRecord {
	if n < 0 {
		n = 0
	}
	if n > len(b.records) {
		n = len(b.records)
	}
	out := make([]LineRecord, n)
	copy(out, b.records[:n])
	return out
}
