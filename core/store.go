package core

// Store is the ordered tab list. Tabs are fixed at construction and
// mutated only by the coordinator goroutine; the Store itself does no
// locking.
type Store struct {
	tabs []*Tab
}

// PauseSnapshot freezes each tab's buffer length and total match count
// at the instant pause is entered. While paused, viewports are computed
// against the line cutoffs and tab switches mark seen only up to the
// match cutoffs.
type PauseSnapshot struct {
	LineCutoffs  []int
	MatchCutoffs []uint64
}

// NewStore builds the tab list: the synthetic "(all)" tab first, then
// one filter tab per pattern in order.
func NewStore(filters []string, maxLines int) *Store {
	tabs := make([]*Tab, 0, len(filters)+1)
	tabs = append(tabs, NewAllTab(maxLines))
	for _, filter := range filters {
		tabs = append(tabs, NewFilterTab(filter, maxLines))
	}
	return &Store{tabs: tabs}
}

func (s *Store) Len() int { return len(s.tabs) }

// Tab returns the tab at index, or nil when out of range.
func (s *Store) Tab(index int) *Tab {
	if index < 0 || index >= len(s.tabs) {
		return nil
	}
	return s.tabs[index]
}

// Tabs returns the underlying tab slice in display order.
func (s *Store) Tabs() []*Tab { return s.tabs }

// Accept dispatches one input line to every matching tab. A line
// matching several tabs is stored in each, sharing seq. When the
// receiving tab is active and the view is live, the match is seen
// immediately; while paused even the active tab accumulates unread.
func (s *Store) Accept(seq uint64, line string, active int, paused bool) {
	for index, tab := range s.tabs {
		if !tab.Matches(line) {
			continue
		}
		tab.Push(seq, line)
		if index == active && !paused {
			tab.MarkSeenThrough(tab.TotalMatches())
		}
	}
}

// MarkSeenLive clears the unread count of the tab at index.
func (s *Store) MarkSeenLive(index int) {
	if tab := s.Tab(index); tab != nil {
		tab.MarkSeenThrough(tab.TotalMatches())
	}
}

// MarkSeenPaused marks the tab at index seen up to the pause-time match
// cutoff, so matches that arrived after pause stay unread.
func (s *Store) MarkSeenPaused(index int, snap PauseSnapshot) {
	tab := s.Tab(index)
	if tab == nil {
		return
	}
	cutoff := tab.TotalMatches()
	if index < len(snap.MatchCutoffs) {
		cutoff = snap.MatchCutoffs[index]
	}
	tab.MarkSeenThrough(cutoff)
}

// Snapshot captures the pause cutoffs for every tab.
func (s *Store) Snapshot() PauseSnapshot {
	snap := PauseSnapshot{
		LineCutoffs:  make([]int, len(s.tabs)),
		MatchCutoffs: make([]uint64, len(s.tabs)),
	}
	for i, tab := range s.tabs {
		snap.LineCutoffs[i] = tab.BufferedLines()
		snap.MatchCutoffs[i] = tab.TotalMatches()
	}
	return snap
}
