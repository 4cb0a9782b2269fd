package core

import "testing"

func TestFiltersAreAppliedIndependently(t *testing.T) {
	s := &Store{tabs: []*Tab{
		NewFilterTab("foo", 0),
		NewFilterTab("bar", 0),
	}}

	s.Accept(0, "foo only", 0, false)
	s.Accept(1, "bar only", 0, false)
	s.Accept(2, "foo and bar", 0, false)

	if got := s.Tab(0).TotalMatches(); got != 2 {
		t.Fatalf("foo tab total = %d, want 2", got)
	}
	if got := s.Tab(1).TotalMatches(); got != 2 {
		t.Fatalf("bar tab total = %d, want 2", got)
	}
	fooLines := s.Tab(0).Records(s.Tab(0).BufferedLines())
	if last := fooLines[len(fooLines)-1].Text; last != "foo and bar" {
		t.Fatalf("foo tab last line = %q", last)
	}
	barLines := s.Tab(1).Records(s.Tab(1).BufferedLines())
	if last := barLines[len(barLines)-1].Text; last != "foo and bar" {
		t.Fatalf("bar tab last line = %q", last)
	}
	if got := s.Tab(0).Unread(); got != 0 {
		t.Fatalf("active tab unread = %d, want 0", got)
	}
	if got := s.Tab(1).Unread(); got != 2 {
		t.Fatalf("inactive tab unread = %d, want 2", got)
	}
}

func TestUnreadClearsWhenTabIsSeen(t *testing.T) {
	s := &Store{tabs: []*Tab{
		NewFilterTab("foo", 0),
		NewFilterTab("bar", 0),
	}}

	s.Accept(0, "foo and bar", 0, false)
	s.Accept(1, "bar only", 0, false)
	if got := s.Tab(1).Unread(); got != 2 {
		t.Fatalf("unread before switch = %d, want 2", got)
	}

	s.MarkSeenLive(1)
	if got := s.Tab(1).Unread(); got != 0 {
		t.Fatalf("unread after switch = %d, want 0", got)
	}
}

func TestPausedSwitchKeepsPostPauseUnread(t *testing.T) {
	s := &Store{tabs: []*Tab{
		NewFilterTab("foo", 0),
		NewFilterTab("bar", 0),
	}}

	s.Accept(0, "bar before pause", 0, false)
	snap := s.Snapshot()

	s.Accept(1, "bar after pause", 0, true)
	if got := s.Tab(1).Unread(); got != 2 {
		t.Fatalf("unread while paused = %d, want 2", got)
	}

	s.MarkSeenPaused(1, snap)
	if got := s.Tab(1).Unread(); got != 1 {
		t.Fatalf("unread after paused switch = %d, want 1", got)
	}
}

func TestActiveTabAccumulatesUnreadWhilePaused(t *testing.T) {
	s := &Store{tabs: []*Tab{NewFilterTab("foo", 0)}}

	s.Accept(0, "foo visible", 0, false)
	if got := s.Tab(0).Unread(); got != 0 {
		t.Fatalf("live unread = %d, want 0", got)
	}

	s.Accept(1, "foo hidden while paused", 0, true)
	if got := s.Tab(0).Unread(); got != 1 {
		t.Fatalf("paused unread = %d, want 1", got)
	}
}

func TestNewStorePrependsAllTab(t *testing.T) {
	s := NewStore([]string{"err", "warn"}, 0)
	if s.Len() != 3 {
		t.Fatalf("store len = %d, want 3", s.Len())
	}
	if !s.Tab(0).AcceptsAll() || s.Tab(0).Label() != "(all)" {
		t.Fatalf("first tab is not the (all) tab: %q", s.Tab(0).Label())
	}
	if s.Tab(1).Label() != "err" || s.Tab(2).Label() != "warn" {
		t.Fatalf("filter tabs out of order: %q, %q", s.Tab(1).Label(), s.Tab(2).Label())
	}
	if !s.Tab(0).Matches("") {
		t.Fatalf("(all) tab must match the empty line")
	}
}

func TestMarkSeenPausedNeverMovesSeenBackward(t *testing.T) {
	s := &Store{tabs: []*Tab{NewFilterTab("x", 0)}}
	s.Accept(0, "x1", 0, false)
	s.Accept(1, "x2", 0, false)
	s.MarkSeenLive(0)

	// Snapshot from an earlier point must not resurrect unread.
	s.MarkSeenPaused(0, PauseSnapshot{MatchCutoffs: []uint64{1}})
	if got := s.Tab(0).Unread(); got != 0 {
		t.Fatalf("unread = %d, want 0 after stale cutoff", got)
	}
}

func TestSnapshotCapturesPerTabCutoffs(t *testing.T) {
	s := NewStore([]string{"foo"}, 0)
	s.Accept(0, "foo", 0, false)
	s.Accept(1, "other", 0, false)

	snap := s.Snapshot()
	if snap.LineCutoffs[0] != 2 || snap.LineCutoffs[1] != 1 {
		t.Fatalf("line cutoffs = %v", snap.LineCutoffs)
	}
	if snap.MatchCutoffs[0] != 2 || snap.MatchCutoffs[1] != 1 {
		t.Fatalf("match cutoffs = %v", snap.MatchCutoffs)
	}
}
