package tui

import "testing"

func feedAll(t *testing.T, p *inputParser, bytes []byte) []uiEvent {
	t.Helper()
	var events []uiEvent
	for _, b := range bytes {
		if ev, ok := p.feed(b); ok {
			events = append(events, ev)
		}
	}
	return events
}

func TestKeyMappingHandlesSupportedKeys(t *testing.T) {
	cases := []struct {
		b    byte
		kind uiEventKind
		tab  int
	}{
		{'\t', uiNextTab, 0},
		{'0', uiSelectTab, 0},
		{'5', uiSelectTab, 5},
		{'9', uiSelectTab, 9},
		{' ', uiTogglePause, 0},
		{'d', uiClearSelection, 0},
		{'D', uiClearSelection, 0},
		{'s', uiSelectMiddle, 0},
		{'S', uiSelectMiddle, 0},
		{'q', uiQuit, 0},
		{'Q', uiQuit, 0},
		{0x03, uiQuit, 0},
	}
	for _, tc := range cases {
		ev, ok := keyEvent(tc.b)
		if !ok {
			t.Fatalf("byte %q produced no event", tc.b)
		}
		if ev.kind != tc.kind || ev.tab != tc.tab {
			t.Fatalf("byte %q = %+v, want kind %d tab %d", tc.b, ev, tc.kind, tc.tab)
		}
	}
	if _, ok := keyEvent('\n'); ok {
		t.Fatalf("newline must be unmapped")
	}
	if _, ok := keyEvent('x'); ok {
		t.Fatalf("unknown byte must be unmapped")
	}
}

func TestSGRMouseDecodesLeftClick(t *testing.T) {
	var p inputParser
	events := feedAll(t, &p, []byte("\x1b[<0;12;7M"))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.kind != uiMouseLeftDown || ev.col != 11 || ev.row != 6 {
		t.Fatalf("event = %+v, want left-down at col 11 row 6", ev)
	}
}

func TestSGRMouseIgnoresMotionAndWheel(t *testing.T) {
	var p inputParser
	if events := feedAll(t, &p, []byte("\x1b[<35;12;7M")); len(events) != 0 {
		t.Fatalf("motion report produced %v", events)
	}
	if events := feedAll(t, &p, []byte("\x1b[<64;12;7M")); len(events) != 0 {
		t.Fatalf("wheel report produced %v", events)
	}
	if events := feedAll(t, &p, []byte("\x1b[<2;12;7M")); len(events) != 0 {
		t.Fatalf("right-button report produced %v", events)
	}
}

func TestMalformedCSIIsDiscardedSilently(t *testing.T) {
	var p inputParser
	if events := feedAll(t, &p, []byte("\x1b[<0;12M")); len(events) != 0 {
		t.Fatalf("two-field report produced %v", events)
	}
	if events := feedAll(t, &p, []byte("\x1b[<0;1;2;3M")); len(events) != 0 {
		t.Fatalf("four-field report produced %v", events)
	}
	if events := feedAll(t, &p, []byte("\x1b[<0;x;7M")); len(events) != 0 {
		t.Fatalf("non-numeric report produced %v", events)
	}
	// Non-mouse CSI (cursor key) is swallowed entirely.
	if events := feedAll(t, &p, []byte("\x1b[A")); len(events) != 0 {
		t.Fatalf("cursor key produced %v", events)
	}
	// Parser must be back in ground state afterwards.
	if events := feedAll(t, &p, []byte("q")); len(events) != 1 || events[0].kind != uiQuit {
		t.Fatalf("parser stuck after CSI: %v", events)
	}
}

func TestEscapeFollowedByNonBracketReturnsToGround(t *testing.T) {
	var p inputParser
	if events := feedAll(t, &p, []byte("\x1bx")); len(events) != 0 {
		t.Fatalf("ESC x produced %v", events)
	}
	if events := feedAll(t, &p, []byte(" ")); len(events) != 1 || events[0].kind != uiTogglePause {
		t.Fatalf("space after discarded escape: %v", events)
	}
}

func TestMouseCoordinateClampsAtZero(t *testing.T) {
	ev, ok := parseSGRMouse([]byte("<0;0;0M"))
	if !ok {
		t.Fatalf("zero coordinates must still decode")
	}
	if ev.col != 0 || ev.row != 0 {
		t.Fatalf("event = %+v, want clamped to 0,0", ev)
	}
}
