package tui

// Channel depths for the two producer goroutines. Producers block when
// the coordinator falls behind; the coordinator never blocks on either.
const (
	lineChannelDepth = 1024
	uiChannelDepth   = 128
)

type lineEventKind int

const (
	lineData lineEventKind = iota
	lineClosed
	lineFailed
)

// lineEvent is one message from the stdin reader: a complete line with
// its trailing newline removed, end of stream, or a read failure.
type lineEvent struct {
	kind lineEventKind
	text string
	err  string
}

type uiEventKind int

const (
	uiNextTab uiEventKind = iota
	uiSelectTab
	uiTogglePause
	uiClearSelection
	uiSelectMiddle
	uiMouseLeftDown
	uiQuit
	uiFailed
)

// uiEvent is one decoded terminal input. tab is set for uiSelectTab,
// col/row for uiMouseLeftDown (0-based cell), err for uiFailed.
type uiEvent struct {
	kind uiEventKind
	tab  int
	col  int
	row  int
	err  string
}
