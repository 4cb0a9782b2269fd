package tui

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"pkt.systems/pslog"

	"pkt.systems/streamtabs/core"
)

// DefaultPollInterval is the coordinator tick period.
const DefaultPollInterval = 50 * time.Millisecond

// Options configure a streamtabs session.
type Options struct {
	Filters        []string
	Theme          string
	MaxLinesPerTab int
	PollInterval   time.Duration
}

// session is the coordinator. It uniquely owns every piece of mutable
// UI state; the two producer goroutines only ever touch their channel.
type session struct {
	store *core.Store
	theme tuiTheme
	scr   surface
	lines <-chan lineEvent
	ui    <-chan uiEvent
	poll  time.Duration
	log   pslog.Logger

	active     int
	nextSeq    uint64
	paused     bool
	snapshot   *core.PauseSnapshot
	selected   *selectedLine
	lastWidth  int
	lastHeight int
	lastRender renderState
	dirty      bool
}

// Run starts the producers, acquires the terminal, and drives the event
// loop until quit or a fatal error. On a clean quit it signals the
// surrounding pipeline process group so upstream producers stop too.
func Run(ctx context.Context, opts Options) error {
	scr, err := openScreen()
	if err != nil {
		return err
	}

	lines := make(chan lineEvent, lineChannelDepth)
	ui := make(chan uiEvent, uiChannelDepth)
	go readLines(os.Stdin, lines)
	go readTTY(scr.tty, ui)

	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	sess := &session{
		store: core.NewStore(opts.Filters, opts.MaxLinesPerTab),
		theme: themeForName(opts.Theme),
		scr:   scr,
		lines: lines,
		ui:    ui,
		poll:  poll,
		log:   pslog.Ctx(ctx),
		dirty: true,
	}

	err = func() error {
		defer scr.Close()
		return sess.run(ctx)
	}()
	if err != nil {
		return err
	}

	terminatePipelineGroup()
	return nil
}

func (s *session) run(ctx context.Context) error {
	s.log.Info("session start", "tabs", s.store.Len(), "poll", s.poll.String())
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		if err := s.drainLines(); err != nil {
			return err
		}
		quit, err := s.drainUI()
		if err != nil {
			return err
		}
		if quit {
			s.log.Info("session quit")
			return nil
		}

		s.checkSize()

		if s.dirty {
			if err := s.redraw(); err != nil {
				return err
			}
			s.dirty = false
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// drainLines consumes every queued line event. Sequence numbers are
// assigned here, at dequeue time, so arrival order is definitive
// relative to coordinator state: a pause processed later in the same
// tick can never retroactively exclude one of these lines.
func (s *session) drainLines() error {
	for {
		select {
		case ev := <-s.lines:
			if err := s.handleLine(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *session) handleLine(ev lineEvent) error {
	switch ev.kind {
	case lineData:
		s.store.Accept(s.nextSeq, ev.text, s.active, s.paused)
		if s.nextSeq < math.MaxUint64 {
			s.nextSeq++
		}
		if !s.paused {
			s.dirty = true
		}
	case lineClosed:
		// Stream ended; the view stays up until the user quits.
		s.log.Debug("stdin closed", "lines", s.nextSeq)
	case lineFailed:
		return fmt.Errorf("read stdin: %s", ev.err)
	}
	return nil
}

func (s *session) drainUI() (bool, error) {
	for {
		select {
		case ev := <-s.ui:
			quit, err := s.handleUI(ev)
			if err != nil || quit {
				return quit, err
			}
		default:
			return false, nil
		}
	}
}

func (s *session) handleUI(ev uiEvent) (bool, error) {
	switch ev.kind {
	case uiNextTab:
		s.selectTab((s.active + 1) % s.store.Len())
		s.dirty = true
	case uiSelectTab:
		s.selectTab(ev.tab)
	case uiTogglePause:
		s.togglePause()
	case uiClearSelection:
		if s.selected != nil {
			s.selected = nil
			s.dirty = true
		}
	case uiSelectMiddle:
		if line := middleVisibleLine(s.lastRender); line != nil {
			s.toggleSelected(line)
			s.dirty = true
		}
	case uiMouseLeftDown:
		if index, ok := tabIndexAt(s.lastRender, ev.col, ev.row); ok {
			s.selectTab(index)
			s.dirty = true
			break
		}
		if line := lineAt(s.lastRender, ev.row); line != nil {
			s.toggleSelected(line)
			s.dirty = true
		}
	case uiQuit:
		return true, nil
	case uiFailed:
		return false, fmt.Errorf("read tty: %s", ev.err)
	}
	return false, nil
}

// selectTab switches the active tab and marks it seen against the
// cutoff that matches the current mode. Out-of-range indices are
// ignored.
func (s *session) selectTab(index int) {
	if index < 0 || index >= s.store.Len() {
		return
	}
	s.active = index
	if s.paused && s.snapshot != nil {
		s.store.MarkSeenPaused(index, *s.snapshot)
	} else {
		s.store.MarkSeenLive(index)
	}
	s.dirty = true
}

func (s *session) togglePause() {
	s.paused = !s.paused
	if s.paused {
		snap := s.store.Snapshot()
		s.snapshot = &snap
		s.store.MarkSeenPaused(s.active, snap)
		s.log.Debug("paused", "seq", s.nextSeq)
	} else {
		s.snapshot = nil
		s.store.MarkSeenLive(s.active)
		s.log.Debug("resumed", "seq", s.nextSeq)
	}
	s.dirty = true
}

func (s *session) toggleSelected(line *renderedLine) {
	if s.selected != nil && s.selected.seq == line.seq {
		s.selected = nil
		return
	}
	s.selected = &selectedLine{seq: line.seq, text: line.text}
}

func (s *session) checkSize() {
	width, height, err := s.scr.Size()
	if err != nil {
		return
	}
	if width != s.lastWidth || height != s.lastHeight {
		s.lastWidth = width
		s.lastHeight = height
		s.dirty = true
		s.log.Debug("resize", "width", width, "height", height)
	}
}

func (s *session) redraw() error {
	var cutoffs []int
	if s.paused && s.snapshot != nil {
		cutoffs = s.snapshot.LineCutoffs
	}
	rows, rs := renderFrame(s.store, s.active, s.paused, cutoffs, s.selected, s.lastWidth, s.lastHeight, s.theme)
	if err := s.scr.Paint(rows); err != nil {
		return err
	}
	s.lastRender = rs
	return nil
}
