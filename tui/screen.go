package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// surface is the drawing back-end consumed by the session: a size query
// and a full-frame paint. The real implementation is screen; tests use
// an in-memory fake.
type surface interface {
	Size() (width, height int, err error)
	Paint(rows []string) error
}

// screen owns the terminal as a scoped resource: raw mode on /dev/tty,
// alternate screen, SGR mouse capture, and cursor hiding are acquired
// together and released together on every exit path.
type screen struct {
	tty      *os.File
	out      *termenv.Output
	oldState *term.State
}

func openScreen() (*screen, error) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("open /dev/tty: %w", err)
	}
	oldState, err := term.MakeRaw(int(tty.Fd()))
	if err != nil {
		tty.Close()
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	out := termenv.NewOutput(os.Stdout)
	out.AltScreen()
	out.EnableMouse()
	out.EnableMouseExtendedMode()
	out.HideCursor()

	return &screen{tty: tty, out: out, oldState: oldState}, nil
}

func (s *screen) Close() {
	s.out.ShowCursor()
	s.out.DisableMouseExtendedMode()
	s.out.DisableMouse()
	s.out.ExitAltScreen()
	_ = term.Restore(int(s.tty.Fd()), s.oldState)
	_ = s.tty.Close()
}

func (s *screen) Size() (int, int, error) {
	return term.GetSize(int(s.tty.Fd()))
}

// Paint redraws the whole frame: home the cursor, clear, then write the
// rows top to bottom. The cursor stays hidden for the screen's
// lifetime, so no repositioning is needed afterwards.
func (s *screen) Paint(rows []string) error {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(row)
	}
	_, err := s.out.WriteString(b.String())
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
