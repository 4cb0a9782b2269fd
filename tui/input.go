package tui

import (
	"io"
	"strconv"
	"strings"
)

type parserState int

const (
	stateGround parserState = iota
	stateEsc
	stateCSI
)

// inputParser decodes the raw TTY byte stream one byte at a time. It
// understands single-byte key commands and SGR mouse reports; every
// other escape sequence is consumed and discarded. At most one event is
// produced per fed byte.
type inputParser struct {
	state parserState
	csi   []byte
}

func (p *inputParser) feed(b byte) (uiEvent, bool) {
	switch p.state {
	case stateGround:
		if b == 0x1b {
			p.state = stateEsc
			return uiEvent{}, false
		}
		return keyEvent(b)
	case stateEsc:
		if b == '[' {
			p.state = stateCSI
			p.csi = p.csi[:0]
		} else {
			p.state = stateGround
		}
		return uiEvent{}, false
	default: // stateCSI
		p.csi = append(p.csi, b)
		if b < 0x40 || b > 0x7e {
			return uiEvent{}, false
		}
		p.state = stateGround
		return parseSGRMouse(p.csi)
	}
}

func keyEvent(b byte) (uiEvent, bool) {
	switch b {
	case '\t':
		return uiEvent{kind: uiNextTab}, true
	case '0':
		return uiEvent{kind: uiSelectTab, tab: 0}, true
	case ' ':
		return uiEvent{kind: uiTogglePause}, true
	case 'd', 'D':
		return uiEvent{kind: uiClearSelection}, true
	case 's', 'S':
		return uiEvent{kind: uiSelectMiddle}, true
	case 'q', 'Q', 0x03:
		return uiEvent{kind: uiQuit}, true
	default:
		if b >= '1' && b <= '9' {
			return uiEvent{kind: uiSelectTab, tab: int(b - '0')}, true
		}
		return uiEvent{}, false
	}
}

// parseSGRMouse decodes a complete CSI body as an SGR mouse report,
// "<Cb;Col;RowM". Only plain left-button presses produce an event;
// motion, wheel, and other buttons are dropped.
func parseSGRMouse(seq []byte) (uiEvent, bool) {
	if len(seq) < 2 || seq[len(seq)-1] != 'M' || seq[0] != '<' {
		return uiEvent{}, false
	}
	parts := strings.Split(string(seq[1:len(seq)-1]), ";")
	if len(parts) != 3 {
		return uiEvent{}, false
	}
	cb, err := strconv.Atoi(parts[0])
	if err != nil || cb < 0 {
		return uiEvent{}, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil || col < 0 {
		return uiEvent{}, false
	}
	row, err := strconv.Atoi(parts[2])
	if err != nil || row < 0 {
		return uiEvent{}, false
	}

	leftButton := cb&0b11 == 0
	motion := cb&0b0010_0000 != 0
	wheel := cb&0b0100_0000 != 0
	if !leftButton || motion || wheel {
		return uiEvent{}, false
	}
	if col > 0 {
		col--
	}
	if row > 0 {
		row--
	}
	return uiEvent{kind: uiMouseLeftDown, col: col, row: row}, true
}

// readTTY feeds TTY bytes through the parser and forwards decoded
// events. EOF on the TTY quits the application; any other read error is
// surfaced as a fatal event.
func readTTY(r io.Reader, out chan<- uiEvent) {
	var parser inputParser
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if ev, ok := parser.feed(b); ok {
				out <- ev
			}
		}
		if err != nil {
			if err == io.EOF {
				out <- uiEvent{kind: uiQuit}
			} else {
				out <- uiEvent{kind: uiFailed, err: err.Error()}
			}
			return
		}
	}
}
