package tui

import (
	"bufio"
	"io"
	"strings"
)

// readLines reads whole lines from the input stream and forwards them
// in arrival order. Sequence numbers are assigned by the coordinator at
// dequeue time, not here. A trailing \n and then a trailing \r are
// removed, so CRLF input is accepted.
func readLines(r io.Reader, out chan<- lineEvent) {
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			out <- lineEvent{kind: lineData, text: line}
		}
		if err != nil {
			if err == io.EOF {
				out <- lineEvent{kind: lineClosed}
			} else {
				out <- lineEvent{kind: lineFailed, err: err.Error()}
			}
			return
		}
	}
}
