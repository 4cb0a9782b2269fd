package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func collectLines(r io.Reader) []lineEvent {
	out := make(chan lineEvent, lineChannelDepth)
	done := make(chan struct{})
	var events []lineEvent
	go func() {
		for ev := range out {
			events = append(events, ev)
		}
		close(done)
	}()
	readLines(r, out)
	close(out)
	<-done
	return events
}

func TestReadLinesTrimsLFAndCRLF(t *testing.T) {
	events := collectLines(strings.NewReader("plain\ncarriage\r\nlast"))
	want := []string{"plain", "carriage", "last"}
	if len(events) != len(want)+1 {
		t.Fatalf("got %d events, want %d", len(events), len(want)+1)
	}
	for i, text := range want {
		if events[i].kind != lineData || events[i].text != text {
			t.Fatalf("event %d = %+v, want %q", i, events[i], text)
		}
	}
	if events[len(events)-1].kind != lineClosed {
		t.Fatalf("final event = %+v, want closed", events[len(events)-1])
	}
}

func TestReadLinesKeepsInteriorCR(t *testing.T) {
	events := collectLines(strings.NewReader("a\rb\n"))
	if events[0].text != "a\rb" {
		t.Fatalf("text = %q, want interior CR preserved", events[0].text)
	}
}

func TestReadLinesForwardsEmptyLines(t *testing.T) {
	events := collectLines(strings.NewReader("\n\n"))
	if len(events) != 3 {
		t.Fatalf("got %d events, want 2 lines + closed", len(events))
	}
	if events[0].text != "" || events[1].text != "" {
		t.Fatalf("empty lines mangled: %+v", events[:2])
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadLinesSurfacesReadErrors(t *testing.T) {
	events := collectLines(failingReader{})
	if len(events) != 1 || events[0].kind != lineFailed {
		t.Fatalf("events = %+v, want a single failure", events)
	}
	if !strings.Contains(events[0].err, "disk on fire") {
		t.Fatalf("err = %q", events[0].err)
	}
}
