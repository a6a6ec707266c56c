package sse

import (
	"bufio"
	"io"
	"strings"

	"github.com/promptwire/promptwire"
)

// Scanner buffer sizing: chat completion chunks are small, but tool-call
// arguments can arrive as one large event.
const (
	initialBufSize = 64 * 1024
	maxBufSize     = 512 * 1024
)

// Reader yields the data payloads of an SSE stream. Successive data fields
// of one event are joined with newlines; comments and non-data fields are
// skipped. The stream ends at EOF or at a payload equal to
// promptwire.DoneMarker.
type Reader struct {
	s    *bufio.Scanner
	data string
	done bool
}

// NewReader wraps r. Events up to 512KiB are tolerated.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, initialBufSize), maxBufSize)
	return &Reader{s: s}
}

// Scan advances to the next event payload, returning false at the end of
// the stream.
func (r *Reader) Scan() bool {
	if r.done {
		return false
	}
	var fields []string
	flush := func() bool {
		data := strings.Join(fields, "\n")
		if data == promptwire.DoneMarker {
			r.done = true
			return false
		}
		r.data = data
		return true
	}
	for r.s.Scan() {
		line := strings.TrimSuffix(r.s.Text(), "\r")
		if line == "" {
			if len(fields) == 0 {
				continue
			}
			return flush()
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		field, value, _ := strings.Cut(line, ":")
		if field != "data" {
			continue
		}
		fields = append(fields, strings.TrimPrefix(value, " "))
	}
	if len(fields) > 0 {
		// Stream ended without the terminating blank line.
		return flush()
	}
	return false
}

// Data returns the payload of the current event.
func (r *Reader) Data() string { return r.data }

// Err returns the first error hit by the underlying scanner, never io.EOF.
func (r *Reader) Err() error { return r.s.Err() }

// Relay forwards every event payload from r to h and returns the number of
// events forwarded.
func Relay(r io.Reader, h promptwire.StreamHandler) (int, error) {
	if h == nil {
		return 0, promptwire.ErrNilHandler
	}
	rd := NewReader(r)
	n := 0
	for rd.Scan() {
		h.HandleToken(rd.Data())
		n++
	}
	return n, rd.Err()
}
