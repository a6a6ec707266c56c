package promptwire

import "strings"

// DeltaHandler converts a stream of cumulative text snapshots into a stream
// of increments. Some providers resend the complete text generated so far on
// every event; DeltaHandler remembers the previous snapshot and forwards only
// the new suffix to the wrapped handler.
//
// A snapshot that does not contain the previous one means the generation
// restarted: the state resets and the whole snapshot is forwarded as new
// text. Not safe for concurrent use; a DeltaHandler serves one stream at a
// time.
type DeltaHandler struct {
	next     StreamHandler
	previous string
}

// NewDeltaHandler wraps next with snapshot deduplication. A nil next falls
// back to a WriterHandler.
func NewDeltaHandler(next StreamHandler) *DeltaHandler {
	if next == nil {
		next = &WriterHandler{}
	}
	return &DeltaHandler{next: next}
}

// HandleToken forwards the unseen part of snapshot to the wrapped handler
// and returns it. The first call forwards the whole snapshot.
func (d *DeltaHandler) HandleToken(snapshot string) string {
	if !strings.Contains(snapshot, d.previous) {
		d.previous = ""
	}
	delta := snapshot[len(d.previous):]
	d.next.HandleToken(delta)
	d.previous = snapshot
	return delta
}

// Reset clears the remembered snapshot so the handler can serve a new stream.
func (d *DeltaHandler) Reset() { d.previous = "" }

// Compile-time check that DeltaHandler implements StreamHandler.
var _ StreamHandler = (*DeltaHandler)(nil)
