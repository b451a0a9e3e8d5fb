// Package store holds the client-side state containers that mirror
// server-owned aggregates. Each container is an independent state machine
// over {idle, loading, ready, error} with a snapshot slot that survives
// failed refreshes, so the UI never regresses to empty.
package store

import (
	"sync"

	"github.com/Hemang2208/vedicvogue-sync/internal/transport"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// lifecycle is the per-container state machine. Every operation stamps
// itself with a sequence number at dispatch; a response only lands if no
// newer operation has been dispatched since, so a slow response can never
// clobber the result of a newer one.
type lifecycle struct {
	mu     sync.Mutex
	state  State
	errMsg string
	seq    uint64
}

func newLifecycle() lifecycle {
	return lifecycle{state: StateIdle}
}

// begin moves the container to loading and returns the operation's sequence
// stamp.
func (l *lifecycle) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = StateLoading
	l.errMsg = ""
	l.seq++
	return l.seq
}

// succeed applies a successful response. apply runs under the container lock
// and replaces the snapshot wholesale. Returns false when the response lost
// the race to a newer dispatch and was discarded.
func (l *lifecycle) succeed(seq uint64, apply func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return false
	}
	l.state = StateReady
	l.errMsg = ""
	if apply != nil {
		apply()
	}
	return true
}

// fail records a failed operation. The snapshot is left untouched. Stale
// failures are discarded the same way stale successes are. Server rejections
// surface their message verbatim.
func (l *lifecycle) fail(seq uint64, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return false
	}
	message := err.Error()
	if reqErr, ok := transport.AsRequestError(err); ok {
		message = reqErr.Message
	}
	l.state = StateError
	l.errMsg = message
	return true
}

// reset returns the container to idle and runs apply (typically clearing the
// snapshot) under the lock.
func (l *lifecycle) reset(apply func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = StateIdle
	l.errMsg = ""
	l.seq++
	if apply != nil {
		apply()
	}
}

// Status reports the current state and, in the error state, the message
// surfaced verbatim from the failure.
func (l *lifecycle) Status() (State, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.errMsg
}

// read runs fn under the container lock, for copying snapshots out.
func (l *lifecycle) read(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}
