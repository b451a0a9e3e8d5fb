package store

import (
	"errors"
	"testing"

	"github.com/Hemang2208/vedicvogue-sync/internal/transport"
)

func TestLifecycleLastWriteWins(t *testing.T) {
	l := newLifecycle()
	value := ""

	seqA := l.begin()
	seqB := l.begin()

	if !l.succeed(seqB, func() { value = "B" }) {
		t.Fatal("expected the newest dispatch to land")
	}
	if l.succeed(seqA, func() { value = "A" }) {
		t.Fatal("expected the stale response to be discarded")
	}

	if value != "B" {
		t.Fatalf("expected snapshot B, got %q", value)
	}
	if state, _ := l.Status(); state != StateReady {
		t.Fatalf("expected ready state, got %s", state)
	}
}

func TestLifecycleStaleFailureDiscarded(t *testing.T) {
	l := newLifecycle()

	seqA := l.begin()
	seqB := l.begin()

	if !l.succeed(seqB, nil) {
		t.Fatal("expected the newest dispatch to land")
	}
	if l.fail(seqA, errors.New("slow failure")) {
		t.Fatal("expected the stale failure to be discarded")
	}

	state, errMsg := l.Status()
	if state != StateReady || errMsg != "" {
		t.Fatalf("expected clean ready state, got %s %q", state, errMsg)
	}
}

func TestLifecycleFailureKeepsMessage(t *testing.T) {
	l := newLifecycle()

	seq := l.begin()
	if !l.fail(seq, errors.New("network down")) {
		t.Fatal("expected failure to land")
	}

	state, errMsg := l.Status()
	if state != StateError || errMsg != "network down" {
		t.Fatalf("unexpected state: %s %q", state, errMsg)
	}
}

func TestLifecycleSurfacesServerMessageVerbatim(t *testing.T) {
	l := newLifecycle()

	seq := l.begin()
	l.fail(seq, &transport.RequestError{Status: 409, Message: "address already exists"})

	_, errMsg := l.Status()
	if errMsg != "address already exists" {
		t.Fatalf("expected verbatim server message, got %q", errMsg)
	}
}

func TestLifecycleLoadingClearsError(t *testing.T) {
	l := newLifecycle()

	seq := l.begin()
	l.fail(seq, errors.New("first failure"))

	l.begin()
	state, errMsg := l.Status()
	if state != StateLoading || errMsg != "" {
		t.Fatalf("expected clean loading state on refresh, got %s %q", state, errMsg)
	}
}
