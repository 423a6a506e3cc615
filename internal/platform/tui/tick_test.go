package tui

import (
	"testing"
	"time"
)

func TestSchedulerSingleChain(t *testing.T) {
	var s scheduler

	if s.accepts(TickMsg{Gen: 0}) {
		t.Fatal("inactive scheduler accepted a tick")
	}
	if cmd := s.next(time.Second); cmd != nil {
		t.Error("next() on an inactive scheduler should return nil")
	}

	if cmd := s.restart(time.Second); cmd == nil {
		t.Fatal("restart() returned nil")
	}
	first := s.gen
	if !s.accepts(TickMsg{Gen: first}) {
		t.Error("live chain tick rejected")
	}

	s.restart(time.Second / 2)
	if s.accepts(TickMsg{Gen: first}) {
		t.Error("tick from a replaced chain accepted")
	}
	if !s.accepts(TickMsg{Gen: s.gen}) {
		t.Error("tick from the new chain rejected")
	}

	s.cancel()
	if s.accepts(TickMsg{Gen: s.gen}) {
		t.Error("tick accepted after cancel")
	}
	if cmd := s.next(time.Second); cmd != nil {
		t.Error("next() after cancel should return nil")
	}
}
