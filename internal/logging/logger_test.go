package logging

import "testing"

func TestNewRejectsInvalidLevel(t *testing.T) {
	if _, err := New("not-a-level"); err == nil {
		t.Fatal("expected error for an invalid log level")
	}
}

func TestNewAssignsCorrelationID(t *testing.T) {
	log, err := New("info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.CorrelationID() == "" {
		t.Fatal("expected a non-empty correlation id")
	}
}

func TestWithOpPreservesCorrelationID(t *testing.T) {
	log := NewNop()
	child := log.WithOp("clone")
	if child.CorrelationID() != log.CorrelationID() {
		t.Fatalf("WithOp changed correlation id: %s != %s", child.CorrelationID(), log.CorrelationID())
	}
}
