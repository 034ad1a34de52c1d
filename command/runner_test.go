package command_test

import (
	"context"
	"testing"

	"hotedge/command"
)

func TestRunnerBlocking(t *testing.T) {
	r := &command.Runner{Blocking: true}

	if err := r.Run(context.Background(), []string{"true"}); err != nil {
		t.Fatalf("Run(true) returned error: %v", err)
	}
	if err := r.Run(context.Background(), []string{"false"}); err == nil {
		t.Fatal("blocking run must surface a non-zero exit")
	}
}

func TestRunnerMissingBinary(t *testing.T) {
	r := &command.Runner{Blocking: false}
	if err := r.Run(context.Background(), []string{"hotedge-no-such-binary"}); err == nil {
		t.Fatal("expected error for unresolvable command")
	}
}

func TestRunnerNilVectorIsNoop(t *testing.T) {
	r := &command.Runner{Blocking: true}
	if err := r.Run(context.Background(), nil); err != nil {
		t.Fatalf("nil vector must be a no-op, got %v", err)
	}
}
