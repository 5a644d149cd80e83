package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextRoundTrip(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	stored := zap.New(core)

	ctx := ContextWithLogger(context.Background(), stored)
	FromContext(ctx).Info("through the context")

	if logs.Len() != 1 {
		t.Fatalf("got %d entries, want 1", logs.Len())
	}
	if got := logs.All()[0].Message; got != "through the context" {
		t.Errorf("message = %q", got)
	}
}

func TestFromContextDefaultsToNop(t *testing.T) {
	log := FromContext(context.Background())
	if log == nil {
		t.Fatal("FromContext returned nil")
	}
	// Must be safe to use without panicking.
	log.Info("dropped")
}
