package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, true)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		attr  string
	}{
		{"DEBUG", "dbg", "a=1"},
		{"INFO", "inf", "b=2"},
		{"WARN", "wrn", "c=3"},
		{"ERROR", "err", "d=4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.attr)
	}
}

func TestNewTextLogger_DropsDebugWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, false)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, false).With("task_id", "123", "op", "upload")
	log.Info(context.Background(), "hello", "k", "v")

	for _, s := range []string{"msg=hello", "task_id=123", "op=upload", "k=v"} {
		assert.Contains(t, buf.String(), s)
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
	assert.NotNil(t, l.With("a", 1))
}

func TestContextWith_AttrsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, true)

	ctx := ContextWith(context.Background(), "request_id", "r-1")
	ctx = ContextWith(ctx, "op", "list")
	log.Debug(ctx, "api request", "status", 200)

	out := buf.String()
	for _, s := range []string{"request_id=r-1", "op=list", "status=200"} {
		assert.Contains(t, out, s)
	}
}

func TestContextWith_DoesNotLeakToParent(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, false)

	parent := ContextWith(context.Background(), "a", 1)
	_ = ContextWith(parent, "b", 2)
	log.Info(parent, "x")

	assert.Contains(t, buf.String(), "a=1")
	assert.NotContains(t, buf.String(), "b=2")
}
