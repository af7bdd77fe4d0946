package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestNoOpCollector(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("test")
	timer.Child("child").End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf)

	if buf.Len() != 0 {
		t.Errorf("no-op collector should produce no output, got: %s", buf.String())
	}
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())

	if collector == nil {
		t.Fatal("FromContext should never return nil")
	}
	if _, ok := collector.(noOpCollector); !ok {
		t.Errorf("FromContext should return noOpCollector when none present, got: %T", collector)
	}
}

func TestWithCollector(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	retrieved, ok := FromContext(ctx).(*TimingCollector)
	if !ok || retrieved != collector {
		t.Error("FromContext should return the collector that was added")
	}
}

func TestTimingCollectorTree(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("process instruction")
	parse := root.Child("parse")
	time.Sleep(time.Millisecond)
	parse.End()
	validate := root.Child("validate")
	validate.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	out := buf.String()

	if !strings.Contains(out, "process instruction") {
		t.Errorf("report should name the root timer, got: %s", out)
	}
	if !strings.Contains(out, "├─ parse") {
		t.Errorf("report should nest the first child, got: %s", out)
	}
	if !strings.Contains(out, "└─ validate") {
		t.Errorf("report should mark the last child, got: %s", out)
	}
}

func TestTimingCollectorEmptyReport(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf)

	if buf.Len() != 0 {
		t.Errorf("empty collector should produce no output, got: %s", buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "0.5ms"},
		{42 * time.Millisecond, "42.0ms"},
		{1500 * time.Millisecond, "1.50s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
