package tabled

import (
	"strings"
	"testing"
)

func TestBuilder_Basic(t *testing.T) {
	out, err := NewBuilder().
		SetHeader("id", "state").
		AddRow("1", "running").
		AddRow("2", "stopped").
		Build().
		Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "id") || !strings.Contains(lines[1], "state") {
		t.Errorf("header line = %q", lines[1])
	}
}

func TestBuilder_PadsShortRows(t *testing.T) {
	out, err := NewBuilder().
		SetHeader("a", "b", "c").
		AddRow("1").
		AddRow("1", "2", "3").
		Build().
		Render()
	if err != nil {
		t.Fatalf("short rows must be padded, not an error: %v", err)
	}
	for i, line := range strings.Split(out, "\n") {
		if w := len([]rune(line)); w != len([]rune(strings.Split(out, "\n")[0])) {
			t.Errorf("line %d width %d differs: %q", i, w, line)
		}
	}
}

func TestBuilder_WidensToLongestRow(t *testing.T) {
	tbl := NewBuilder().
		SetHeader("a").
		AddRow("1", "2", "3").
		Build()
	if got := tbl.Matrix().Cols(); got != 3 {
		t.Errorf("cols = %d, want 3", got)
	}
	if _, err := tbl.Render(); err != nil {
		t.Errorf("Render: %v", err)
	}
}

func TestBuilder_NoHeader(t *testing.T) {
	out, err := NewBuilder().AddRow("x", "y").Build().Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines for one row, got %d", len(lines))
	}
}

func TestBuilder_Empty(t *testing.T) {
	out, err := NewBuilder().Build().Render()
	if err != nil || out != "" {
		t.Errorf("empty builder: out=%q err=%v", out, err)
	}
}
