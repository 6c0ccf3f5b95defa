package grid

import "testing"

func TestNewCell_Lines(t *testing.T) {
	c := NewCell("one\ntwo long")
	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "one" || lines[0].Width != 3 {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Text != "two long" || lines[1].Width != 8 {
		t.Errorf("line 1 = %+v", lines[1])
	}
	if c.ContentWidth() != 8 {
		t.Errorf("ContentWidth = %d, want 8", c.ContentWidth())
	}
}

func TestNewCell_WideRunes(t *testing.T) {
	c := NewCell("日本")
	if c.ContentWidth() != 4 {
		t.Errorf("ContentWidth(日本) = %d, want 4", c.ContentWidth())
	}
}

func TestNewCell_ANSIZeroWidth(t *testing.T) {
	plain := NewCell("text")
	colored := NewCell("\x1b[31mtext\x1b[0m")
	if colored.ContentWidth() != plain.ContentWidth() {
		t.Errorf("decorated width %d != plain width %d",
			colored.ContentWidth(), plain.ContentWidth())
	}
}

func TestCell_EmptyOccupiesOneLine(t *testing.T) {
	c := NewCell("")
	if c.LineCount() != 1 {
		t.Errorf("LineCount of empty cell = %d, want 1", c.LineCount())
	}
	if c.ContentWidth() != 0 {
		t.Errorf("ContentWidth of empty cell = %d, want 0", c.ContentWidth())
	}
}

func TestCell_SpanNormalized(t *testing.T) {
	c := Cell{}
	if c.RowSpan() != 1 || c.ColSpan() != 1 {
		t.Errorf("zero span normalizes to 1x1, got %dx%d", c.RowSpan(), c.ColSpan())
	}
	s := NewSpanCell("x", 2, 3)
	if s.RowSpan() != 2 || s.ColSpan() != 3 {
		t.Errorf("span = %dx%d, want 2x3", s.RowSpan(), s.ColSpan())
	}
	if !s.spanning() || c.spanning() {
		t.Error("spanning() misreported")
	}
}

func TestMatrix_Shape(t *testing.T) {
	m := NewMatrix([][]string{{"a", "b"}, {"c", "d"}})
	if m.Rows() != 2 || m.Cols() != 2 {
		t.Errorf("shape = %dx%d, want 2x2", m.Rows(), m.Cols())
	}
	var empty Matrix
	if empty.Rows() != 0 || empty.Cols() != 0 {
		t.Error("empty matrix shape should be 0x0")
	}
}
