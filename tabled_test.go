package tabled

import (
	"errors"
	"strings"
	"testing"

	"github.com/scirin/tabled/grid"
	"github.com/scirin/tabled/style"
)

type server struct {
	name   string
	region string
	cpus   string
}

func (s server) Headers() []string { return []string{"name", "region", "cpus"} }
func (s server) Fields() []string  { return []string{s.name, s.region, s.cpus} }

var fleet = []server{
	{"web-1", "fra1", "4"},
	{"db-1", "nyc3", "8"},
}

func TestNew_RendersHeaderAndRows(t *testing.T) {
	out, err := New(fleet).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"+-------+--------+------+",
		"| name  | region | cpus |",
		"+-------+--------+------+",
		"| web-1 | fra1   | 4    |",
		"+-------+--------+------+",
		"| db-1  | nyc3   | 8    |",
		"+-------+--------+------+",
	}, "\n")
	if out != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", out, want)
	}
}

func TestNew_NoRecords(t *testing.T) {
	out, err := New([]server{}).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestNew_MismatchedRecordSurfacesError(t *testing.T) {
	tbl := New([]broken{{}})
	if _, err := tbl.Render(); !errors.Is(err, ErrFieldCount) {
		t.Errorf("err = %v, want ErrFieldCount", err)
	}
	if got := tbl.String(); got != "" {
		t.Errorf("String on mismatched records = %q, want empty", got)
	}
}

func TestTable_SetStyle(t *testing.T) {
	tbl := New(fleet).SetStyle(style.Modern())
	out, err := tbl.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "┌") || strings.Contains(out, "+") {
		t.Errorf("modern style not applied:\n%s", out)
	}
}

func TestTable_SetSpan(t *testing.T) {
	tbl := NewBuilder().
		SetHeader("a", "b").
		AddRow("1", "2").
		Build().
		SetSpan(0, 0, 1, 2)

	out, err := tbl.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	header := strings.Split(out, "\n")[1]
	if strings.Count(header, "|") != 2 {
		t.Errorf("span interior shows a separator: %q", header)
	}
}

func TestTable_SetColumnAndOverflow(t *testing.T) {
	tbl := NewBuilder().
		SetHeader("k", "v").
		AddRow("key", "a very long value that will not fit").
		Build().
		SetOverflow(grid.OverflowTruncate).
		SetColumn(1, grid.Constraint{Width: 10})

	out, err := tbl.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "…") {
			return
		}
	}
	t.Errorf("expected truncation marker in:\n%s", out)
}

func TestTable_StringSwallowsConfigError(t *testing.T) {
	tbl := NewBuilder().SetHeader("a", "b").AddRow("1", "2").Build()
	tbl.SetSpan(0, 0, 5, 1) // extends past the matrix
	if _, err := tbl.Render(); err == nil {
		t.Fatal("expected configuration error")
	}
	if got := tbl.String(); got != "" {
		t.Errorf("String on invalid table = %q, want empty", got)
	}
}

func TestTable_RenderIdempotent(t *testing.T) {
	tbl := New(fleet)
	a, _ := tbl.Render()
	b, _ := tbl.Render()
	if a != b {
		t.Error("repeated renders differ")
	}
}
