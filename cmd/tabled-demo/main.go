package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"

	"github.com/scirin/tabled"
	"github.com/scirin/tabled/grid"
	"github.com/scirin/tabled/style"
)

func main() {
	styleName := flag.String("style", "modern", "Border preset (see -list)")
	themePath := flag.String("theme", "", "Path to a yaml theme file")
	width := flag.Int("width", 0, "Maximum table width (0 = detect terminal)")
	noColor := flag.Bool("no-color", false, "Disable color output")
	listStyles := flag.Bool("list", false, "List available border presets")
	gallery := flag.Bool("gallery", false, "Render the sample table in every preset")
	interactive := flag.Bool("interactive", false, "Browse the gallery in a pager")
	flag.Parse()

	if *listStyles {
		for _, s := range style.All() {
			fmt.Println(s.Name)
		}
		return
	}

	if *noColor {
		style.DisableColor()
	} else {
		style.ApplyColorProfile()
	}

	maxWidth := *width
	if maxWidth == 0 {
		maxWidth = detectWidth()
	}

	if *interactive {
		if err := runPager(galleryOutput(maxWidth)); err != nil {
			fmt.Fprintf(os.Stderr, "tabled-demo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *gallery {
		fmt.Print(galleryOutput(maxWidth))
		return
	}

	tbl, err := sampleTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabled-demo: %v\n", err)
		os.Exit(1)
	}
	tbl.SetMaxWidth(maxWidth)

	if *themePath != "" {
		th, err := style.LoadTheme(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tabled-demo: %v\n", err)
			os.Exit(1)
		}
		tbl.SetTheme(th)
	} else {
		s, ok := style.ByName(*styleName)
		if !ok {
			fmt.Fprintf(os.Stderr, "tabled-demo: unknown style %q (try -list)\n", *styleName)
			os.Exit(1)
		}
		tbl.SetStyle(s)
	}

	out, err := tbl.Render()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabled-demo: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
	fmt.Println()
	fmt.Println(spanShowcase(*styleName))
}

// server is the demo's sample record type.
type server struct {
	Name   string
	Region string
	CPUs   int
	Status string
}

func (s server) Headers() []string {
	return []string{"name", "region", "cpus", "status"}
}

func (s server) Fields() []string {
	return []string{s.Name, s.Region, strconv.Itoa(s.CPUs), s.Status}
}

func fleet() []server {
	return []server{
		{"web-01", "eu-west-1", 4, "running"},
		{"web-02", "eu-west-1", 4, "running"},
		{"db-primary", "us-east-2", 16, "running"},
		{"db-replica", "us-east-2", 16, "syncing"},
		{"batch-runner", "ap-south-1", 8, "stopped"},
	}
}

func sampleTable() (*tabled.Table, error) {
	return tabled.NewMapper().
		Rename("cpus", "vCPUs").
		Table(recordsOf(fleet())...)
}

func recordsOf(servers []server) []tabled.Tabled {
	out := make([]tabled.Tabled, len(servers))
	for i, s := range servers {
		out[i] = s
	}
	return out
}

// spanShowcase renders a small report with row and column spans.
func spanShowcase(styleName string) string {
	tbl := tabled.FromMatrix(grid.NewMatrix([][]string{
		{"fleet summary", "", ""},
		{"region", "servers", "cpus"},
		{"eu-west-1", "2", "8"},
		{"us-east-2", "2", "32"},
		{"ap-south-1", "1", "8"},
	}))
	tbl.SetSpan(0, 0, 1, 3)
	tbl.SetAlignment(grid.AlignCenter)
	if s, ok := style.ByName(styleName); ok {
		tbl.SetStyle(s)
	}
	return tbl.String()
}

// galleryOutput renders the sample table once per preset.
func galleryOutput(maxWidth int) string {
	var sb strings.Builder
	for _, s := range style.All() {
		tbl, err := sampleTable()
		if err != nil {
			continue
		}
		out, err := tbl.SetStyle(s).SetMaxWidth(maxWidth).Render()
		if err != nil {
			continue
		}
		sb.WriteString("== " + s.Name + " ==\n")
		sb.WriteString(out)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// detectWidth returns the terminal width, falling back to the COLUMNS
// environment variable and finally to 100 columns.
func detectWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return 100
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render sample tables in the available border presets.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Single table in the rounded preset\n")
		fmt.Fprintf(os.Stderr, "  %s -style rounded\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Every preset at a fixed width, no color\n")
		fmt.Fprintf(os.Stderr, "  %s -gallery -width 80 -no-color\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Scroll through the gallery\n")
		fmt.Fprintf(os.Stderr, "  %s -interactive\n", os.Args[0])
	}
}
