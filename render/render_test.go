package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/mtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// plain returns a renderer without any colors, for deterministic output.
func plain() *ConsoleFixedWidth {
	return NewConsoleFixedWidth(map[Style]*color.Color{})
}

func fanTree(t *testing.T) *mtree.Tree[int] {
	t.Helper()
	tree, err := mtree.New[int](3)
	if err != nil {
		t.Fatalf("cannot create tree: %v", err)
	}
	for _, k := range []int{12, 20, 10, 30, 11, 40} {
		tree.Add(k)
	}
	return tree
}

func TestOutputLevels(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := fanTree(t)
	var buf bytes.Buffer
	if err := Output(tree, &buf, plain(), &Config{LineWidth: 65}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := "[12 30]\n[10 11]  [20]  [40]\n"
	if buf.String() != want {
		t.Errorf("rendered output =\n%q, want\n%q", buf.String(), want)
	}
}

func TestOutputTruncatesLongLines(t *testing.T) {
	tree := fanTree(t)
	var buf bytes.Buffer
	if err := Output(tree, &buf, plain(), &Config{LineWidth: 10}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := "[12 30]\n[10 11] …\n"
	if buf.String() != want {
		t.Errorf("rendered output =\n%q, want\n%q", buf.String(), want)
	}
}

func TestOutputMeasuresWideKeys(t *testing.T) {
	tree, err := mtree.New[string](5)
	if err != nil {
		t.Fatalf("cannot create tree: %v", err)
	}
	for _, k := range []string{"木", "林", "森"} {
		tree.Add(k)
	}
	// each ideograph occupies 2 fixed-width positions, the cell is
	// "[木 林 森]" = 10 positions; byte length would be well above that
	var buf bytes.Buffer
	if err := Output(tree, &buf, plain(), &Config{LineWidth: 10}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := "[木 林 森]\n"
	if buf.String() != want {
		t.Errorf("rendered output =\n%q, want\n%q", buf.String(), want)
	}
	buf.Reset()
	if err := Output(tree, &buf, plain(), &Config{LineWidth: 9}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want = " …\n"
	if buf.String() != want {
		t.Errorf("rendered output =\n%q, want\n%q", buf.String(), want)
	}
}

func TestOutputEmptyTree(t *testing.T) {
	tree, _ := mtree.New[int](5)
	var buf bytes.Buffer
	err := Output(tree, &buf, plain(), &Config{LineWidth: 65})
	if !errors.Is(err, mtree.ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty tree should produce no output, got %q", buf.String())
	}
}

func TestDefaultPaletteCoversAllStyles(t *testing.T) {
	fw := NewConsoleFixedWidth(nil)
	for _, s := range []Style{InternalStyle, LeafStyle, FrameStyle} {
		if _, ok := fw.colors[s]; !ok {
			t.Errorf("default palette misses style %d", s)
		}
	}
}
