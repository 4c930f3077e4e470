package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/mtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Style selects a color from a renderer's palette.
type Style int

// Styles distinguished by the console renderer.
const (
	InternalStyle Style = iota // nodes with children
	LeafStyle                  // nodes without children
	FrameStyle                 // brackets and separators
)

// Config holds rendering parameters.
type Config struct {
	LineWidth int            // target line length in fixed-width positions
	Context   *uax11.Context // East Asian width context; nil means Latin
}

// ConsoleFixedWidth is a type for rendering trees on a console with
// a fixed width font.
//
// Every level of the tree becomes one output line. Nodes are printed as
// their keys, enclosed in brackets, with keys formatted through `%v`.
type ConsoleFixedWidth struct {
	colors map[Style]*color.Color
}

// NewConsoleFixedWidth creates a new renderer. It is to be used for consoles
// with a fixed width font.
//
// colors is a map from styles to colors, used for display. It may contain
// just a subset of the styles; missing entries render uncolored. Passing nil
// selects a default palette.
func NewConsoleFixedWidth(colors map[Style]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[Style]*color.Color {
	palette := map[Style]*color.Color{
		InternalStyle: color.New(color.FgBlue),
		LeafStyle:     color.New(color.FgGreen),
		FrameStyle:    color.New(color.FgHiBlack),
	}
	return palette
}

func (fw *ConsoleFixedWidth) styled(s string, style Style, w io.Writer) {
	if c, ok := fw.colors[style]; ok {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// Print renders a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](tree *mtree.Tree[T], fw *ConsoleFixedWidth, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Output(tree, os.Stdout, fw, config)
}

// Output renders a tree onto writer w, level by level. Lines longer than
// config.LineWidth are truncated with an ellipsis; trees deeper than their
// width allows are better served by a DOT export.
func Output[T any](tree *mtree.Tree[T], w io.Writer, fw *ConsoleFixedWidth, config *Config) error {
	if tree == nil || tree.IsEmpty() {
		return mtree.ErrEmptyTree
	}
	if fw == nil {
		fw = NewConsoleFixedWidth(nil)
	}
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	lines := collectLevels(tree)
	tracer().Debugf("rendering tree of height %d onto %d lines", tree.Height(), len(lines))
	for _, cells := range lines {
		if err := fw.line(cells, config.LineWidth, context, w); err != nil {
			return err
		}
	}
	return nil
}

// cell is one node, already formatted.
type cell struct {
	text string
	leaf bool
}

func collectLevels[T any](tree *mtree.Tree[T]) [][]cell {
	var lines [][]cell
	tree.EachNode(func(depth int, keys []T, nchildren int) bool {
		for depth >= len(lines) {
			lines = append(lines, nil)
		}
		lines[depth] = append(lines[depth], cell{
			text: formatKeys(keys),
			leaf: nchildren == 0,
		})
		return true
	})
	return lines
}

func (fw *ConsoleFixedWidth) line(cells []cell, linelength int, context *uax11.Context, w io.Writer) error {
	ccnt := 0
	for i, c := range cells {
		// cell width in fixed-width positions, not in bytes: wide keys
		// (East Asian scripts) occupy two positions per character
		cw := uax11.StringWidth(grapheme.StringFromString(c.text), context)
		need := cw + 2
		if i > 0 {
			need += 2
		}
		if linelength > 0 && ccnt+need > linelength {
			fw.styled(" …", FrameStyle, w)
			break
		}
		if i > 0 {
			w.Write([]byte("  "))
			ccnt += 2
		}
		fw.styled("[", FrameStyle, w)
		if c.leaf {
			fw.styled(c.text, LeafStyle, w)
		} else {
			fw.styled(c.text, InternalStyle, w)
		}
		fw.styled("]", FrameStyle, w)
		ccnt += cw + 2
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	config.Context = uax11.ContextFromEnvironment()
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}

func formatKeys[T any](keys []T) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", k)
	}
	return b.String()
}
