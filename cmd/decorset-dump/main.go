// Command decorset-dump loads a text file, decorates its blank lines and
// trailing whitespace, and prints a per-line layout summary. It exists to
// exercise the decor, changelog, and linelayout packages end to end from
// the command line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"unicode"

	"golang.org/x/sys/unix"

	"github.com/rjkroege/deco/changelog"
	"github.com/rjkroege/deco/decor"
	"github.com/rjkroege/deco/linelayout"
)

var (
	filename = flag.String("f", "", "the file to scan (required)")
	debug    = flag.Bool("d", false, "set for verbose debugging")
)

func main() {
	flag.Parse()
	if !*debug {
		log.SetOutput(io.Discard)
	}
	if *filename == "" {
		log.SetOutput(os.Stderr)
		log.Fatalf("usage: decorset-dump -f <file>")
	}

	var st unix.Stat_t
	if err := unix.Stat(*filename, &st); err != nil {
		log.Printf("stat %s: %v (continuing without inode info)", *filename, err)
	} else {
		log.Printf("scanning %s (inode %d, %d bytes)", *filename, st.Ino, st.Size)
	}

	f, err := changelog.LoadFile(*filename)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("decorset-dump: %v", err)
	}

	lines := splitLines(f.Text)
	set := decor.Of(buildDecorations(f.Text, lines))
	log.Printf("built decoration set: %d decorations", set.Size)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	dumpLines(w, lines, set)
}

type line struct {
	from, to int
}

func splitLines(text []rune) []line {
	var lines []line
	start := 0
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, line{from: start, to: i})
			start = i + 1
		}
	}
	lines = append(lines, line{from: start, to: len(text)})
	return lines
}

func buildDecorations(text []rune, lines []line) []decor.Decoration {
	var decs []decor.Decoration
	for _, ln := range lines {
		if ln.to == ln.from {
			decs = append(decs, decor.PointOf(ln.from, decor.PointDescriptor{
				Widget: linelayout.TextWidget{Text: "·", Height: 1},
			}))
			continue
		}
		trimmed := ln.to
		for trimmed > ln.from && unicode.IsSpace(text[trimmed-1]) {
			trimmed--
		}
		if trimmed < ln.to {
			d, err := decor.RangeOf(trimmed, ln.to, decor.RangeDescriptor{Class: "trailing-ws"})
			if err == nil {
				decs = append(decs, d)
			}
		}
	}
	return decs
}

func dumpLines(w io.Writer, lines []line, set *decor.DecorationSet) {
	for i, ln := range lines {
		b := &linelayout.Builder{}
		decor.BuildLineElements([]*decor.DecorationSet{set}, ln.from, ln.to, b, false)
		fmt.Fprintf(w, "%4d: visible=%-4d elements=%-3d height=%.1f\n",
			i+1, b.VisibleLength(), len(b.Elements), b.Height())
	}
}
