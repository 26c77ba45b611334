// Package box is a small grouped-layout engine for S-expression style dumps.
//
// A Doc is a tree of text fragments joined by soft breaks and nested in
// groups. A group renders on a single line when it fits within the remaining
// width; otherwise each of its direct soft breaks becomes a newline indented
// relative to the column at which the group started. Nested groups decide
// independently, so inner structure stays compact even when an outer form
// wraps.
package box

import (
	"io"
	"strings"
)

const DefaultWidth = 80

type kind uint8

const (
	textDoc kind = iota
	breakDoc
	groupDoc
)

type Doc struct {
	kind   kind
	text   string
	indent int
	parts  []Doc
}

// Text is a verbatim fragment. It must not contain newlines.
func Text(s string) Doc { return Doc{kind: textDoc, text: s} }

// Break is a soft break: a single space when the enclosing group is flat, a
// newline plus indentation when it is broken.
func Break() Doc { return Doc{kind: breakDoc, text: " "} }

// Group nests parts under a common break decision. indent is the extra
// indentation applied to broken lines, relative to the group's start column.
func Group(indent int, parts ...Doc) Doc {
	return Doc{kind: groupDoc, indent: indent, parts: parts}
}

// flatWidth is the width the doc occupies when no break fires.
func (d Doc) flatWidth() int {
	switch d.kind {
	case textDoc, breakDoc:
		return len(d.text)
	default:
		w := 0
		for _, p := range d.parts {
			w += p.flatWidth()
		}
		return w
	}
}

type renderer struct {
	out   io.Writer
	width int
	col   int
	err   error
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.out, s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		r.col = len(s) - i - 1
	} else {
		r.col += len(s)
	}
}

func (r *renderer) render(d Doc, margin int, flat bool) {
	switch d.kind {
	case textDoc:
		r.write(d.text)
	case breakDoc:
		if flat {
			r.write(d.text)
		} else {
			r.write("\n" + strings.Repeat(" ", margin))
		}
	default:
		fits := flat || r.col+d.flatWidth() <= r.width
		inner := r.col + d.indent
		for _, p := range d.parts {
			r.render(p, inner, fits)
		}
	}
}

// Render lays out d and writes it to w. A width of zero or less means
// DefaultWidth. The only error Render can report is one returned by w.
func Render(w io.Writer, width int, d Doc) error {
	if width <= 0 {
		width = DefaultWidth
	}
	r := &renderer{out: w, width: width}
	r.render(d, 0, false)
	return r.err
}

// String renders d at the default width.
func String(d Doc) string {
	sb := &strings.Builder{}
	_ = Render(sb, DefaultWidth, d)
	return sb.String()
}
