// seehuhn.de/go/dxf - a library for reading DXF drawing files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package traverse implements the navigation through the parts of a DXF
// file for the dxf-inspect tool.
package traverse

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/term"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/feature"
)

// Context is one node in the tree of inspectable objects.
type Context interface {
	// Show writes a textual description of the object to w.
	Show(w io.Writer) error

	// Next lists the steps which lead from this object to its children.
	Next() []Step
}

// Step represents an action which can be performed on a context to either move
// to a child object or to get a new view of the same object.
type Step struct {
	// Match is a regular expression which is used to select a step
	// from the key chosen by the user.
	Match *regexp.Regexp

	// Desc is a human-readable description of the step.
	// For keywords this should be enclosed in backticks, e.g. "`layers`".
	// Otherwise this should be a short description, e.g. "entity index".
	Desc string

	// Next returns the next context reached by this step.
	// The caller must ensure that the key matches the Match regular expression.
	Next func(key string) (Context, error)
}

// KeyError is returned when a key does not select any child of a context.
type KeyError struct {
	Key string
	Ctx string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid key %q for %s", e.Key, e.Ctx)
}

// Walk follows a single key from c.
func Walk(c Context, key string) (Context, error) {
	for _, step := range c.Next() {
		if step.Match.MatchString(key) {
			return step.Next(key)
		}
	}
	return nil, &KeyError{Key: key, Ctx: fmt.Sprintf("%T", c)}
}

// Root reads a DXF file and returns the top-level context.
// The file name "-" denotes standard input.
func Root(fileName string) (Context, error) {
	var r io.Reader
	c := &fileCtx{name: fileName}
	if fileName == "-" {
		r = os.Stdin
		c.name = "<stdin>"
	} else {
		fd, err := os.Open(fileName)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		if st, err := fd.Stat(); err == nil {
			c.size = st.Size()
		}
		r = fd
	}

	doc, err := dxf.Read(r)
	if err != nil {
		return nil, err
	}
	c.doc = doc
	c.conv = feature.NewConverter(doc, nil)
	return c, nil
}

// FromDocument returns the top-level context for an already parsed
// document.
func FromDocument(name string, doc *dxf.Document) Context {
	return &fileCtx{
		name: name,
		doc:  doc,
		conv: feature.NewConverter(doc, nil),
	}
}

type fileCtx struct {
	name string
	size int64
	doc  *dxf.Document
	conv *feature.Converter
}

func (c *fileCtx) Next() []Step {
	return []Step{
		{
			Match: regexp.MustCompile(`^header$`),
			Desc:  "`header`",
			Next: func(key string) (Context, error) {
				return &headerCtx{h: c.doc.Header}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^layers$`),
			Desc:  "`layers`",
			Next: func(key string) (Context, error) {
				return &layersCtx{t: c.doc.Tables}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^styles$`),
			Desc:  "`styles`",
			Next: func(key string) (Context, error) {
				return &stylesCtx{t: c.doc.Tables}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^linetypes$`),
			Desc:  "`linetypes`",
			Next: func(key string) (Context, error) {
				return &lineTypesCtx{t: c.doc.Tables}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^blocks$`),
			Desc:  "`blocks`",
			Next: func(key string) (Context, error) {
				return &blocksCtx{doc: c.doc, conv: c.conv}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^entities$`),
			Desc:  "`entities`",
			Next: func(key string) (Context, error) {
				return &entityListCtx{entities: c.doc.Entities, conv: c.conv}, nil
			},
		},
		{
			Match: regexp.MustCompile(`^features$`),
			Desc:  "`features`",
			Next: func(key string) (Context, error) {
				return &featureListCtx{features: c.conv.Features()}, nil
			},
		},
	}
}

func (c *fileCtx) Show(w io.Writer) error {
	fmt.Fprintln(w, "file:", c.name)
	if c.size > 0 {
		fmt.Fprintln(w, "size:", c.size)
	}
	if v := c.doc.Header.Version; v != "" {
		fmt.Fprintln(w, "version:", v)
	}
	fmt.Fprintln(w, "layers:", len(c.doc.Tables.Layers))
	fmt.Fprintln(w, "blocks:", len(c.doc.Blocks))
	fmt.Fprintln(w, "entities:", len(c.doc.Entities))
	return nil
}

var intRegexp = regexp.MustCompile(`^(\d+)$`)

// index parses a list index in the range 0, ..., n-1.
func index(key string, n int, ctx string) (int, error) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n {
		return 0, &KeyError{Key: key, Ctx: ctx}
	}
	return i, nil
}

// lineWidth returns the width of the terminal, or 0 if the standard output
// is not a terminal.
func lineWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// clip shortens s to at most width runes, if width is positive.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	rr := []rune(s)
	if len(rr) <= width {
		return s
	}
	return string(rr[:width-1]) + "…"
}
