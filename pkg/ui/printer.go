// Package ui renders quotes, tag lists, and messages for the command line.
package ui

import (
	"fmt"
	"io"

	"github.com/Snider/quotes/pkg/quotes"
	"github.com/fatih/color"
)

// Printer writes user-facing output. Color is applied per instance, so a
// Printer writing to a buffer stays plain regardless of the process terminal.
type Printer struct {
	out   io.Writer
	text  *color.Color
	meta  *color.Color
	title *color.Color
	err   *color.Color
}

// NewPrinter returns a Printer writing to out.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout, ui.ColorEnabled(os.Stdout, false))
//	p.Quote(q)
func NewPrinter(out io.Writer, useColor bool) *Printer {
	p := &Printer{
		out:   out,
		text:  color.New(color.FgGreen),
		meta:  color.New(color.FgCyan),
		title: color.New(color.Bold),
		err:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.text, p.meta, p.title, p.err} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Quote prints a quote framed by blank lines:
//
//	"text"
//	— author  [tag]
func (p *Printer) Quote(q quotes.Quote) {
	fmt.Fprintln(p.out)
	p.text.Fprintf(p.out, "\"%s\"", q.Text)
	fmt.Fprintln(p.out)
	p.meta.Fprintf(p.out, "— %s  [%s]", q.Author, q.Tag)
	fmt.Fprint(p.out, "\n\n")
}

// Tags prints a heading followed by one bulleted line per tag.
func (p *Printer) Tags(tags []string) {
	fmt.Fprintln(p.out)
	p.title.Fprint(p.out, "Available tags:")
	fmt.Fprintln(p.out)
	for _, t := range tags {
		fmt.Fprintf(p.out, "- %s\n", t)
	}
	fmt.Fprintln(p.out)
}

// TagList prints the tags one per line with no decoration, for scripting.
func (p *Printer) TagList(tags []string) {
	for _, t := range tags {
		fmt.Fprintln(p.out, t)
	}
}

// Error prints err as a single "Error: ..." line framed by blank lines.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.out)
	p.err.Fprintf(p.out, "Error: %v", err)
	fmt.Fprint(p.out, "\n\n")
}

// Title prints s in bold on its own line.
func (p *Printer) Title(s string) {
	p.title.Fprint(p.out, s)
	fmt.Fprintln(p.out)
}

// Println writes plain text followed by a newline.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Print writes plain text with no trailing newline, for prompts.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.out, a...)
}
