// Package shell implements the interactive quote menu: a blocking,
// line-oriented loop over standard input.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Snider/quotes/pkg/quotes"
	"github.com/Snider/quotes/pkg/ui"
)

const (
	bannerTitle = "=== Random Quote Generator ==="
	bannerText  = "A tiny CLI app that prints a random quote."
	inputMarker = "> "
	tagPrompt   = "Enter tag (e.g., programming, growth): "
)

var menu = []string{
	"Choose an option:",
	"1) Random quote",
	"2) Random quote by tag",
	"3) List available tags",
	"4) Exit",
}

// Shell drives the menu loop against a quote store.
type Shell struct {
	store   *quotes.Store
	in      *bufio.Reader
	printer *ui.Printer
	log     *slog.Logger
}

// New returns a Shell reading lines from in and writing through p.
func New(store *quotes.Store, in io.Reader, p *ui.Printer, log *slog.Logger) *Shell {
	return &Shell{
		store:   store,
		in:      bufio.NewReader(in),
		printer: p,
		log:     log,
	}
}

// Run prints the banner and serves the menu until the user exits, input
// ends, or ctx is cancelled. Reaching the end of input is a normal exit.
func (s *Shell) Run(ctx context.Context) error {
	s.printer.Title(bannerTitle)
	s.printer.Println(bannerText)
	s.printer.Println()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, ok, err := s.prompt(strings.Join(menu, "\n") + "\n" + inputMarker)
		if err != nil || !ok {
			return err
		}

		done, err := s.dispatch(choice)
		if err != nil || done {
			return err
		}
	}
}

// dispatch handles one menu choice. It reports whether the loop should stop.
func (s *Shell) dispatch(choice string) (bool, error) {
	s.log.Debug("menu choice", "choice", choice)

	switch choice {
	case "1":
		s.show("")
	case "2":
		tag, ok, err := s.prompt(tagPrompt)
		if err != nil || !ok {
			return true, err
		}
		s.show(tag)
	case "3":
		s.printer.Tags(s.store.Tags())
	case "4":
		s.printer.Println("\nGoodbye!")
		s.printer.Println()
		return true, nil
	default:
		s.printer.Println("\nInvalid choice. Please select 1–4.")
		s.printer.Println()
	}
	return false, nil
}

// show picks a quote for tag and renders it, or renders the not-found error.
func (s *Shell) show(tag string) {
	q, err := s.store.Pick(tag)
	var nf *quotes.NotFoundError
	switch {
	case errors.As(err, &nf):
		s.log.Debug("no quotes for tag", "tag", nf.Tag)
		s.printer.Error(nf)
	case err != nil:
		s.printer.Error(err)
	default:
		s.printer.Quote(q)
	}
}

// prompt writes text and reads one trimmed line. ok is false at end of input.
func (s *Shell) prompt(text string) (line string, ok bool, err error) {
	s.printer.Print(text)
	line, err = s.in.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			s.log.Debug("end of input")
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), true, nil
}
