// Copyright © 2018 One Concern

package datastore

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oneconcern/rit/pkg/errors"
	"go.uber.org/zap"
)

const (
	// Prompt displayed between pages
	Prompt = "Press Enter to continue or 'q' to quit: "

	// ClearScreen is the ANSI sequence clearing a terminal and moving the cursor home
	ClearScreen = "\x1b[2J\x1b[1;1H"

	invalidInputNotice = "Invalid input, quitting..."
	quitInput          = "q"
)

// ErrInvalidInput is reported when the operator answers the prompt with something unexpected.
// It ends pagination without failing the command.
var ErrInvalidInput = errors.New("invalid pagination input")

// State of a Pager
type State int

// Pager states
const (
	Fetching State = iota
	AwaitingInput
	Done
)

func (s State) String() string {
	switch s {
	case Fetching:
		return "Fetching"
	case AwaitingInput:
		return "AwaitingInput"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PageFunc fetches the page at cursor and renders it.
// An empty next cursor means there are no more pages.
type PageFunc func(ctx context.Context, cursor string) (rendered, next string, err error)

// Pager streams pages to Out, waiting for the operator between pages.
// Without operator input, only the first page is displayed.
//
// A Pager is not safe for concurrent use. Each Run starts from Fetching.
type Pager struct {
	In    io.Reader
	Out   io.Writer
	Clear func(io.Writer)

	logger *zap.Logger
	state  State
	input  *bufio.Reader
}

// NewPager builds a pager reading operator input from in and displaying pages to out
func NewPager(in io.Reader, out io.Writer, clear func(io.Writer), logger *zap.Logger) *Pager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pager{In: in, Out: out, Clear: clear, logger: logger}
}

// ClearTerminal writes the ANSI clear sequence
func ClearTerminal(w io.Writer) {
	_, _ = io.WriteString(w, ClearScreen)
}

// State of the pager
func (p *Pager) State() State {
	return p.state
}

// Run drives the pager from the cursor until the last page, or until the operator quits.
//
// Pages are written as they are fetched. A fetch error aborts immediately.
func (p *Pager) Run(ctx context.Context, cursor string, fetch PageFunc) error {
	if p.input == nil && p.In != nil {
		p.input = bufio.NewReader(p.In)
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}

	p.state = Fetching
	for {
		switch p.state {
		case Fetching:
			rendered, next, err := fetch(ctx, cursor)
			if err != nil {
				p.state = Done
				return err
			}
			if rendered != "" {
				if _, err := fmt.Fprintln(p.out(), rendered); err != nil {
					p.state = Done
					return err
				}
			}
			if next == "" || next == cursor {
				p.state = Done
				continue
			}
			cursor = next
			p.state = AwaitingInput

		case AwaitingInput:
			p.state = p.await()

		case Done:
			return nil
		}
	}
}

func (p *Pager) out() io.Writer {
	if p.Out == nil {
		return io.Discard
	}
	return p.Out
}

// await prompts the operator and returns the next state
func (p *Pager) await() State {
	if p.input == nil {
		return Done
	}
	_, _ = io.WriteString(p.out(), Prompt)

	line, err := p.input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err != io.EOF {
			p.logger.Warn("could not read operator input", zap.Error(err))
		}
		_, _ = fmt.Fprintln(p.out())
		return Done
	}

	switch answer := strings.TrimRight(line, "\r\n"); answer {
	case "":
		if p.Clear != nil {
			p.Clear(p.out())
		}
		return Fetching
	case quitInput:
		return Done
	default:
		_, _ = fmt.Fprintln(p.out(), invalidInputNotice)
		p.logger.Info("pagination stopped", zap.Error(ErrInvalidInput.Wrapf("unexpected answer %q", answer)))
		return Done
	}
}
