// Package console renders confirmation prompts on a terminal and feeds the
// typed answers back through the relay.
package console

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/carelane/medreview/service/confirm"
	"github.com/carelane/medreview/service/relay"
)

// Adapter consumes prompt events and collects answers from an input stream.
type Adapter struct {
	relay *relay.Service
	in    *bufio.Reader
	out   io.Writer
}

// Option customises the adapter.
type Option func(*Adapter)

// WithInput overrides the answer stream (defaults to os.Stdin).
func WithInput(in io.Reader) Option {
	return func(a *Adapter) { a.in = bufio.NewReader(in) }
}

// WithOutput overrides where prompts are rendered (defaults to os.Stdout).
func WithOutput(out io.Writer) Option {
	return func(a *Adapter) { a.out = out }
}

// New creates a console adapter bound to the relay.
func New(svc *relay.Service, options ...Option) *Adapter {
	ret := &Adapter{relay: svc}
	for _, option := range options {
		option(ret)
	}
	if ret.in == nil {
		ret.in = bufio.NewReader(os.Stdin)
	}
	if ret.out == nil {
		ret.out = os.Stdout
	}
	return ret
}

var promptColor = color.New(color.FgHiYellow)

// Run consumes prompt events until ctx is cancelled or input is exhausted.
// The raw typed answer is submitted untouched; the decision engine owns
// normalization.
func (a *Adapter) Run(ctx context.Context) error {
	for {
		msg, err := a.relay.Queue().Consume(ctx)
		if err != nil {
			return err
		}
		event := msg.T()
		_ = msg.Ack()
		if event.Topic != confirm.TopicRequestCreated {
			continue
		}
		request, ok := event.Data.(*confirm.Request)
		if !ok {
			continue
		}

		_, _ = promptColor.Fprintln(a.out)
		_, _ = promptColor.Fprintln(a.out, request.Prompt)

		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return err
		}
		_ = a.relay.Submit(ctx, request.Responder, strings.TrimRight(line, "\r\n"))
	}
}
