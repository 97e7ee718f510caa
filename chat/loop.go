// Package chat implements the interactive request/response loop against
// the Poe completion endpoint.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/edi-cli/edi/pkg/llm"
	"github.com/edi-cli/edi/pkg/poe"
	"github.com/edi-cli/edi/pkg/progress"
	"github.com/edi-cli/edi/pkg/session"
)

// Completer issues one chat completion request and returns the reply text.
type Completer interface {
	Send(ctx context.Context, apiKey, model string, transcript llm.Transcript) (string, error)
}

// Loop drives the conversation: read a turn, send the transcript, render
// the reply, persist, repeat. The loop owns the transcript for the whole
// run; the session store only ever sees complete snapshots of it.
type Loop struct {
	config Config
	client Completer
	store  session.Store
	logger *zap.Logger

	in  *bufio.Reader
	out io.Writer

	render func(string) string
}

// New creates a Loop reading user turns from in and writing conversation
// output to out. In interactive mode replies are rendered as terminal
// markdown; piped output stays plain.
func New(config Config, client Completer, store session.Store, logger *zap.Logger, in io.Reader, out io.Writer) *Loop {
	l := &Loop{
		config: config,
		client: client,
		store:  store,
		logger: logger,
		in:     bufio.NewReader(in),
		out:    out,
		render: func(s string) string { return s },
	}

	if config.Interactive {
		if renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		); err == nil {
			l.render = func(s string) string {
				rendered, err := renderer.Render(s)
				if err != nil {
					return s
				}
				return strings.TrimRight(rendered, "\n")
			}
		}
	}

	return l
}

// Run executes the interaction loop until the user ends it (blank first
// line or end of input) or, in piped mode, after a single exchange.
// Exchange failures are reported and never end an interactive run.
func (l *Loop) Run(ctx context.Context) error {
	transcript, err := l.seed(ctx)
	if err != nil {
		return err
	}

	for {
		if l.config.Interactive {
			input, ok := l.readTurn()
			if !ok {
				return nil
			}
			transcript = transcript.WithUser(input)
		}

		reply, err := l.exchange(ctx, transcript)
		switch {
		case err == nil:
			fmt.Fprintln(l.out, "\n"+l.styled(outputStyle, outputMarker))
			fmt.Fprintln(l.out, l.render(reply))
			transcript = transcript.WithAssistant(reply)
			if err := l.store.Save(ctx, transcript); err != nil {
				l.logger.Warn("could not save session", zap.Error(err))
			}
		case errors.Is(err, poe.ErrNoContent):
			fmt.Fprintln(l.out, "\n"+l.styled(noticeStyle, outputMarker+"No response received."))
		default:
			// The failed user turn stays in the transcript but is not
			// persisted; the next exchange naturally resends it.
			l.logger.Debug("exchange failed", zap.Error(err))
			fmt.Fprintln(l.out, "\n"+l.styled(errorStyle, outputMarker+"Error: "+err.Error()))
		}

		if !l.config.Interactive {
			return nil
		}
	}
}

// seed builds the initial transcript: the previous session if resuming,
// plus, in piped mode, the whole of stdin as the single user turn.
func (l *Loop) seed(ctx context.Context) (llm.Transcript, error) {
	transcript := llm.Transcript{}

	if l.config.Resume {
		transcript = l.loadPrevious(ctx)
	}

	if !l.config.Interactive {
		data, err := io.ReadAll(l.in)
		if err != nil {
			return nil, fmt.Errorf("read piped input: %w", err)
		}
		message := strings.TrimSpace(string(data))
		transcript = transcript.WithUser(message)

		// Echo the piped exchange so the output reads like a session.
		fmt.Fprintln(l.out, inputMarker)
		fmt.Fprint(l.out, message)
		return transcript, nil
	}

	if !l.config.Resume {
		fmt.Fprint(l.out, "Continue last session? (y/n): ")
		answer, _ := l.in.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			transcript = l.loadPrevious(ctx)
		}
	}

	return transcript, nil
}

func (l *Loop) loadPrevious(ctx context.Context) llm.Transcript {
	transcript, err := l.store.Load(ctx)
	if err != nil {
		l.logger.Warn("could not load previous session", zap.Error(err))
		return llm.Transcript{}
	}

	return transcript
}

// readTurn collects one multi-line user turn. Collection ends at the
// first blank line or end of input; an empty turn is the signal to end
// the whole loop.
func (l *Loop) readTurn() (string, bool) {
	fmt.Fprintln(l.out, "\n"+l.styled(inputStyle, inputMarker))

	var lines []string
	for {
		line, err := l.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == "" {
			break
		}
		lines = append(lines, trimmed)
		if err != nil {
			break
		}
	}

	input := strings.Join(lines, "\n")
	return input, strings.TrimSpace(input) != ""
}

// exchange runs one Sending phase: indicator up, exactly one request,
// indicator joined again before anything is rendered or persisted.
func (l *Loop) exchange(ctx context.Context, transcript llm.Transcript) (string, error) {
	indicator := progress.New(l.out, l.config.Interactive)
	indicator.Start(ctx)
	reply, err := l.client.Send(ctx, l.config.APIKey, l.config.Model, transcript)
	indicator.Stop()

	return reply, err
}

func (l *Loop) styled(style lipgloss.Style, s string) string {
	if !l.config.Interactive {
		return s
	}

	return style.Render(s)
}
