package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"passrate/internal/config"
	"passrate/pkg/logger"
	"passrate/pkg/session"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const sessionHelp = `commands:
  trials <value>  set the number of trials
  rate <value>    set the success rate percentage
  calc            calculate with the current values
  show            print the current state
  quit            leave the session`

// render writes s in a line-oriented form.
func render(w io.Writer, s session.State) {
	p := "-"
	if s.Probability != nil {
		p = formatProbability(*s.Probability)
	}

	_, _ = fmt.Fprintf(w, "trials: %s\nrate: %s\nprobability: %s\n", s.TrialCount, s.SuccessRate, p)
	if s.Err != nil {
		_, _ = fmt.Fprintf(w, "error: %s\n", session.Message(s.Err))
	}
}

// parseCommand splits a line into its command word and the raw value after
// the first space. The value is not trimmed so validation sees it as typed.
func parseCommand(line string) (string, string) {
	name, value, _ := strings.Cut(line, " ")

	return name, value
}

// runSession reads commands from in until quit or EOF, feeding them to
// session.Reduce, and returns the final state.
func runSession(ctx context.Context, in io.Reader, out io.Writer, s session.State) (session.State, error) {
	render(out, s)

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		var event session.Event
		name, value := parseCommand(scanner.Text())
		switch name {
		case "trials":
			event = session.TrialCountChanged{Value: value}
		case "rate":
			event = session.SuccessRateChanged{Value: value}
		case "calc":
			event = session.CalculateRequested{}
		case "show":
			render(out, s)

			continue
		case "help":
			_, _ = fmt.Fprintln(out, sessionHelp)

			continue
		case "quit", "exit":
			return s, nil
		case "":
			continue
		default:
			_, _ = fmt.Fprintf(out, "unknown command %q, type help\n", name)

			continue
		}

		s = session.Reduce(s, event)
		logger.Debug(ctx, "session event",
			zap.String("event", fmt.Sprintf("%T", event)),
			zap.String("trial_count", s.TrialCount),
			zap.String("success_rate", s.SuccessRate),
			zap.Error(s.Err))

		if _, ok := event.(session.CalculateRequested); ok {
			render(out, s)
		}
	}

	if err := scanner.Err(); err != nil {
		return s, errors.Wrap(err, "read session input")
	}

	return s, nil
}

func sessionCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Starts an interactive calculator session on stdin",
		Long:  "Starts an interactive calculator session on stdin.\n\n" + sessionHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := session.New(cfg.Session.TrialCount, cfg.Session.SuccessRate)
			_, err := runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), s)

			return err
		},
	}

	return cmd
}
