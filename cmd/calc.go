package main

import (
	"fmt"
	"io"
	"passrate/internal/config"
	"passrate/pkg/probability"
	"passrate/pkg/session"
	"strconv"

	"github.com/spf13/cobra"
)

// formatProbability renders p without trailing zeros.
func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// calculate evaluates the raw inputs and writes the probability to out, or
// the user-facing validation message to errOut.
func calculate(out, errOut io.Writer, trials, rate string) error {
	p, err := probability.Evaluate(trials, rate)
	if err != nil {
		_, _ = fmt.Fprintln(errOut, session.Message(err))

		return err //nolint: wrapcheck
	}

	_, err = fmt.Fprintln(out, formatProbability(p))

	return err //nolint: wrapcheck
}

func calcCommand(cfg *config.Config) *cobra.Command {
	var trials, rate string

	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Prints the probability that more than half of the trials succeed",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return calculate(cmd.OutOrStdout(), cmd.ErrOrStderr(), trials, rate)
		},
	}

	cmd.Flags().StringVarP(&trials, "trials", "n", cfg.Session.TrialCount, "Number of trials (2-9)")
	cmd.Flags().StringVarP(&rate, "rate", "p", cfg.Session.SuccessRate, "Success rate percentage, exclusive (0-100)")

	return cmd
}
