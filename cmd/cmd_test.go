package main

import (
	"bytes"
	"context"
	"passrate/internal/config"
	"passrate/pkg/probability"
	"passrate/pkg/session"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, calculate(&out, &errOut, "5", "70.0"))
	require.Equal(t, "0.8369\n", out.String())
	require.Empty(t, errOut.String())

	out.Reset()
	err := calculate(&out, &errOut, "10", "50")
	require.ErrorIs(t, err, probability.ErrInvalidTrialCount)
	require.Empty(t, out.String())
	require.Equal(t, "Number of subjects must be a whole number from 2 to 9.\n", errOut.String())
}

func TestCalcCommand(t *testing.T) {
	var cfg config.Config
	cfg.Session.TrialCount = "2"
	cfg.Session.SuccessRate = "50"

	var out, errOut bytes.Buffer
	cmd := calcCommand(&cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "0.25\n", out.String())

	out.Reset()
	cmd.SetArgs([]string{"--trials", "5", "--rate", "100"})
	require.ErrorIs(t, cmd.Execute(), probability.ErrInvalidSuccessRate)
	require.Equal(t, "Pass rate must be a number greater than 0 and less than 100.\n", errOut.String())
}

func TestParseCommand(t *testing.T) {
	name, value := parseCommand("trials 7")
	require.Equal(t, "trials", name)
	require.Equal(t, "7", value)

	name, value = parseCommand("rate  55")
	require.Equal(t, "rate", name)
	require.Equal(t, " 55", value)

	name, value = parseCommand("calc")
	require.Equal(t, "calc", name)
	require.Empty(t, value)
}

func TestRunSession(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"trials 2",
		"rate 50",
		"calc",
		"trials 10",
		"calc",
		"bogus",
		"quit",
		"trials 3",
	}, "\n"))

	var out bytes.Buffer
	s, err := runSession(context.Background(), in, &out, session.Default())
	require.NoError(t, err)

	require.Equal(t, "10", s.TrialCount)
	require.Equal(t, "50", s.SuccessRate)
	require.NotNil(t, s.Probability)
	require.Equal(t, 0.25, *s.Probability)
	require.ErrorIs(t, s.Err, probability.ErrInvalidTrialCount)

	text := out.String()
	require.Contains(t, text, "probability: 0.8369\n")
	require.Contains(t, text, "probability: 0.25\n")
	require.Contains(t, text, "error: Number of subjects must be a whole number from 2 to 9.\n")
	require.Contains(t, text, `unknown command "bogus"`)
}

func TestRunSession_EOF(t *testing.T) {
	var out bytes.Buffer
	s, err := runSession(context.Background(), strings.NewReader("rate 0"), &out, session.Default())
	require.NoError(t, err)
	require.Equal(t, "0", s.SuccessRate)
	require.Nil(t, s.Err)
	require.Equal(t, 0.8369, *s.Probability)
}
