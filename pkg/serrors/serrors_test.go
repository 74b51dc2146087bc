package serrors_test

import (
	"errors"
	"fmt"
	"passrate/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

var errOutOfRange = serrors.NewKind("OUT_OF_RANGE")

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrMethodNotAllowed,
		serrors.ErrInternal,
		errOutOfRange,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("parse failure")

	e1 := serrors.With(errOutOfRange, "trial count %d out of range", 12)
	require.Equal(t, "trial count 12 out of range", e1.Error())

	e2 := serrors.Wrap(serrors.ErrBadRequest, base, "reading input")
	require.Equal(t, "reading input: parse failure", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrInternal)
	require.Equal(t, "INTERNAL", e3.Error())

	e4 := serrors.Wrap(serrors.ErrBadRequest, base, "")
	require.Equal(t, "parse failure", e4.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "reading")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInternal)
}

func TestIsMatchesNestedKinds(t *testing.T) {
	inner := serrors.With(errOutOfRange, "too many trials")
	outer := serrors.Wrap(serrors.ErrBadRequest, inner, "")

	require.ErrorIs(t, outer, serrors.ErrBadRequest)
	require.ErrorIs(t, outer, errOutOfRange)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrBadRequest, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "bad rate")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "bad rate", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{
			name: "plain error has no kind",
			err:  errors.New("boom"),
			want: nil,
		},
		{
			name: "bare sentinel",
			err:  serrors.ErrNotFound,
			want: serrors.ErrNotFound,
		},
		{
			name: "single semantic error",
			err:  serrors.With(errOutOfRange, "x"),
			want: errOutOfRange,
		},
		{
			name: "innermost kind wins",
			err:  serrors.Wrap(serrors.ErrBadRequest, serrors.With(errOutOfRange, "x"), ""),
			want: errOutOfRange,
		},
		{
			name: "through fmt wrapping",
			err:  fmt.Errorf("handling: %w", serrors.Wrap(serrors.ErrBadRequest, errors.New("x"), "y")),
			want: serrors.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	inner := serrors.With(errOutOfRange, "trial count out of range")

	require.Equal(t, "trial count out of range", serrors.MessageOf(serrors.Wrap(serrors.ErrBadRequest, inner, "")))
	require.Equal(t, "outer", serrors.MessageOf(serrors.Wrap(serrors.ErrBadRequest, inner, "outer")))
	require.Equal(t, "boom", serrors.MessageOf(errors.New("boom")))
}
