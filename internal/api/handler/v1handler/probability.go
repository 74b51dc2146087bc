package v1handler

import (
	"io"
	"net/http"
	"passrate/pkg/domain"
	"passrate/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ProbabilityRequest carries both inputs as raw text, exactly as the user
// entered them.
type ProbabilityRequest struct {
	Trials      string
	SuccessRate string
}

// DecodeProbabilityRequest reads a JSON object with "trials" and
// "successRate" fields. Each may be a string or a JSON number; numbers keep
// their literal text so validation sees what the client sent. Unknown fields
// are ignored.
func DecodeProbabilityRequest(d *jx.Decoder) (ProbabilityRequest, error) {
	var req ProbabilityRequest
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "trials":
			v, err := rawText(d)
			if err != nil {
				return errors.Wrap(err, "trials")
			}
			req.Trials = v
		case "successRate":
			v, err := rawText(d)
			if err != nil {
				return errors.Wrap(err, "successRate")
			}
			req.SuccessRate = v
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	})
	if err != nil {
		return ProbabilityRequest{}, errors.Wrap(err, "decode probability request")
	}

	return req, nil
}

func rawText(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		return d.Str() //nolint: wrapcheck
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err //nolint: wrapcheck
		}

		return n.String(), nil
	default:
		return "", errors.New("must be a string or a number")
	}
}

// EncodeCalculation writes c as a JSON object.
func EncodeCalculation(e *jx.Encoder, c *domain.Calculation) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("trials", func(e *jx.Encoder) { e.Int(c.Trials) })
		e.Field("successRate", func(e *jx.Encoder) { e.Float64(c.SuccessRate) })
		e.Field("threshold", func(e *jx.Encoder) { e.Int(c.Threshold) })
		e.Field("probability", func(e *jx.Encoder) { e.Float64(c.Probability) })
	})
}

// GetProbability handles GET /v1/probability?trials=&successRate=.
func (h Handler) GetProbability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.calculate(w, r, ProbabilityRequest{
		Trials:      q.Get("trials"),
		SuccessRate: q.Get("successRate"),
	})
}

// PostProbability handles POST /v1/probability with a JSON body.
func (h Handler) PostProbability(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
	if err != nil {
		h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body"))

		return
	}

	req, err := DecodeProbabilityRequest(jx.DecodeBytes(body))
	if err != nil {
		h.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	h.calculate(w, r, req)
}

func (h Handler) calculate(w http.ResponseWriter, r *http.Request, req ProbabilityRequest) {
	res, err := h.deps.Calculator.Calculate(r.Context(), req.Trials, req.SuccessRate)
	if err != nil {
		h.WriteError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeCalculation(&e, res)
	writeJSON(r.Context(), w, http.StatusOK, e.Bytes())
}
