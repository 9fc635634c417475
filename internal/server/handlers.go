package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/polyroots/polyroots/pkg/buildinfo"
	"github.com/polyroots/polyroots/pkg/errors"
	"github.com/polyroots/polyroots/pkg/poly"
)

type rootsRequest struct {
	Coefficients []int64 `json:"coefficients"`
}

type rootsResponse struct {
	Polynomial string  `json:"polynomial"`
	Degree     int     `json:"degree"`
	Roots      []int64 `json:"roots"`
	Cached     bool    `json:"cached"`
}

type evaluateRequest struct {
	Coefficients []int64 `json:"coefficients"`
	X            *int64  `json:"x"`
}

// evaluateResponse carries the value as a decimal string since it may exceed
// the range of a JSON number.
type evaluateResponse struct {
	Value string `json:"value"`
	Root  bool   `json:"root"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleRoots(w http.ResponseWriter, r *http.Request) {
	var req rootsRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := s.newPolynomial(req.Coefficients)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondRoots(w, r, p)
}

func (s *Server) handleRootsQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("c") {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing query parameter c"))
		return
	}
	p, err := poly.ParseString(q.Get("c"))
	if err == nil {
		err = s.checkDegree(p)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondRoots(w, r, p)
}

func (s *Server) respondRoots(w http.ResponseWriter, r *http.Request, p poly.Polynomial) {
	res, cached, err := s.runner.Roots(r.Context(), p, s.opts.Solve)
	switch {
	case err == context.DeadlineExceeded:
		s.writeError(w, r, errors.Wrap(errors.ErrCodeTimeout, err, "root search of %s did not finish in time", p))
		return
	case err == context.Canceled:
		// The client went away; nobody is left to read a response.
		s.logger.Debug("request canceled", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
		return
	case err != nil:
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rootsResponse{
		Polynomial: res.Polynomial,
		Degree:     res.Degree,
		Roots:      res.Roots,
		Cached:     cached,
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.X == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "missing field x"))
		return
	}
	p, err := s.newPolynomial(req.Coefficients)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	v := p.Value(*req.X)
	writeJSON(w, http.StatusOK, evaluateResponse{Value: v.String(), Root: v.Sign() == 0})
}

// newPolynomial validates coeffs and applies the configured degree limit.
func (s *Server) newPolynomial(coeffs []int64) (poly.Polynomial, error) {
	p, err := poly.New(coeffs...)
	if err != nil {
		return p, err
	}
	return p, s.checkDegree(p)
}

func (s *Server) checkDegree(p poly.Polynomial) error {
	if s.opts.MaxDegree > 0 && p.Degree() > s.opts.MaxDegree {
		return errors.New(errors.ErrCodeInvalidInput,
			"degree %d exceeds the limit of %d", p.Degree(), s.opts.MaxDegree)
	}
	return nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New(errors.ErrCodeInvalidInput, "request body must hold a single JSON object")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsClientError(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeTimeout):
		status = http.StatusGatewayTimeout
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= 500 {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err)
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
