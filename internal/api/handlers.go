package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sketchwire/sketchwire/pkg/errors"
	"github.com/sketchwire/sketchwire/pkg/sketch"
)

// writeJSON serializes v with a JSON content type. Encoding failures are
// logged rather than surfaced; by that point the status line is already sent.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from sketchwire!",
	})
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the sketchwire API",
	})
}

// handleSketch renders a sketch from a JSON body and returns the document as
// a JSON string field. Frontends that inline the markup use this route.
func (s *Server) handleSketch(w http.ResponseWriter, r *http.Request) {
	var opts sketch.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	res, err := s.runner.Render(r.Context(), opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInvalidPrompt) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.logger.Error("render failed", "err", err, "request_id", requestIDFrom(r))
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"svg": string(res.SVG),
	})
}

// handleSketchImage renders a sketch from query parameters and returns the
// raw document, suitable for a plain <img> tag.
func (s *Server) handleSketchImage(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.runner.Render(r.Context(), opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInvalidPrompt) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.logger.Error("render failed", "err", err, "request_id", requestIDFrom(r))
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.SVG); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func optionsFromQuery(r *http.Request) (sketch.Options, error) {
	q := r.URL.Query()
	opts := sketch.Options{
		Prompt: q.Get("prompt"),
		Theme:  q.Get("theme"),
	}

	var err error
	if opts.Width, err = intParam(q.Get("width")); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidSize, err, "invalid width")
	}
	if opts.Height, err = intParam(q.Get("height")); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidSize, err, "invalid height")
	}
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidSeed, err, "invalid seed")
		}
		opts.Seed = &seed
	}
	return opts, nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
