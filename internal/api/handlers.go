package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boynton/mathbraille"
)

type translateRequest struct {
	Braille string `json:"braille"`
}

type translateResponse struct {
	MathML   string                `json:"mathml"`
	Success  bool                  `json:"success"`
	Partial  bool                  `json:"partial"`
	Errors   []*mathbraille.Error  `json:"errors"`
	Warnings []mathbraille.Warning `json:"warnings"`
}

func newTranslateResponse(res *mathbraille.Result) translateResponse {
	resp := translateResponse{
		MathML:   res.MathML,
		Success:  res.IsSuccess(),
		Partial:  res.IsPartial(),
		Errors:   res.Errors,
		Warnings: res.Warnings,
	}
	if resp.Errors == nil {
		resp.Errors = []*mathbraille.Error{}
	}
	if resp.Warnings == nil {
		resp.Warnings = []mathbraille.Warning{}
	}
	return resp
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !s.decode(w, r, &req) {
		return
	}

	res := s.translator.Translate(req.Braille)
	status := http.StatusOK
	if res.Failed() {
		status = http.StatusUnprocessableEntity
		s.log.Debug("translation failed", "error", res.Err())
	}
	writeJSON(w, status, newTranslateResponse(res))
}

// decode reads a size-limited JSON body into v, writing the error response
// itself when that fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
