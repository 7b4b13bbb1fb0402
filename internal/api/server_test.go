package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/boynton/mathbraille"
	"github.com/boynton/mathbraille/internal/config"
)

const one = `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mn>1</mn></math>`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{Port: "8093", MaxBodyBytes: 1024}
	srv, err := NewServer(mathbraille.NewTranslator(), slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func post(srv *Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestTranslate(t *testing.T) {
	srv := newTestServer(t)
	rec := post(srv, "/api/translate", `{"braille":"⠼⠁"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp translateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Partial {
		t.Errorf("expected clean success: %+v", resp)
	}
	if resp.MathML != one {
		t.Errorf("mathml = %s", resp.MathML)
	}
	if len(resp.Errors) != 0 || len(resp.Warnings) != 0 {
		t.Errorf("expected no diagnostics: %+v", resp)
	}
}

func TestTranslatePartial(t *testing.T) {
	srv := newTestServer(t)
	rec := post(srv, "/api/translate", `{"braille":"⠼⠁⠔"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp translateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || !resp.Partial || len(resp.Warnings) != 1 {
		t.Errorf("expected partial success with one warning: %+v", resp)
	}
	if resp.MathML != one {
		t.Errorf("mathml = %s", resp.MathML)
	}
}

func TestTranslateFailure(t *testing.T) {
	srv := newTestServer(t)
	rec := post(srv, "/api/translate", `{"braille":"abc"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	errs, _ := body["errors"].([]any)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", body["errors"])
	}
	first := errs[0].(map[string]any)
	if first["kind"] != "UnrecognizedSymbol" || first["position"] != float64(0) || first["symbol"] != "a" {
		t.Errorf("unexpected first error: %v", first)
	}
	if body["mathml"] != "" {
		t.Errorf("failed translation should carry no markup: %v", body["mathml"])
	}
}

func TestTranslateDecodesAsResult(t *testing.T) {
	srv := newTestServer(t)
	rec := post(srv, "/api/translate", `{"braille":"⠼⠁x"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var res mathbraille.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Kind != mathbraille.UnrecognizedSymbol || e.Position != 2 || e.Symbol != 'x' {
		t.Errorf("unexpected error %+v", e)
	}
}

func TestTranslateBadRequests(t *testing.T) {
	srv := newTestServer(t)
	if rec := post(srv, "/api/translate", `{"braille":`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed JSON: status = %d", rec.Code)
	}
	big := `{"braille":"` + strings.Repeat("⠁", 1024) + `"}`
	if rec := post(srv, "/api/translate", big); rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversize body: status = %d", rec.Code)
	}
}

func TestGraphQL(t *testing.T) {
	srv := newTestServer(t)
	body := `{"query":"query T($b: String!) { translate(braille: $b) { mathml success partial errors { kind position } } }","variables":{"b":"⠼⠁"}}`
	rec := post(srv, "/graphql", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Data struct {
			Translate struct {
				MathML  string           `json:"mathml"`
				Success bool             `json:"success"`
				Partial bool             `json:"partial"`
				Errors  []map[string]any `json:"errors"`
			} `json:"translate"`
		} `json:"data"`
		Errors []any `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, rec.Body.String())
	}
	if len(resp.Errors) != 0 {
		t.Fatalf("graphql errors: %v", resp.Errors)
	}
	tr := resp.Data.Translate
	if tr.MathML != one || !tr.Success || tr.Partial || len(tr.Errors) != 0 {
		t.Errorf("unexpected translation: %+v", tr)
	}
}

func TestGraphQLFailure(t *testing.T) {
	srv := newTestServer(t)
	rec := post(srv, "/graphql", `{"query":"{ translate(braille: \"\") { mathml errors { kind } } }"}`)
	var resp struct {
		Data struct {
			Translate struct {
				MathML *string          `json:"mathml"`
				Errors []map[string]any `json:"errors"`
			} `json:"translate"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	tr := resp.Data.Translate
	if tr.MathML != nil {
		t.Errorf("expected null mathml, got %q", *tr.MathML)
	}
	if len(tr.Errors) != 1 || tr.Errors[0]["kind"] != "EmptyInput" {
		t.Errorf("expected a single EmptyInput error: %v", tr.Errors)
	}
}
