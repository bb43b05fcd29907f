// Package httpapi exposes the scoring pipelines over HTTP.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	m "github.com/go-chi/chi/v5/middleware"

	"github.com/quartzsec/rubric/core"
	"github.com/quartzsec/rubric/schema"
)

// Server holds the scoring configuration shared by all handlers.
type Server struct {
	Rubric *schema.Rubric
}

// NewServer builds the router and returns a ready-to-run HTTP server.
func NewServer(addr string, rubric *schema.Rubric) *http.Server {
	if rubric == nil {
		rubric = schema.DefaultRubric()
	}
	s := &Server{Rubric: rubric}

	r := chi.NewRouter()
	r.Use(m.RequestID, m.RealIP, m.Logger, m.Recoverer)

	r.Post("/score/control", s.scoreControls)
	r.Post("/score/et", s.scoreEvidenceTasks)
	r.Post("/score/batch", s.scoreBatch)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return &http.Server{Addr: addr, Handler: r}
}

type scoreResp struct {
	StandardVersion string                 `json:"standard_version"`
	Results         []schema.ScoreResponse `json:"results"`
}

type batchReq struct {
	Kind  string              `json:"type"`
	Items []map[string]string `json:"items"`
}

type errResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeItems accepts either a bare record or an {items: [...]} envelope and
// returns the records as raw JSON, one per item.
func decodeItems(r *http.Request) ([]json.RawMessage, error) {
	var envelope struct {
		Items []json.RawMessage `json:"items"`
	}
	body := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := body.Decode(&raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Items != nil {
		return envelope.Items, nil
	}
	return []json.RawMessage{raw}, nil
}

func (s *Server) scoreControls(w http.ResponseWriter, r *http.Request) {
	items, err := decodeItems(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{err.Error()})
		return
	}

	results := make([]schema.ScoreResponse, 0, len(items))
	for _, raw := range items {
		var in schema.ControlInput
		if err := json.Unmarshal(raw, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, errResp{err.Error()})
			return
		}
		results = append(results, core.ScoreControl(in, s.Rubric))
	}
	writeJSON(w, http.StatusOK, scoreResp{
		StandardVersion: s.Rubric.Control.Version,
		Results:         results,
	})
}

func (s *Server) scoreEvidenceTasks(w http.ResponseWriter, r *http.Request) {
	items, err := decodeItems(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{err.Error()})
		return
	}

	results := make([]schema.ScoreResponse, 0, len(items))
	for _, raw := range items {
		var in schema.EvidenceTaskInput
		if err := json.Unmarshal(raw, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, errResp{err.Error()})
			return
		}
		results = append(results, core.ScoreEvidenceTask(in, s.Rubric))
	}
	writeJSON(w, http.StatusOK, scoreResp{
		StandardVersion: s.Rubric.EvidenceTask.Version,
		Results:         results,
	})
}

// scoreBatch runs the row-oriented batch driver over raw string rows, with
// per-row error isolation and a summary.
func (s *Server) scoreBatch(w http.ResponseWriter, r *http.Request) {
	var req batchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{err.Error()})
		return
	}

	kind := schema.EvidenceTaskKind
	if req.Kind != "" {
		parsed, ok := schema.ParseRecordKind(req.Kind)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errResp{"invalid type: must be control or et"})
			return
		}
		kind = parsed
	} else if len(req.Items) > 0 {
		headers := make([]string, 0, len(req.Items[0]))
		for k := range req.Items[0] {
			headers = append(headers, k)
		}
		kind = core.DetectRecordKind(headers)
	}

	result := core.ScoreBatch(req.Items, kind, s.Rubric, nil)
	writeJSON(w, http.StatusOK, result)
}
