package server

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/mhpenta/sdprompt"
	"github.com/mhpenta/sdprompt/internal/ui"
)

type generateRequest struct {
	Keyword   string `json:"keyword" validate:"required"`
	ModelType string `json:"modelType" validate:"omitempty,oneof=sd15 illustrious"`
}

type generateResponse struct {
	Prompts  []string `json:"prompts"`
	Provider string   `json:"provider"`
}

type translateRequest struct {
	Text string `json:"text" validate:"required"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		body := validationError(err)
		body.TraceID = TraceID(r.Context())
		respondJSON(w, http.StatusBadRequest, body)
		return
	}

	res, err := s.svc.Generate(r.Context(), req.Keyword, sdprompt.StyleVariant(req.ModelType))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, generateResponse{Prompts: res.Prompts, Provider: res.Provider})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		body := validationError(err)
		body.TraceID = TraceID(r.Context())
		respondJSON(w, http.StatusBadRequest, body)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.respondError(w, r, sdprompt.ErrEmptyText)
		return
	}

	instruction, err := sdprompt.BuildTranslationInstruction(req.Text)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	translation, err := s.svc.Translate(r.Context(), instruction)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, translateResponse{Translation: translation})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.svc.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handlePage renders the form, and the result cards when ?keyword= is set.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := ui.Page{
		Keyword: strings.TrimSpace(q.Get("keyword")),
		Style:   sdprompt.StyleVariant(q.Get("style")),
	}

	if page.Keyword != "" {
		res, err := s.page.Run(r.Context(), page.Keyword, page.Style)
		if err != nil {
			s.logger.Warn("page generation failed",
				"trace_id", TraceID(r.Context()),
				"error", err.Error(),
			)
			page.Error = ui.Message(err)
		} else {
			page.Result = res
		}
	}

	var buf bytes.Buffer
	if err := ui.RenderPage(&buf, page); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
