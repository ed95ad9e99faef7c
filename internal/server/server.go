// Package server exposes the chat pipeline over HTTP. Handlers hold a mutex
// so submissions run one at a time, the same serial pipeline the interactive
// session gives.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"finchat/internal/aggregate"
	"finchat/internal/chat"
	"finchat/internal/logging"
	"finchat/internal/trackererror"
	"finchat/internal/transfer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
)

// Server routes HTTP requests to a chat Responder.
type Server struct {
	responder *chat.Responder
	logger    logging.Logger
	mu        sync.Mutex
}

// New creates a Server around an existing responder.
func New(responder *chat.Responder, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{responder: responder, logger: logger}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/chat", s.handleChat)
	r.Get("/api/report", s.handleReport)
	r.Get("/api/goal", s.handleGoalShow)
	r.Post("/api/goal", s.handleGoalSet)
	r.Get("/api/state", s.handleExport)
	r.Post("/api/state", s.handleImport)
	r.Post("/api/clear", s.handleClear)
	return r
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Replies []string `json:"replies"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	s.mu.Lock()
	replies, err := s.responder.Handle(req.Message)
	s.mu.Unlock()
	if err != nil {
		s.logger.WithError(err).Error("Chat message failed")
		s.writeError(w, http.StatusInternalServerError, "falha ao processar a mensagem")
		return
	}
	s.writeJSON(w, http.StatusOK, chatResponse{Replies: replies})
}

type reportResponse struct {
	Summary    aggregate.Summary       `json:"summary"`
	Categories []aggregate.SeriesPoint `json:"categories"`
	Weeks      []aggregate.SeriesPoint `json:"weeks"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.responder.State()
	resp := reportResponse{
		Summary:    aggregate.Summarize(state),
		Categories: aggregate.CategoryTotals(state),
		Weeks:      aggregate.WeeklyTotals(state),
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGoalShow(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	progress, ok := s.responder.Progress()
	s.mu.Unlock()
	if !ok {
		s.writeError(w, http.StatusNotFound, "Nenhuma meta definida.")
		return
	}
	s.writeJSON(w, http.StatusOK, progress)
}

type goalRequest struct {
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

func (s *Server) handleGoalSet(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Informe um valor de meta válido.")
		return
	}

	s.mu.Lock()
	msg, err := s.responder.SetGoal(amount, req.Category)
	s.mu.Unlock()
	if err != nil {
		var goalErr *trackererror.InvalidGoalError
		if errors.As(err, &goalErr) {
			s.writeError(w, http.StatusBadRequest, "Informe um valor de meta válido.")
			return
		}
		s.logger.WithError(err).Error("Goal submission failed")
		s.writeError(w, http.StatusInternalServerError, "falha ao salvar a meta")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc, err := transfer.Export(s.responder.State())
	s.mu.Unlock()
	if err != nil {
		s.logger.WithError(err).Error("Export failed")
		s.writeError(w, http.StatusInternalServerError, "falha ao exportar os dados")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	s.mu.Lock()
	msg, err := s.responder.Import(doc)
	s.mu.Unlock()
	if err != nil {
		var importErr *trackererror.InvalidImportError
		if errors.As(err, &importErr) {
			s.writeError(w, http.StatusBadRequest, "Falha ao importar. Verifique o arquivo JSON.")
			return
		}
		s.logger.WithError(err).Error("Import failed")
		s.writeError(w, http.StatusInternalServerError, "falha ao importar os dados")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	msg, err := s.responder.Clear()
	s.mu.Unlock()
	if err != nil {
		s.logger.WithError(err).Error("Clear failed")
		s.writeError(w, http.StatusInternalServerError, "falha ao limpar os dados")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
