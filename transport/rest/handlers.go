package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

const (
	maxBodySize   = 1 << 20
	defaultFileID = "upload"
)

type solver interface {
	SolveFile(ctx context.Context, fileID string) (*entity.Outcome, error)
	SolveText(ctx context.Context, fileID, text string) (*entity.Outcome, error)
	History(ctx context.Context, fileID string, limit int) ([]entity.SolveRecord, error)
}

type Handlers struct {
	logger *slog.Logger
	solver solver
}

func NewHandlers(logger *slog.Logger, solver solver) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest"),
		solver: solver,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// SolveText - solves the bingo file sent as the request body.
func (that *Handlers) SolveText(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		that.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
		return
	}

	fileID := r.URL.Query().Get("id")
	if fileID == "" {
		fileID = defaultFileID
	}

	outcome, err := that.solver.SolveText(r.Context(), fileID, string(body))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, outcome)
}

// SolveFile - solves a bingo file stored on the server.
func (that *Handlers) SolveFile(w http.ResponseWriter, r *http.Request) {
	outcome, err := that.solver.SolveFile(r.Context(), chi.URLParam(r, "fileID"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, outcome)
}

func (that *Handlers) History(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := that.solver.History(r.Context(), chi.URLParam(r, "fileID"), limit)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, records)
}

func (that *Handlers) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidFileID):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrHistoryDisabled):
		return http.StatusNotImplemented
	case errors.Is(err, apperror.ErrMalformedCalls),
		errors.Is(err, apperror.ErrMalformedRow),
		errors.Is(err, apperror.ErrInconsistentSize),
		errors.Is(err, apperror.ErrStructuralParse):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
