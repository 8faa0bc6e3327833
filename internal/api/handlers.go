package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fundlens/readiness-cli/internal/assess"
	"github.com/fundlens/readiness-cli/internal/model"
	"github.com/fundlens/readiness-cli/internal/store"
)

type Handler struct {
	svc *assess.Service
}

func NewHandler(svc *assess.Service) *Handler {
	return &Handler{svc: svc}
}

type createAssessmentRequest struct {
	OwnerID string         `json:"owner_id,omitempty"`
	Answers map[string]any `json:"answers"`
}

type catalogResponse struct {
	Version   string           `json:"version"`
	Questions []model.Question `json:"questions"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Answers == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "answers required"})
		return
	}

	a := h.svc.Run(r.Context(), model.AnswerBatch{
		OwnerID: req.OwnerID,
		Answers: req.Answers,
	})
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "assessment not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{
		OwnerID:   r.URL.Query().Get("owner_id"),
		RiskLevel: model.RiskLevel(r.URL.Query().Get("risk_level")),
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid min_score"})
			return
		}
		filter.MinScore = f
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
			return
		}
		filter.Offset = n
	}

	as, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if as == nil {
		as = []model.Assessment{}
	}
	writeJSON(w, http.StatusOK, as)
}

func (h *Handler) GetCatalog(w http.ResponseWriter, _ *http.Request) {
	cat := h.svc.Catalog()
	writeJSON(w, http.StatusOK, catalogResponse{
		Version:   cat.Version(),
		Questions: cat.Questions(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}
