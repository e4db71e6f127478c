package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/search"
)

type recommendRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type recommendationPayload struct {
	AssessmentID   string  `json:"assessment_id"`
	AssessmentName string  `json:"assessment_name"`
	CanonicalURL   string  `json:"canonical_url"`
	TestType       string  `json:"test_type"`
	SkillsTags     string  `json:"skills_tags"`
	Score          float64 `json:"score"`
}

type recommendResponse struct {
	Query           string                  `json:"query"`
	Recommendations []recommendationPayload `json:"recommendations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// An empty query is legal: it ranks by pure similarity with no boost.
	results, err := s.recommender.Recommend(r.Context(), req.Query, req.TopK)
	if err != nil {
		if errors.Is(err, search.ErrRetrievalUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "retrieval unavailable"})
			return
		}
		s.logger.Error("recommendation failed", "query", req.Query, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	payloads := make([]recommendationPayload, 0, len(results))
	for _, rec := range results {
		payloads = append(payloads, toPayload(rec))
	}
	writeJSON(w, http.StatusOK, recommendResponse{Query: req.Query, Recommendations: payloads})
}

func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	if err := s.reindexer.Reindex(r.Context()); err != nil {
		s.logger.Error("reindex failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "reindex failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reindexed"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func toPayload(rec *core.Recommendation) recommendationPayload {
	return recommendationPayload{
		AssessmentID:   rec.Label,
		AssessmentName: rec.Name,
		CanonicalURL:   rec.URL,
		TestType:       string(rec.Category),
		SkillsTags:     rec.SkillsTag(),
		Score:          rec.Score,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
