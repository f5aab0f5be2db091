package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/kansou/internal/models"
	"github.com/hyperjump/kansou/internal/nlp"
)

func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.manager.Reviews(r.Context())
	if err != nil {
		s.logger.Error("list reviews failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondReviewList(w, reviews)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	s.logger.Debug("search request", zap.String("query", query))
	result, err := s.manager.Search(r.Context(), query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"reviews": result.Reviews,
		"total":   len(result.Reviews),
	}
	if result.Suggestion != "" {
		resp["suggestion"] = result.Suggestion
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMovieReviews(w http.ResponseWriter, r *http.Request) {
	movie := pathParam(r, "movie")
	reviews, err := s.manager.Movie(r.Context(), movie)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondReviewList(w, reviews)
}

func (s *Server) handleActorReviews(w http.ResponseWriter, r *http.Request) {
	actor := pathParam(r, "actor")
	reviews, err := s.manager.Actor(r.Context(), actor)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondReviewList(w, reviews)
}

func (s *Server) handleLanguageReviews(w http.ResponseWriter, r *http.Request) {
	lang := nlp.Language(pathParam(r, "lang"))
	reviews, err := s.manager.ByLanguage(r.Context(), lang)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondReviewList(w, reviews)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats, err := s.manager.Stats(r.Context())
	if err != nil {
		s.logger.Error("status failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathParam returns the URL-decoded chi path parameter (movie and actor names
// contain spaces).
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) respondReviewList(w http.ResponseWriter, reviews []*models.EnrichedReview) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
