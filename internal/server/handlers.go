package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nutmegai/nutmeg/internal/lexicon"
	"github.com/nutmegai/nutmeg/internal/models"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("chat request",
		zap.String("session_id", req.SessionID),
		zap.String("language", string(req.Language)))

	result := s.chat.Converse(r.Context(), req.Message, req.Language, req.SessionID)
	s.respondJSON(w, http.StatusOK, models.ChatResponse{
		Response:         result.Response,
		SessionID:        result.SessionID,
		Language:         result.Language,
		Confidence:       result.Confidence,
		SuggestedActions: result.SuggestedActions,
	})
}

func (s *Server) handleDocumentHelp(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "type")
	docType, ok := models.ParseDocumentType(raw)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "invalid document type")
		return
	}
	var req models.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("document help request",
		zap.String("type", string(docType)),
		zap.String("query", req.Query))

	record := s.knowledge.Respond(docType, req.Query)
	if s.history != nil {
		go func() {
			if err := s.history.RecordDocumentQuery(context.Background(), string(docType), req.Query, string(req.Language)); err != nil {
				s.logger.Warn("history: record document query", zap.Error(err))
			}
		}()
	}
	s.respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"document_types": s.knowledge.Types(),
		"descriptions":   s.knowledge.Descriptions(),
	})
}

func (s *Server) handleDocumentSearch(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "query cannot be empty")
		return
	}
	results := s.knowledge.Search(req.Query)
	if results == nil {
		results = []*models.SearchResult{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":   req.Query,
		"results": results,
	})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		s.respondError(w, http.StatusBadRequest, "message cannot be empty")
		return
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = models.LanguageEnglish
	}

	translated := lexicon.Translate(req.Message, req.TargetLanguage)
	if s.history != nil && translated != req.Message {
		english, creole := req.Message, translated
		if req.TargetLanguage == models.LanguageEnglish {
			english, creole = translated, req.Message
		}
		go func() {
			if err := s.history.BumpTranslationUsage(context.Background(), english, creole); err != nil {
				s.logger.Warn("history: bump translation usage", zap.Error(err))
			}
		}()
	}
	s.respondJSON(w, http.StatusOK, models.TranslateResponse{
		Original:       req.Message,
		Translated:     translated,
		TargetLanguage: req.TargetLanguage,
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"supported_languages": models.SupportedLanguages(),
		"primary_language":    models.LanguageCreole,
		"description":         "Grenadian Creole and English support",
	})
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.respondError(w, http.StatusNotImplemented, "history not enabled")
		return
	}
	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.history.SaveFeedback(r.Context(), req.SessionID, req.Rating, req.Feedback); err != nil {
		s.logger.Error("feedback save failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "NutmegAI Backend",
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"message":     "Welcome to NutmegAI - Grenadian Legal Assistant",
		"version":     "1.0.0",
		"description": "AI chatbot helping Grenadians with legal registry documents",
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
