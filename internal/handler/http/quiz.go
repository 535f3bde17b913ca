package http

import (
	"encoding/json"
	"net/http"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/utils"
	"github.com/asemenov/learnhub/models"
)

func (h *Handler) quizList(w http.ResponseWriter, r *http.Request) {
	h.writeModuleQuestions(w, r)
}

func (h *Handler) quizTake(w http.ResponseWriter, r *http.Request) {
	h.writeModuleQuestions(w, r)
}

// writeModuleQuestions serves both the quiz listing and quiz taking routes:
// the module together with its questions, canonical answers excluded.
func (h *Handler) writeModuleQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	moduleID, err := moduleIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid module id")
		writeError(w, "invalid module id", http.StatusBadRequest)
		return
	}

	module, questions, err := h.services.QuizService.QuestionsByModule(ctx, moduleID)
	if err != nil {
		log.Err(err).Int64("module_id", moduleID).Msg("fetching quiz questions failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ModuleQuizzesResponse{
		Module:    module,
		Questions: questions,
	}, http.StatusOK)
}

func (h *Handler) quizSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	moduleID, err := moduleIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid module id")
		writeError(w, "invalid module id", http.StatusBadRequest)
		return
	}

	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, questions, err := h.services.QuizService.QuestionsByModule(ctx, moduleID)
	if err != nil {
		log.Err(err).Int64("module_id", moduleID).Msg("fetching quiz questions failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	score, total := h.services.QuizService.Grade(questions, req.Answers)

	log.Debug().
		Int64("module_id", moduleID).
		Int("score", score).
		Int("total", total).
		Msg("quiz graded")

	utils.WriteJSON(w, models.QuizResultResponse{
		Score: score,
		Total: total,
	}, http.StatusOK)
}
