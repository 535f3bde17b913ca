package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/utils"
	"github.com/asemenov/learnhub/models"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	modules, err := h.services.ContentService.AllModules(ctx)
	if err != nil {
		log.Err(err).Msg("listing modules failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.DashboardResponse{
		User:    user,
		Modules: modules,
	}, http.StatusOK)
}

func (h *Handler) modulesList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	modules, err := h.services.ContentService.AllModules(ctx)
	if err != nil {
		log.Err(err).Msg("listing modules failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, modules, http.StatusOK)
}

func (h *Handler) moduleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	moduleID, err := moduleIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid module id")
		writeError(w, "invalid module id", http.StatusBadRequest)
		return
	}

	module, err := h.services.ContentService.ModuleByID(ctx, moduleID)
	if err != nil {
		log.Err(err).Int64("module_id", moduleID).Msg("fetching module failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, module, http.StatusOK)
}

// moduleIDFromRequest parses the {moduleID} URL parameter of the matched
// chi route into an int64.
func moduleIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "moduleID"), 10, 64)
}
