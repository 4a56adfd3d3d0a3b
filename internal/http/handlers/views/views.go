package views

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/safespacehq/safespace-service/internal/storage"
	"github.com/safespacehq/safespace-service/internal/types"
	"github.com/safespacehq/safespace-service/internal/utils/response"
	"github.com/safespacehq/safespace-service/internal/view"
)

// Current handles reading the resolved view
// @Summary Get the current view
// @Description A story view whose id no longer resolves is reported as home
// @Tags views
// @Router /view [get]
func Current(router *view.Router, store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.RequestOK("View fetched successfully", router.Resolve(store)))
	}
}

// Navigate handles replacing the current view
// @Summary Navigate to a view
// @Description Replaces the current view unconditionally; no history is kept
// @Tags views
// @Param view body types.View true "Target view"
// @Router /view [post]
func Navigate(router *view.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var target types.View
		if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid request body")))
			return
		}
		// A story view pointing at an unknown id is still accepted: it
		// resolves to home on the next read instead of erroring here.
		if !target.Valid() {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("unknown view")))
			return
		}

		router.Navigate(target)

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Navigated successfully", target))
	}
}
