package http

import (
	"net/http"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	catalog, err := h.Activities.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	name, email, err := participantRequest(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	msg, err := h.Activities.Signup(r.Context(), name, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	name, email, err := participantRequest(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	msg, err := h.Activities.Unregister(r.Context(), name, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func participantRequest(r *http.Request) (string, string, error) {
	name, err := activityNameFromPath(r)
	if err != nil {
		return "", "", err
	}

	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		return "", "", err
	}
	return name, email, nil
}
