package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"activity-signup-service/internal/service"
)

const activityNameParam = "activityName"

// activityNameFromPath достаёт имя занятия из пути.
// chi матчит по RawPath, если он есть (например, в имени закодирован "/"), поэтому тогда декодируем сами.
func activityNameFromPath(r *http.Request) (string, error) {
	name := chi.URLParam(r, activityNameParam)
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(name)
		if err != nil {
			return "", service.ErrBadRequest("activity name is not a valid path segment")
		}
		name = decoded
	}
	if name == "" {
		return "", service.ErrBadRequest("activity name is required")
	}
	return name, nil
}

// ValidateEmailQuery проверяет обязательный query-параметр email.
func ValidateEmailQuery(email string) error {
	if email == "" {
		return service.ErrValidation("email query parameter is required")
	}
	return nil
}
