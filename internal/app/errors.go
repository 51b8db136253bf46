package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-catalog-api/api"
	appvalidator "github.com/metinatakli/movie-catalog-api/internal/validator"
)

const (
	ErrInternalServer   = "The server encountered a problem and could not process your request"
	ErrNotFound         = "The requested resource not found"
	ErrMethodNotAllowed = "The %s method is not supported for this resource"
	ErrFailedValidation = "One or more fields have invalid values"
	ErrMoviesNotFound   = "No movies found."
	ErrMovieNotFound    = "Movie with the given ID was not found."
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		app.logger.Info("client closed request", "method", r.Method, "uri", r.URL.RequestURI())
		return
	}

	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf(ErrMethodNotAllowed, r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

// invalidParamResponse handles parameters the generated router could not bind.
// They are rejected like range violations, with the parameter as the field.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if !errors.As(err, &paramErr) {
		app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	app.logger.DebugContext(r.Context(), "unbindable parameter", "param", paramErr.ParamName, "error", paramErr.Err)

	app.validationErrorResponse(w, r, []api.ValidationError{{
		Field: paramErr.ParamName,
		Issue: appvalidator.ErrNotInteger,
	}})
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.serverErrorResponse(w, r, err)
		return
	}

	issues := make([]api.ValidationError, len(validationErrors))
	for i, fieldErr := range validationErrors {
		issues[i] = api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		}
	}

	app.validationErrorResponse(w, r, issues)
}

func (app *Application) validationErrorResponse(w http.ResponseWriter, r *http.Request, issues []api.ValidationError) {
	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: issues,
	}

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
