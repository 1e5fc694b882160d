package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrInvalidPrivelege = fmt.Errorf("invalid authentication privileges")

func writeHandlerError(w http.ResponseWriter, status int, herr HandlerError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(herr)
}

func (app *Application) invalidCredentials(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Warn("invalid credentials", zap.String("path", r.URL.Path), zap.Error(err))
	writeHandlerError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authorizing User",
		Description:      err.Error(),
		PossibleSolution: "Retry with proper credentials",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Debug("invalid authorization", zap.String("path", r.URL.Path), zap.Error(err))
	writeHandlerError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Description:      "Invalid Authentication",
		PossibleSolution: "Check your headers and ensure you're submitting a valid token",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) forbidden(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusForbidden, HandlerError{
		ErrorName:        "Forbidden",
		Description:      err.Error(),
		PossibleSolution: "Use a token with the required scope",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidSignature(w http.ResponseWriter, r *http.Request, description string) {
	app.Logger.Warn("webhook signature rejected", zap.String("reason", description))
	writeHandlerError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Invalid Webhook Signature",
		Description:      description,
		PossibleSolution: "Sign the raw body with the shared webhook secret",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requirePostMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodPost)
	writeHandlerError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Post Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use POST method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requireGetMethod(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Allow", http.MethodGet)
	writeHandlerError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "GET Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use GET method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) payloadTooLarge(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Warn("request body too large", zap.String("path", r.URL.Path), zap.Error(err))
	writeHandlerError(w, http.StatusRequestEntityTooLarge, HandlerError{
		ErrorName:        "Payload Too Large",
		Description:      err.Error(),
		PossibleSolution: "Send a body under 1 MiB",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Error("internal server error", zap.String("path", r.URL.Path), zap.Error(err))
	writeHandlerError(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	app.Logger.Error("upstream service failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeHandlerError(w, http.StatusBadGateway, HandlerError{
		ErrorName:        "Upstream Error",
		Description:      err.Error(),
		PossibleSolution: "Try again in a few minutes",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) serviceUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusServiceUnavailable, HandlerError{
		ErrorName:        "Service Unavailable",
		Description:      err.Error(),
		PossibleSolution: "Check the database connection",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) validationFailed(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	description := err.Error()
	if errors.As(err, &verrs) {
		parts := make([]string, len(verrs))
		for i, fe := range verrs {
			parts[i] = describeFieldError(fe)
		}
		description = strings.Join(parts, "; ")
	}

	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Validation Failed",
		Description:      description,
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		field = "value"
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
