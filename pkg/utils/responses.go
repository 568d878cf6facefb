package utils

import (
	"encoding/json"
	"net/http"

	"kikao-backend/pkg/apperrors"
)

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type ErrorBody struct {
	Type    apperrors.Kind `json:"type"`
	Details any            `json:"details,omitempty"`
}

type ErrorResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Error   ErrorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, SuccessResponse{Status: "success", Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, SuccessResponse{Status: "success", Message: message, Data: data})
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string, kind apperrors.Kind, details any) {
	writeJSON(w, code, ErrorResponse{
		Status:  "error",
		Message: message,
		Error:   ErrorBody{Type: kind, Details: details},
	})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, details any) {
	ResponseError(w, http.StatusBadRequest, message, apperrors.KindAPIError, details)
}

// returns 422 Unprocessable Entity with field-level details
func ResponseValidationFailed(w http.ResponseWriter, message string, details map[string]string) {
	ResponseError(w, http.StatusUnprocessableEntity, message, apperrors.KindValidation, details)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, apperrors.KindUnauthorized, nil)
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message, apperrors.KindUnauthorized, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, apperrors.KindNotFound, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message, apperrors.KindAPIError, nil)
}

// HandleServiceError translates a typed service failure into the HTTP
// error envelope. Unrecognized errors fall back to a generic 500 without
// leaking internals.
func HandleServiceError(w http.ResponseWriter, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		ResponseNotFound(w, err.Error())
	case apperrors.KindUnauthorized:
		ResponseError(w, http.StatusUnauthorized, err.Error(), apperrors.KindUnauthorized, nil)
	case apperrors.KindValidation:
		ResponseValidationFailed(w, err.Error(), apperrors.DetailsOf(err))
	case apperrors.KindUpdateFailed, apperrors.KindDeleteFailed:
		ResponseError(w, http.StatusBadRequest, err.Error(), apperrors.KindOf(err), nil)
	default:
		ResponseInternalError(w, "Internal server error")
	}
}
