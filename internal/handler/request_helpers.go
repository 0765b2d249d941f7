package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Bouquet_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req PlantRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// pathIndex reads a non-negative integer URL parameter. If ok is false the response has
// already been written.
func pathIndex(w http.ResponseWriter, r *http.Request, name, errMsg string) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || i < 0 {
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return i, true
}

// optionalIntQuery reads an integer query parameter. A missing parameter yields nil.
// If ok is false the response has already been written.
func optionalIntQuery(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return nil, false
	}
	return &v, true
}
