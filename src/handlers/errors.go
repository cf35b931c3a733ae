package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/mdnaeem95/purifai-mobile/src/security/validation"
	"github.com/mdnaeem95/purifai-mobile/src/services"
	"github.com/mdnaeem95/purifai-mobile/src/utils"
)

const maxBodyBytes = 1 << 20

var errBadRequestBody = errors.New("invalid request body")

// sendServiceError maps domain errors onto status codes. Anything unknown is
// logged and reported as a 500 without its details.
func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrMemberNotFound):
		utils.SendJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrCannotRemoveSelf):
		utils.SendJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrInvalidRelationship),
		errors.Is(err, validation.ErrValidationFailed),
		errors.Is(err, models.ErrUnknownAssetClass),
		errors.Is(err, models.ErrUnknownSubType),
		errors.Is(err, errBadRequestBody):
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		logger.FromContext(r.Context()).Error("Request failed", "path", r.URL.Path, "error", err)
		utils.SendJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRequestBody, err)
	}
	return body, nil
}

func decodeJSONBody(r *http.Request, dst any) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", errBadRequestBody, err)
	}
	return nil
}
