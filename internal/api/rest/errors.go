package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

const maxErrorBody = 64 << 10

// decodeError turns a non-2xx response into *model.APIError and closes the body.
// The backend reports {"detail": "..."}; validation failures carry a list instead.
func decodeError(resp *http.Response) *model.APIError {
	defer resp.Body.Close()

	apiErr := &model.APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		apiErr.Detail = http.StatusText(resp.StatusCode)
		return apiErr
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		apiErr.Detail = strings.TrimSpace(string(data))
		return apiErr
	}

	var detail string
	switch {
	case len(payload.Detail) > 0 && json.Unmarshal(payload.Detail, &detail) == nil:
		apiErr.Detail = detail
	case len(payload.Detail) > 0:
		apiErr.Detail = string(payload.Detail)
	case payload.Error != "":
		apiErr.Detail = payload.Error
	default:
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
