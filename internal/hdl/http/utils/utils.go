package utils

import (
	"net/http"

	"github.com/JMURv/courseguard/internal/hdl"
	"github.com/JMURv/courseguard/internal/hdl/validation"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

type Response struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func RawResponse(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	w.Write(body)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: http.StatusText(statusCode),
		},
	)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

// ErrCodeResponse carries a machine-readable code alongside the
// message, used for trust-decision failures (hdl.CodeSessionExpired
// and friends).
func ErrCodeResponse(w http.ResponseWriter, statusCode int, err error, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
			Code:  code,
		},
	)
}

func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validation.V.Struct(dst); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
			return false
		}

		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}
