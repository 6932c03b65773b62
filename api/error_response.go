package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	db "github.com/Drolfothesgnir/bbforum/db/sqlc"
	"github.com/go-playground/validator/v10"
)

// ErrorField describes the problem with a single request field.
type ErrorField struct {
	FieldName    string `json:"field"`
	ErrorMessage string `json:"message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{Error: err.Error(), Fields: fields}
}

// human-readable messages of the validation tags
var tagMessages = map[string]string{
	"required":   "this field is required",
	"min":        "value is too short",
	"max":        "value is too long",
	"len":        "invalid length",
	"email":      "invalid email address",
	"url":        "invalid URL format",
	"alphanum":   "must contain only letters and numbers",
	"alpha":      "must contain only letters",
	"numeric":    "must contain only numbers",
	"gte":        "must be greater than or equal to the allowed minimum",
	"lte":        "must be less than or equal to the allowed maximum",
	"gt":         "must be greater than the allowed minimum",
	"lt":         "must be less than the allowed maximum",
	"oneof":      "must be one of the allowed values",
	"uuid":       "invalid UUID format",
	"startswith": "must start with the required prefix",
	"endswith":   "must end with the required suffix",
}

// ExtractErrorFields flattens validator errors into ErrorFields.
// Any other error yields no fields.
func ExtractErrorFields(err error) []ErrorField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "invalid input"
		}

		fields = append(fields, ErrorField{FieldName: fe.Field(), ErrorMessage: msg})
	}

	return fields
}

// storeErrorStatus maps the store error onto the HTTP status code.
func storeErrorStatus(err error) int {
	var opErr *db.OpError
	if !errors.As(err, &opErr) {
		return http.StatusInternalServerError
	}

	switch opErr.Kind {
	case db.KindInvalid:
		return http.StatusBadRequest
	case db.KindNotFound:
		return http.StatusNotFound
	case db.KindConflict:
		return http.StatusConflict
	case db.KindPermission:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
