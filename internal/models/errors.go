package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}

	// ValidationError names the upstream field that kept a reservation from being normalized.
	ValidationError struct {
		Field  string
		Reason string
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

func (e ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing field %s", e.Field)
}

// MapErrors is keyed by "<field>_<validator tag>" and used for request validation responses.
var MapErrors = MapErrs{
	"_dt_required": {
		Code:         "MISSING_FIELD",
		ErrorMessage: errors.New("field is missing"),
	},
	"action_required": {
		Code:         "MISSING_FIELD",
		ErrorMessage: errors.New("field is missing"),
	},
	"payload_required": {
		Code:         "MISSING_FIELD",
		ErrorMessage: errors.New("field is missing"),
	},
	"kind_required": {
		Code:         "MISSING_FIELD",
		ErrorMessage: errors.New("field is missing"),
	},
	"dueDate_date": {
		Code:         "INVALID_VALUE",
		ErrorMessage: errors.New("date must be YYYY-MM-DD"),
	},
	"action_oneof": {
		Code:         "INVALID_VALUE",
		ErrorMessage: errors.New("field has unsupported value"),
	},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
