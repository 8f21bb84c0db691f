package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"bitbucket.org/adsa/go-reservation-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var (
	validate     = validator.New()
	registerOnce sync.Once
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type ErrorValidateResponse struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func register() {
	// field names are reported with their json name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerNoSpacesAtStartOrEnd()
	registerDate()
}

// ValidateStruct returns a *multierror.Error of ErrorValidateResponse, or nil.
func ValidateStruct(toValidate any) error {
	registerOnce.Do(register)

	var errs *multierror.Error
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		errs = multierror.Append(errs, ErrorValidateResponse{
			Code:    "INVALID",
			Message: err.Error(),
		})
		return errs.ErrorOrNil()
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, valErr := range valErrs {
			errs = multierror.Append(errs, toErrorResponse(valErr))
		}
	}

	return errs.ErrorOrNil()
}

func toErrorResponse(valErr validator.FieldError) ErrorValidateResponse {
	keys := []string{
		fmt.Sprintf("%s_%s", valErr.Namespace(), valErr.Tag()),
		fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag()),
	}
	for _, key := range keys {
		if data, found := models.MapErrors[key]; found {
			return ErrorValidateResponse{
				Code:    data.Code,
				Field:   valErr.Field(),
				Message: data.ErrorMessage.Error(),
			}
		}
	}

	return ErrorValidateResponse{
		Code:    "UNKNOWN",
		Field:   valErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
	}
}

func registerNoSpacesAtStartOrEnd() {
	_ = validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

func registerDate() {
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		return input == "" || datePattern.MatchString(input)
	})
}
