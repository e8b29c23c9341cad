package services

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/playground-backend/config"
	"github.com/rpupo63/playground-backend/database"
	"github.com/rpupo63/playground-backend/errs"
)

var (
	projectIDRules = []validation.Rule{
		validation.Required,
		validation.Length(1, config.MaxProjectIDLength),
		validation.By(segment(database.ValidateProjectID)),
	}
	filenameRules = []validation.Rule{
		validation.Required,
		validation.Length(1, config.MaxFilenameLength),
		validation.By(segment(database.ValidateFilename)),
	}
)

// segment adapts a store name check to a validation rule.
func segment(check func(string) error) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		return check(s)
	}
}

func validateProjectID(id string) error {
	return fieldError("projectID", validation.Validate(id, projectIDRules...))
}

func validateFilename(field, name string) error {
	return fieldError(field, validation.Validate(name, filenameRules...))
}

func (f UploadFile) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Filename, filenameRules...),
	)
}

func validateUpload(f UploadFile) error {
	var fields validation.Errors
	if err := f.Validate(); !errors.As(err, &fields) {
		return err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if fields[name] != nil {
			return fieldError(name, fields[name])
		}
	}
	return nil
}

// fieldError maps a validation failure to the API error for field. Errors
// already produced by the stores pass through unchanged.
func fieldError(field string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verr validation.Error
	if errors.As(err, &verr) && verr.Code() == validation.ErrRequired.Code() {
		return errs.NewMissingRequiredFieldError(field)
	}
	return errs.NewInvalidFieldError(field, err.Error())
}
