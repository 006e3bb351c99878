package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "translationflow/internal/errors"
	"translationflow/internal/language"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the project-specific tags registered:
//
//	langcode            the value is a BCP 47 language tag
//	notcontainsfield=F  the slice does not contain the value of sibling field F
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("langcode", validateLangCode)
	_ = v.RegisterValidation("notcontainsfield", validateExcludesField)
	return v
}

func validateLangCode(fl validator.FieldLevel) bool {
	return language.IsValid(fl.Field().String())
}

func validateExcludesField(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	other := parent.FieldByName(fl.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		if field.Index(i).String() == other.String() {
			return false
		}
	}
	return true
}

// ValidateStruct runs the validator and converts the first failure into a
// ValidationError naming the JSON field.
func ValidateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := fieldErrs[0]
	return apperrors.NewValidationError(fieldName(fe), describe(fe))
}

// fieldName drops the struct name prefix from the namespace, keeping
// indexes such as target_languages[1].
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "langcode":
		return fmt.Sprintf("%q is not a valid language code", fe.Value())
	case "unique":
		return "must not contain duplicates"
	case "notcontainsfield":
		return "must not include the source language"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
