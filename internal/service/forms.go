package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
)

const (
	notBlankTag  = "notblank"
	requiredTag  = "required"
	requiredText = "this field is required"
	notBlankText = "this field cannot be blank"
)

// RequestForm is the contact request submitted from /request/.
type RequestForm struct {
	Goal  string `form:"goal" validate:"required"`
	Time  string `form:"time" validate:"required,oneof=1-2 3-5 5-7 7-10"`
	Name  string `form:"name" validate:"required,notblank,max=100"`
	Phone string `form:"phone" validate:"required,min=7,max=15"`
}

// Normalize trims user input in place.
func (f *RequestForm) Normalize() {
	f.Goal = strings.TrimSpace(f.Goal)
	f.Time = strings.TrimSpace(f.Time)
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
}

// BookingForm is the client contact data submitted when booking a slot.
type BookingForm struct {
	Name  string `form:"name" validate:"required,notblank,max=100"`
	Phone string `form:"phone" validate:"required,min=7,max=15"`
}

// Normalize trims user input in place.
func (f *BookingForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
}

// FormValidator validates submitted forms and renders English messages
// keyed by the form field name.
type FormValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewFormValidator builds a validator with English translations registered.
func NewFormValidator() *FormValidator {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlank)

	// a noop register func keeps the default translation registry intact
	noop := func(ut.Translator) error { return nil }
	for _, tag := range []string{requiredTag, notBlankTag} {
		_ = validate.RegisterTranslation(tag, translator, noop, translateCustom)
	}

	return &FormValidator{validate: validate, translator: translator}
}

// Check validates the form. Invalid input yields a validation *Error whose
// Fields map holds one message per offending field.
func (v *FormValidator) Check(form interface{}) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate form")
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fe.Translate(v.translator)
	}
	return appErrors.Validation(fields)
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case requiredTag:
		return requiredText
	case notBlankTag:
		return notBlankText
	default:
		return ""
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}
