// Package validation validates request payloads with go-playground/validator
// and turns the first failure into a bad-request error carrying a French
// message that can be shown to end users.
package validation

import (
	"errors"
	"fmt"
	"guidiqo/pkg/serrors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON field names so messages match what clients sent
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		default:
			return name
		}
	})

	return v
}

// Struct validates s. Validation failures are returned as serrors.ErrBadRequest
// whose message describes the first invalid field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", Message(fieldErrs[0]))
	}

	return fmt.Errorf("could not validate payload: %w", err)
}

// Required returns the error reported when field is missing.
func Required(field string) error {
	return serrors.With(serrors.ErrBadRequest, "Le champ « %s » est requis.", field)
}

// Message renders a French, human-readable message for a field error.
func Message(fe validator.FieldError) string {
	field := fieldPath(fe)
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required", "required_if", "required_with", "required_without":
		return fmt.Sprintf("Le champ « %s » est requis.", field)
	case "max":
		if isString {
			return fmt.Sprintf("Le champ « %s » ne doit pas dépasser %s caractères.", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Le champ « %s » ne doit pas contenir plus de %s éléments.", field, fe.Param())
		}

		return fmt.Sprintf("Le champ « %s » doit être inférieur ou égal à %s.", field, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("Le champ « %s » doit contenir au moins %s caractères.", field, fe.Param())
		}

		return fmt.Sprintf("Le champ « %s » doit être supérieur ou égal à %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("Le champ « %s » doit être supérieur ou égal à %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("Le champ « %s » doit être inférieur ou égal à %s.", field, fe.Param())
	case "hexcolor":
		return fmt.Sprintf("Le champ « %s » doit être une couleur hexadécimale (ex. #1a2b3c).", field)
	case "url", "http_url":
		return fmt.Sprintf("Le champ « %s » doit être une URL valide.", field)
	case "email":
		return fmt.Sprintf("Le champ « %s » doit être une adresse e-mail valide.", field)
	case "oneof":
		return fmt.Sprintf("Le champ « %s » doit valoir l'une des valeurs suivantes : %s.",
			field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("Le champ « %s » est invalide.", field)
	}
}

// fieldPath drops the root struct name from the namespace, e.g.
// "BrandInput.colors.primary" becomes "colors.primary".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}
