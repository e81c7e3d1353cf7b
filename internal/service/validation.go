package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shenikar/field_sync/internal/models"
)

var requiredLocationFields = []string{"municipio", "bairro", "logradouro", "numero"}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validatePayload проверяет полезную нагрузку перед записью в очередь.
// Create требует полный адрес, update - id записи и полный адрес, если он передан.
func validatePayload(v *validator.Validate, kind models.ActionKind, p models.Occurrence) error {
	if !kind.Valid() {
		return &models.ValidationError{Fields: []string{"type"}}
	}

	var missing []string
	if kind == models.ActionUpdate && p.ID == 0 {
		missing = append(missing, "id")
	}

	switch {
	case p.Location != nil:
		missing = append(missing, missingLocationFields(v, p.Location)...)
	case kind == models.ActionCreate:
		missing = append(missing, requiredLocationFields...)
	}

	if len(missing) > 0 {
		return &models.ValidationError{Fields: missing}
	}
	return nil
}

func missingLocationFields(v *validator.Validate, loc *models.Location) []string {
	err := v.Struct(loc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return requiredLocationFields
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
