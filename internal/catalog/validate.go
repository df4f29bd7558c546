package catalog

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kfir19/MyLibrary/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "required" accepts whitespace-only strings, so blanks get their own rule.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// IsValidForSave reports whether a submitted book carries the fields required
// to persist it: non-blank title, author and genre.
func IsValidForSave(view *models.BookView) bool {
	if view == nil {
		return false
	}
	return validate.Struct(view) == nil
}
