package bank

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// checkParams validates a request-params struct and flattens any field
// failures into one reportable error.
func (s *Service) checkParams(obj any) error {
	err := s.validate.Struct(obj)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), messageFor(fe)))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	default:
		return "invalid value"
	}
}
