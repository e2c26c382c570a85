// Package validate wraps go-playground/validator for the CLI input
// structs. Commands validate input shape here before issuing statements
// against the store; schema constraints remain the final authority.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates the struct-tag rules on data. On failure it returns a
// single error listing every failed field and tag.
func Struct(data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %q (%s)", fe.StructNamespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.StructNamespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}
