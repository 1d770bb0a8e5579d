package warehouse

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Target struct {
	Host     string `validate:"required,hostname_rfc1123"`
	HTTPPath string `validate:"required,startswith=/"`
	Port     int    `validate:"min=1,max=65535"`
	Catalog  string `validate:"required"`
	Schema   string `validate:"required"`
}

var targetValidator = validator.New()

func (t Target) Validate() error {
	if err := targetValidator.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	return nil
}
