package template

import "errors"

var (
	ErrTemplateInUse     = errors.New("template is referenced by contracts")
	ErrInvalidValidity   = errors.New("validity period must be a positive number of days")
	ErrUnsupportedFormat = errors.New("unsupported template format")
)
