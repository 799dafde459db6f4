package validation

import "github.com/go-playground/validator/v10"

// V is the shared validator instance; validator.Validate caches
// struct metadata internally and is safe for concurrent use.
var V = validator.New()
