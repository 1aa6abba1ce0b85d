// Package validation provides struct validation using go-playground/validator
// struct tags, returning radiowatch AppErrors.
package validation
