// Package validation validates client configuration and endpoint requests.
//
// Struct tags (go-playground/validator) cover per-field rules; fields are
// reported by their json or mapstructure name so messages match the wire.
// The programmatic Validator covers rules that span fields.
//
// # Struct Tag Validation
//
//	type StatRequest struct {
//	    Path string `json:"Path" validate:"notblank"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Custom(start <= end, "Range", "start must not exceed end").
//	    Err()
package validation
