package model

import (
	_ "embed"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/generate_request.schema.json
var generateRequestSchema string

// ValidateRequestBody checks a raw generation payload against the request
// JSON schema before it is decoded. Shape violations (wrong types, missing
// required keys) are reported as *InputError so callers treat them like any
// other bad input.
func ValidateRequestBody(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(generateRequestSchema)
	docLoader := gojsonschema.NewBytesLoader(body)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		// the schema is embedded and known-good, so a validation error
		// means the document itself could not be loaded
		return &InputError{Reason: "invalid request body"}
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return &InputError{Reason: "invalid request: " + strings.Join(msgs, "; ")}
}
