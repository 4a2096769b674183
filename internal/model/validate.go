// Package model holds the JSON Schemas that gate write payloads at the API
// boundary. Every section has one schema; payloads that fail it are
// rejected before anything reaches the store.
package model

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// ValidateSection checks a raw section payload against the section's
// schema. Extra keys such as id and created_at are allowed here; the store
// strips them on write.
func ValidateSection(section domain.Section, data []byte) error {
	schema, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.schema.json", section))
	if err != nil {
		return fmt.Errorf("load schema for %s: %w", section, err)
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		// gojsonschema fails outright on non-JSON input
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}
