package core

import (
	"fmt"
	"strings"
)

// SchemaViolation is fatal to compilation: no partial page is produced.
type SchemaViolation struct {
	Field  string
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation: %s: %s", e.Field, e.Reason)
}

// Validate gates compilation with exactly two checks: the brand must be
// set and the section sequence must exist. Section fields are deliberately
// not deep-validated; a malformed section degrades at render time instead
// of failing the whole page.
func Validate(doc Document) error {
	if strings.TrimSpace(doc.Meta.Brand) == "" {
		return &SchemaViolation{Field: "meta.brand", Reason: "brand is required and must be non-empty"}
	}
	if doc.Sections == nil {
		return &SchemaViolation{Field: "sections", Reason: "section sequence is missing"}
	}
	return nil
}
