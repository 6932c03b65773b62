package content

import (
	"errors"
	"fmt"
	"strings"
)

// Schema is a post body format. A body is validated with Parse and its texts
// are rendered with Render.
type Schema interface {
	Name() string
	Version() int32

	// Parse validates the raw JSON body, keeps it and returns its canonical encoding.
	Parse(raw []byte) ([]byte, error)

	// Render converts the last parsed body into HTML sections.
	Render(r TextRenderer) []RenderedSection
}

// DefaultSchema is used when a body names no schema.
const DefaultSchema = "pseudo-ast"

var ErrUnknownSchema = errors.New("unknown body schema")

var schemas = map[string]func() Schema{
	DefaultSchema: func() Schema { return NewPseudoAST() },
}

// NewSchema returns an empty Schema registered under the name.
func NewSchema(name string) (Schema, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultSchema
	}

	create, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}

	return create(), nil
}
