package docfmt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/3-lines-studio/midgard/internal/core"
)

func DecodeYAML(data []byte) (core.Document, error) {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return core.Document{}, fmt.Errorf("%w: malformed YAML: %v", ErrInvalidDocument, err)
	}
	return DecodeJSON(j)
}

// Decode picks the codec from the file extension; JSON is the default.
func Decode(data []byte, path string) (core.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}
