// Package docfmt decodes page documents from their external JSON and YAML
// forms into the core schema. Decoding is lenient in the same places the
// compiler is: unrecognized section tags are preserved as core.Unknown so
// the dispatcher can skip them, while a malformed top-level shape is a
// decode error.
package docfmt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/3-lines-studio/midgard/internal/core"
)

var ErrInvalidDocument = errors.New("invalid page document")

func DecodeJSON(data []byte) (core.Document, error) {
	if !gjson.ValidBytes(data) {
		return core.Document{}, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return core.Document{}, fmt.Errorf("%w: document must be an object", ErrInvalidDocument)
	}

	var doc core.Document
	if meta := root.Get("meta"); meta.Exists() {
		if err := json.Unmarshal([]byte(meta.Raw), &doc.Meta); err != nil {
			return core.Document{}, fmt.Errorf("%w: meta: %v", ErrInvalidDocument, err)
		}
	}

	sections := root.Get("sections")
	if !sections.Exists() {
		return doc, nil
	}
	if !sections.IsArray() {
		return core.Document{}, fmt.Errorf("%w: sections must be an array", ErrInvalidDocument)
	}

	doc.Sections = make([]core.Section, 0)
	var err error
	sections.ForEach(func(_, raw gjson.Result) bool {
		var s core.Section
		s, err = decodeSection(raw)
		if err != nil {
			return false
		}
		doc.Sections = append(doc.Sections, s)
		return true
	})
	if err != nil {
		return core.Document{}, err
	}

	return doc, nil
}

// decodeSection peeks the type discriminant, then unmarshals the matching
// variant. Tags outside the known set decode to core.Unknown.
func decodeSection(raw gjson.Result) (core.Section, error) {
	tag := raw.Get("type").String()
	data := []byte(raw.Raw)

	unmarshal := func(v any) error {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("%w: %s section: %v", ErrInvalidDocument, tag, err)
		}
		return nil
	}

	switch tag {
	case "hero":
		var s core.Hero
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		if media := raw.Get("media"); media.Exists() {
			m, err := decodeMedia(media)
			if err != nil {
				return nil, err
			}
			s.Media = m
		}
		return s, nil
	case "features":
		var s core.Features
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return s, nil
	case "testimonials":
		var s core.Testimonials
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return s, nil
	case "pricing":
		var s core.Pricing
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return s, nil
	case "faq":
		var s core.FAQ
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return s, nil
	case "logos":
		var s core.Logos
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return s, nil
	case "cta":
		var s core.CTABanner
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return s, nil
	case "footer":
		var s core.Footer
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return core.Unknown{Type: tag, ID: raw.Get("id").String()}, nil
	}
}

func decodeMedia(raw gjson.Result) (core.Media, error) {
	tag := raw.Get("type").String()
	data := []byte(raw.Raw)

	switch tag {
	case "image":
		var m core.Image
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: image media: %v", ErrInvalidDocument, err)
		}
		return m, nil
	case "video":
		var m core.Video
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: video media: %v", ErrInvalidDocument, err)
		}
		return m, nil
	case "code":
		var m core.Code
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: code media: %v", ErrInvalidDocument, err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: unknown media type %q", ErrInvalidDocument, tag)
	}
}
