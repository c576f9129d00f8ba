package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/arty/pkg/core"
)

// Serializer defines how the sidecar file is read and written.
type Serializer interface {
	// Format names the encoding (e.g. "json").
	Format() string
	// Encode converts a title and an ordered image list to bytes.
	Encode(title string, images []core.Image) ([]byte, error)
	// Decode parses bytes produced by Encode. Invalid or incomplete content
	// fails with core.ErrMalformedSidecar.
	Decode(data []byte) (string, []core.Image, error)
}

// DefaultSerializers returns the standard set of serializers, keyed by format.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"json": NewJSONSerializer(),
		"yaml": NewYAMLSerializer(),
	}
}

// sidecarDocument is the on-disk schema. Pointers distinguish a missing key
// from an empty value; unset image fields are written as explicit nulls so the
// key set stays stable across round trips.
type sidecarDocument struct {
	Title      *string         `json:"title" yaml:"title"`
	Collection *[]sidecarImage `json:"collection" yaml:"collection"`
}

type sidecarImage struct {
	Filename         *string `json:"filename" yaml:"filename"`
	Title            *string `json:"title" yaml:"title"`
	Artist           *string `json:"artist" yaml:"artist"`
	Year             *string `json:"year" yaml:"year"`
	Technique        *string `json:"technique" yaml:"technique"`
	ConservationSite *string `json:"conservation_site" yaml:"conservation_site"`
	ProductionSite   *string `json:"production_site" yaml:"production_site"`
	Dimensions       *string `json:"dimensions" yaml:"dimensions"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDocument(title string, images []core.Image) sidecarDocument {
	records := make([]sidecarImage, len(images))
	for i, img := range images {
		filename := img.Filename
		records[i] = sidecarImage{
			Filename:         &filename,
			Title:            optional(img.Title),
			Artist:           optional(img.Artist),
			Year:             optional(img.Year),
			Technique:        optional(img.Technique),
			ConservationSite: optional(img.ConservationSite),
			ProductionSite:   optional(img.ProductionSite),
			Dimensions:       optional(img.Dimensions),
		}
	}
	return sidecarDocument{Title: &title, Collection: &records}
}

func fromDocument(doc sidecarDocument) (string, []core.Image, error) {
	if doc.Title == nil {
		return "", nil, fmt.Errorf("%w: missing %q", core.ErrMalformedSidecar, "title")
	}
	if doc.Collection == nil {
		return "", nil, fmt.Errorf("%w: missing %q", core.ErrMalformedSidecar, "collection")
	}

	images := make([]core.Image, 0, len(*doc.Collection))
	for i, rec := range *doc.Collection {
		filename := value(rec.Filename)
		if filename == "" {
			return "", nil, fmt.Errorf("%w: entry %d has no filename", core.ErrMalformedSidecar, i)
		}
		if !filepath.IsLocal(filename) {
			return "", nil, fmt.Errorf("%w: entry %d filename %q escapes the collection directory", core.ErrMalformedSidecar, i, filename)
		}
		images = append(images, core.Image{
			Filename:         filename,
			Title:            value(rec.Title),
			Artist:           value(rec.Artist),
			Year:             value(rec.Year),
			Technique:        value(rec.Technique),
			ConservationSite: value(rec.ConservationSite),
			ProductionSite:   value(rec.ProductionSite),
			Dimensions:       value(rec.Dimensions),
		})
	}
	return *doc.Title, images, nil
}

// --- JSON Serializer ---

// JSONSerializer reads and writes the sidecar as indented JSON.
type JSONSerializer struct {
	// Indent is the per-level indentation. Defaults to four spaces.
	Indent string
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "    "}
}

func (s *JSONSerializer) Format() string { return "json" }

func (s *JSONSerializer) Encode(title string, images []core.Image) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", s.Indent)
	if err := encoder.Encode(toDocument(title, images)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *JSONSerializer) Decode(data []byte) (string, []core.Image, error) {
	var doc sidecarDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: invalid json: %v", core.ErrMalformedSidecar, err)
	}
	return fromDocument(doc)
}

// --- YAML Serializer ---

// YAMLSerializer reads and writes the sidecar as YAML.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Format() string { return "yaml" }

func (s *YAMLSerializer) Encode(title string, images []core.Image) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toDocument(title, images)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *YAMLSerializer) Decode(data []byte) (string, []core.Image, error) {
	var doc sidecarDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: invalid yaml: %v", core.ErrMalformedSidecar, err)
	}
	return fromDocument(doc)
}
