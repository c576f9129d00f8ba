package core

import (
	"fmt"
	"strings"
)

// Canonical field names of the sidecar schema.
const (
	FieldFilename         = "filename"
	FieldTitle            = "title"
	FieldArtist           = "artist"
	FieldYear             = "year"
	FieldTechnique        = "technique"
	FieldConservationSite = "conservation_site"
	FieldProductionSite   = "production_site"
	FieldDimensions       = "dimensions"
)

// MetadataFields lists the descriptive (non-identity) fields in schema order.
var MetadataFields = []string{
	FieldTitle,
	FieldArtist,
	FieldYear,
	FieldTechnique,
	FieldConservationSite,
	FieldProductionSite,
	FieldDimensions,
}

// Image is the metadata of one managed file.
//
// Filename is relative to the collection's work directory, so moving the
// directory does not break references. Descriptive fields are free text; the
// empty string means "unset".
//
// Two images denote the same file iff their Key values are equal. The ==
// operator stays structural; use Key (or Collection.Get) for identity checks.
type Image struct {
	Filename         string `json:"filename"`
	Title            string `json:"title,omitempty"`
	Artist           string `json:"artist,omitempty"`
	Year             string `json:"year,omitempty"`
	Technique        string `json:"technique,omitempty"`
	ConservationSite string `json:"conservation_site,omitempty"`
	ProductionSite   string `json:"production_site,omitempty"`
	Dimensions       string `json:"dimensions,omitempty"`
}

// NewImage returns a bare Image for filename.
func NewImage(filename string) Image {
	return Image{Filename: filename}
}

// Key returns the identity key of the image: its filename exactly as stored.
func (img Image) Key() string {
	return img.Filename
}

// IsBare reports whether no descriptive field is set.
func (img Image) IsBare() bool {
	for _, name := range MetadataFields {
		if v, _ := img.Field(name); v != "" {
			return false
		}
	}
	return true
}

// Field returns the value of a field by its canonical schema name.
func (img Image) Field(name string) (string, error) {
	switch strings.ToLower(name) {
	case FieldFilename:
		return img.Filename, nil
	case FieldTitle:
		return img.Title, nil
	case FieldArtist:
		return img.Artist, nil
	case FieldYear:
		return img.Year, nil
	case FieldTechnique:
		return img.Technique, nil
	case FieldConservationSite:
		return img.ConservationSite, nil
	case FieldProductionSite:
		return img.ProductionSite, nil
	case FieldDimensions:
		return img.Dimensions, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// SetField returns a copy of img with the named descriptive field set to value.
// The filename is identity and cannot be changed this way.
func (img Image) SetField(name, value string) (Image, error) {
	switch strings.ToLower(name) {
	case FieldTitle:
		img.Title = value
	case FieldArtist:
		img.Artist = value
	case FieldYear:
		img.Year = value
	case FieldTechnique:
		img.Technique = value
	case FieldConservationSite:
		img.ConservationSite = value
	case FieldProductionSite:
		img.ProductionSite = value
	case FieldDimensions:
		img.Dimensions = value
	default:
		return img, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return img, nil
}
