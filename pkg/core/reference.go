package core

import (
	"fmt"
	"strings"
)

const referenceSeparator = ", "

// ToReference renders the image as an academic citation:
//
//	Artist, Title, Year, Technique, Dimensions, Conservation site
//
// When the artist is unknown the production site takes its place; when both
// are unknown the leading element is omitted. Title, year, technique,
// dimensions and conservation site are required.
func (img Image) ToReference() (string, error) {
	required := []struct {
		name  string
		value string
	}{
		{FieldTitle, img.Title},
		{FieldYear, img.Year},
		{FieldTechnique, img.Technique},
		{FieldDimensions, img.Dimensions},
		{FieldConservationSite, img.ConservationSite},
	}

	parts := make([]string, 0, len(required)+1)
	switch {
	case img.Artist != "":
		parts = append(parts, img.Artist)
	case img.ProductionSite != "":
		parts = append(parts, img.ProductionSite)
	}

	for _, f := range required {
		if f.value == "" {
			return "", fmt.Errorf("%w: %s (%s)", ErrMissingReferenceField, f.name, img.Filename)
		}
		parts = append(parts, f.value)
	}

	return strings.Join(parts, referenceSeparator), nil
}
