package core

import (
	"context"
	"sort"
	"strings"
)

// SortImages returns a copy of images stably ordered by the named field,
// compared case-insensitively. Images with the field unset always come last.
func SortImages(images []Image, field string, descending bool) ([]Image, error) {
	if _, err := (Image{}).Field(field); err != nil {
		return nil, err
	}

	out := make([]Image, len(images))
	copy(out, images)

	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].Field(field)
		b, _ := out[j].Field(field)
		switch {
		case a == "" || b == "":
			return a != "" && b == ""
		case descending:
			return strings.ToLower(a) > strings.ToLower(b)
		default:
			return strings.ToLower(a) < strings.ToLower(b)
		}
	})
	return out, nil
}

// SortBy reorders the collection by the named field and persists the new order.
func (c *Collection) SortBy(ctx context.Context, field string, descending bool) error {
	if c.repo == nil {
		return ErrDetached
	}
	sorted, err := SortImages(c.images, field, descending)
	if err != nil {
		return err
	}
	c.replace(sorted)
	return c.persist(ctx)
}

// Filter returns, in collection order, the images whose named field contains
// query (case-insensitive). An empty query matches every image.
func (c *Collection) Filter(field, query string) ([]Image, error) {
	if _, err := (Image{}).Field(field); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)

	var out []Image
	for _, img := range c.images {
		v, _ := img.Field(field)
		if strings.Contains(strings.ToLower(v), q) {
			out = append(out, img)
		}
	}
	return out, nil
}
