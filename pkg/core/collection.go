package core

import (
	"context"
	"fmt"
	"path/filepath"
)

// DefaultTitle is the title of a collection created from a directory without sidecar.
const DefaultTitle = "Untitled Collection"

// Collection is the in-memory aggregate of one managed directory.
//
// The image list is ordered (display order) and never holds two images with
// the same filename. Every mutating method persists the collection through
// its Repository before returning; there is no dirty state.
//
// A Collection has a single owner; it is not safe for concurrent use.
type Collection struct {
	workDir string
	title   string
	images  []Image
	index   map[string]int
	repo    Repository
}

// NewCollection builds a collection rooted at workDir. Images sharing a
// filename collapse to their first occurrence. repo may be nil, in which case
// mutating methods fail with ErrDetached.
func NewCollection(workDir, title string, images []Image, repo Repository) *Collection {
	if title == "" {
		title = DefaultTitle
	}
	c := &Collection{
		workDir: workDir,
		title:   title,
		repo:    repo,
	}
	c.replace(images)
	return c
}

// WorkDirectory returns the absolute path of the managed directory.
func (c *Collection) WorkDirectory() string { return c.workDir }

// Title returns the display name of the collection.
func (c *Collection) Title() string { return c.title }

// Len returns the number of images.
func (c *Collection) Len() int { return len(c.images) }

// Images returns a copy of the ordered image list.
func (c *Collection) Images() []Image {
	out := make([]Image, len(c.images))
	copy(out, c.images)
	return out
}

// Get looks an image up by filename.
func (c *Collection) Get(filename string) (Image, bool) {
	i, ok := c.index[filename]
	if !ok {
		return Image{}, false
	}
	return c.images[i], true
}

// Contains reports whether an image with the same identity is present.
func (c *Collection) Contains(img Image) bool {
	_, ok := c.index[img.Key()]
	return ok
}

// GetAbsolutePath joins the work directory and the image filename.
func (c *Collection) GetAbsolutePath(img Image) string {
	return filepath.Join(c.workDir, img.Filename)
}

// AddImage copies the file at source into the managed directory and appends
// a bare Image for it. The image is appended only after the copy succeeded.
//
// Adding a filename that is already part of the collection is not an error:
// the file is refreshed on disk and the existing entry, with its metadata, is
// returned.
func (c *Collection) AddImage(ctx context.Context, source string) (Image, error) {
	if c.repo == nil {
		return Image{}, ErrDetached
	}

	filename, err := c.repo.Import(ctx, c.workDir, source)
	if err != nil {
		return Image{}, err
	}

	img, exists := c.Get(filename)
	if !exists {
		img = NewImage(filename)
		c.append(img)
	}

	if err := c.persist(ctx); err != nil {
		return Image{}, err
	}
	return img, nil
}

// SetCollection replaces the whole ordered image list and persists it.
// Duplicate filenames collapse to their first occurrence.
func (c *Collection) SetCollection(ctx context.Context, images []Image) error {
	if c.repo == nil {
		return ErrDetached
	}
	c.replace(images)
	return c.persist(ctx)
}

// SetTitle renames the collection and persists it.
func (c *Collection) SetTitle(ctx context.Context, title string) error {
	if c.repo == nil {
		return ErrDetached
	}
	if title == "" {
		title = DefaultTitle
	}
	c.title = title
	return c.persist(ctx)
}

// UpdateImage replaces the metadata of the image sharing img's filename and
// persists the collection.
func (c *Collection) UpdateImage(ctx context.Context, img Image) error {
	if c.repo == nil {
		return ErrDetached
	}
	i, ok := c.index[img.Key()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrImageNotFound, img.Key())
	}
	c.images[i] = img
	return c.persist(ctx)
}

// Move places the image with the given filename at position to (clamped to
// the list bounds) and persists the new order.
func (c *Collection) Move(ctx context.Context, filename string, to int) error {
	if c.repo == nil {
		return ErrDetached
	}
	from, ok := c.index[filename]
	if !ok {
		return fmt.Errorf("%w: %s", ErrImageNotFound, filename)
	}
	if to < 0 {
		to = 0
	}
	if to > len(c.images)-1 {
		to = len(c.images) - 1
	}

	img := c.images[from]
	rest := append(c.images[:from:from], c.images[from+1:]...)
	reordered := make([]Image, 0, len(c.images))
	reordered = append(reordered, rest[:to]...)
	reordered = append(reordered, img)
	reordered = append(reordered, rest[to:]...)

	c.replace(reordered)
	return c.persist(ctx)
}

// References renders the citation of every image, in order. Images that
// cannot be cited are skipped and their errors returned alongside.
func (c *Collection) References() ([]string, []error) {
	var refs []string
	var errs []error
	for _, img := range c.images {
		ref, err := img.ToReference()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		refs = append(refs, ref)
	}
	return refs, errs
}

func (c *Collection) append(img Image) {
	c.index[img.Key()] = len(c.images)
	c.images = append(c.images, img)
}

func (c *Collection) replace(images []Image) {
	c.images = make([]Image, 0, len(images))
	c.index = make(map[string]int, len(images))
	for _, img := range images {
		if _, dup := c.index[img.Key()]; dup {
			continue
		}
		c.append(img)
	}
}

// Save persists the collection as it is now.
func (c *Collection) Save(ctx context.Context) error {
	if c.repo == nil {
		return ErrDetached
	}
	return c.persist(ctx)
}

func (c *Collection) persist(ctx context.Context) error {
	return c.repo.Save(ctx, c)
}
