package core

import (
	"errors"
	"testing"
)

func TestImage_Identity(t *testing.T) {
	a := Image{Filename: "photo.jpg", Title: "One"}
	b := Image{Filename: "photo.jpg", Artist: "Someone else"}
	c := Image{Filename: "Photo.jpg", Title: "One"}

	if a.Key() != b.Key() {
		t.Error("images with the same filename must share identity")
	}
	if a.Key() == c.Key() {
		t.Error("identity must be case-sensitive")
	}
	if a == b {
		t.Error("== must stay structural")
	}
}

func TestImage_IsBare(t *testing.T) {
	if !NewImage("a.png").IsBare() {
		t.Error("NewImage must be bare")
	}
	if (Image{Filename: "a.png", Year: "1900"}).IsBare() {
		t.Error("image with a year is not bare")
	}
}

func TestImage_SetField(t *testing.T) {
	img := NewImage("a.png")

	img, err := img.SetField("Artist", "Monet")
	if err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if img.Artist != "Monet" {
		t.Errorf("expected artist to be set, got %q", img.Artist)
	}

	if _, err := img.SetField(FieldFilename, "b.png"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("filename must not be settable, got %v", err)
	}
	if _, err := img.Field("colour"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestImage_ToReference(t *testing.T) {
	full := Image{
		Filename:         "lilies.jpg",
		Artist:           "Monet",
		Title:            "Water Lilies",
		Year:             "1919",
		Technique:        "Oil on canvas",
		Dimensions:       "100x100cm",
		ConservationSite: "MoMA",
	}

	tests := []struct {
		name    string
		img     func() Image
		want    string
		wantErr bool
	}{
		{
			name: "artist",
			img:  func() Image { return full },
			want: "Monet, Water Lilies, 1919, Oil on canvas, 100x100cm, MoMA",
		},
		{
			name: "artist wins over production site",
			img: func() Image {
				i := full
				i.ProductionSite = "Giverny"
				return i
			},
			want: "Monet, Water Lilies, 1919, Oil on canvas, 100x100cm, MoMA",
		},
		{
			name: "production site without artist",
			img: func() Image {
				i := full
				i.Artist = ""
				i.ProductionSite = "Giverny"
				return i
			},
			want: "Giverny, Water Lilies, 1919, Oil on canvas, 100x100cm, MoMA",
		},
		{
			name: "neither artist nor production site",
			img: func() Image {
				i := full
				i.Artist = ""
				return i
			},
			want: "Water Lilies, 1919, Oil on canvas, 100x100cm, MoMA",
		},
		{
			name: "missing year",
			img: func() Image {
				i := full
				i.Year = ""
				return i
			},
			wantErr: true,
		},
		{
			name:    "bare",
			img:     func() Image { return NewImage("x.png") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.img().ToReference()
			if tt.wantErr {
				if !errors.Is(err, ErrMissingReferenceField) {
					t.Fatalf("expected ErrMissingReferenceField, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToReference failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToReference() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAuthorized(t *testing.T) {
	tests := map[string]bool{
		"photo.JPG":      true,
		"photo.jpeg":     true,
		"scan.TiFf":      true,
		"a.png":          true,
		"b.webp":         true,
		"doc.pdf":        false,
		".collection":    false,
		"jpg":            false,
		"archive.jpg.7z": false,
		"image.tif":      false,
	}
	for name, want := range tests {
		if got := IsAuthorized(name); got != want {
			t.Errorf("IsAuthorized(%q) = %v, want %v", name, got, want)
		}
	}
}
