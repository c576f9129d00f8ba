package core

import (
	"reflect"
	"testing"
)

func TestReconcile(t *testing.T) {
	existing := []Image{
		{Filename: "z.png", Title: "Last letter", Artist: "Z"},
		{Filename: "gone.jpg", Title: "Stale"},
		{Filename: "a.jpg"},
	}
	scanned := []string{"c.tiff", "a.jpg", "z.png", "b.webp"}

	got := Reconcile(existing, scanned)
	want := []Image{
		{Filename: "z.png", Title: "Last letter", Artist: "Z"},
		{Filename: "gone.jpg", Title: "Stale"},
		{Filename: "a.jpg"},
		{Filename: "b.webp"},
		{Filename: "c.tiff"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reconcile() =\n%+v\nwant\n%+v", got, want)
	}

	t.Run("Idempotent", func(t *testing.T) {
		again := Reconcile(got, scanned)
		if !reflect.DeepEqual(again, got) {
			t.Errorf("second reconcile changed the list:\n%+v", again)
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		if len(existing) != 3 || existing[0].Title != "Last letter" {
			t.Errorf("input slice was modified: %+v", existing)
		}
		if scanned[0] != "c.tiff" {
			t.Errorf("scanned slice was reordered: %v", scanned)
		}
	})

	t.Run("Empty Inputs", func(t *testing.T) {
		if out := Reconcile(nil, nil); len(out) != 0 {
			t.Errorf("expected empty result, got %+v", out)
		}
	})

	t.Run("Case Sensitive Identity", func(t *testing.T) {
		out := Reconcile([]Image{{Filename: "Photo.JPG"}}, []string{"photo.jpg"})
		if len(out) != 2 {
			t.Errorf("expected distinct entries for different case, got %+v", out)
		}
	})
}

func TestDiff(t *testing.T) {
	existing := []Image{{Filename: "a.jpg"}, {Filename: "gone.png"}}
	r := Diff(existing, []string{"new2.png", "a.jpg", "new1.png"})

	if !reflect.DeepEqual(r.Added, []string{"new1.png", "new2.png"}) {
		t.Errorf("unexpected Added: %v", r.Added)
	}
	if !reflect.DeepEqual(r.Missing, []string{"gone.png"}) {
		t.Errorf("unexpected Missing: %v", r.Missing)
	}
	if r.Clean() {
		t.Error("report with changes must not be clean")
	}

	if !Diff(Reconcile(nil, []string{"a.jpg"}), []string{"a.jpg"}).Clean() {
		t.Error("reconciled list must diff clean against the same scan")
	}
}
