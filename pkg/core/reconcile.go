package core

import "sort"

// Reconcile merges the persisted image list with the filenames currently on disk.
//
// Known images keep their position and metadata. Each scanned filename that is
// not yet known is appended as a bare Image, in lexicographic order. Images
// whose file is no longer on disk are retained. Reconciling an already
// reconciled list against the same scan returns an equal list.
func Reconcile(existing []Image, scanned []string) []Image {
	known := make(map[string]struct{}, len(existing))
	out := make([]Image, 0, len(existing)+len(scanned))
	for _, img := range existing {
		if _, dup := known[img.Key()]; dup {
			continue
		}
		known[img.Key()] = struct{}{}
		out = append(out, img)
	}

	for _, name := range sortedCopy(scanned) {
		if _, ok := known[name]; ok {
			continue
		}
		known[name] = struct{}{}
		out = append(out, NewImage(name))
	}
	return out
}

// Report describes how a persisted image list differs from a directory scan.
type Report struct {
	// Added are files on disk that the list does not know yet.
	Added []string `json:"added"`
	// Missing are known images whose file is no longer on disk.
	Missing []string `json:"missing"`
}

// Clean reports whether the list and the scan agree.
func (r Report) Clean() bool {
	return len(r.Added) == 0 && len(r.Missing) == 0
}

// Diff compares existing against scanned without modifying either.
func Diff(existing []Image, scanned []string) Report {
	onDisk := make(map[string]struct{}, len(scanned))
	for _, name := range scanned {
		onDisk[name] = struct{}{}
	}
	known := make(map[string]struct{}, len(existing))

	var r Report
	for _, img := range existing {
		known[img.Key()] = struct{}{}
		if _, ok := onDisk[img.Key()]; !ok {
			r.Missing = append(r.Missing, img.Key())
		}
	}
	for _, name := range sortedCopy(scanned) {
		if _, ok := known[name]; !ok {
			r.Added = append(r.Added, name)
		}
	}
	return r
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
