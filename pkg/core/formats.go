package core

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// AuthorizedExtensions are the image suffixes recognized as collection members.
var AuthorizedExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".tiff"}

// authorizedPattern matches a lowercased base name carrying one of AuthorizedExtensions.
var authorizedPattern = "*.{" + strings.Join(trimDots(AuthorizedExtensions), ",") + "}"

// IsAuthorized reports whether name ends with an authorized extension.
// Only the extension is compared, case-insensitively.
func IsAuthorized(name string) bool {
	ok, err := doublestar.Match(authorizedPattern, strings.ToLower(name))
	return err == nil && ok
}

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = strings.TrimPrefix(e, ".")
	}
	return out
}
