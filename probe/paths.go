package probe

import (
	"net/url"
	"strings"
)

// StaticPaths are probed in addition to the enumerated ones.
var StaticPaths = []string{"/", "/aktuell", "/top", "/alle"}

// Catalog holds the values enumerated from the target site.
type Catalog struct {
	Tags       []string
	Categories []string
	Authors    []string
	Items      []string
}

// Paths is a shorthand for BuildPaths(c).
func (c *Catalog) Paths() []string {
	return BuildPaths(c)
}

// BuildPaths returns the static paths followed by one encoded path per tag,
// category and item, in that order. Duplicates are kept.
func BuildPaths(c *Catalog) []string {
	paths := make([]string, 0, len(StaticPaths)+len(c.Tags)+len(c.Categories)+len(c.Items))
	paths = append(paths, StaticPaths...)
	for _, tag := range c.Tags {
		paths = append(paths, EscapePath("/tag/"+tag))
	}
	for _, category := range c.Categories {
		paths = append(paths, EscapePath("/category/"+category))
	}
	for _, id := range c.Items {
		paths = append(paths, EscapePath("/item/"+id))
	}
	return paths
}

// EscapePath percent-encodes every segment of p and keeps the slashes. Only
// letters, digits and "-_.~" are left as they are.
func EscapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		// QueryEscape encodes a literal "+" as %2B, so every remaining "+"
		// stands for a space.
		segments[i] = strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return strings.Join(segments, "/")
}
