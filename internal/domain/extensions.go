package domain

import (
	"sort"
	"strings"
)

// ExtensionSet is a lowercase, dot-prefixed allow-list of file suffixes.
type ExtensionSet struct {
	members map[string]struct{}
}

func NewExtensionSet(exts ...string) ExtensionSet {
	members := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		members[ext] = struct{}{}
	}
	return ExtensionSet{members: members}
}

// DefaultExtensions returns the built-in image extension filter. Callers
// override by constructing their own set, never by mutating this one.
func DefaultExtensions() ExtensionSet {
	return NewExtensionSet(
		".jpg", ".jpeg", ".png", ".tiff", ".tif", ".heic", ".nef", ".cr2", ".arw",
	)
}

func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s.members[strings.ToLower(ext)]
	return ok
}

func (s ExtensionSet) Len() int {
	return len(s.members)
}

// Slice returns the members sorted, for display.
func (s ExtensionSet) Slice() []string {
	out := make([]string, 0, len(s.members))
	for ext := range s.members {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
