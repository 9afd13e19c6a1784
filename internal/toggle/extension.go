package toggle

import (
	"slices"
	"strings"
)

var imageExtensions = []string{"jpg", "jpeg", "png", "bmp", "webp"}

// Extension returns the lowercased text after the last dot of href. Without a
// dot the whole href is returned, which never names an image type.
func Extension(href string) string {
	href = strings.ToLower(href)
	return href[strings.LastIndex(href, ".")+1:]
}

// IsImageExtension reports whether ext belongs to the recognized image set.
func IsImageExtension(ext string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(ext))
}

// IsImage classifies an href.
func IsImage(href string) bool {
	return IsImageExtension(Extension(href))
}
