package gallery

import (
	"slices"
	"strings"
)

// CategoryAll is the pseudo category that selects every image.
const CategoryAll = "all"

type Image struct {
	ID       int    `json:"id"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Category string `json:"category"`
}

// Categories returns "all" followed by the distinct lower-cased image
// categories in first-seen order.
func Categories(images []Image) []string {
	out := []string{CategoryAll}
	for _, img := range images {
		c := strings.ToLower(img.Category)
		if c == "" || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ByCategory keeps images whose category matches case-insensitively.
// An empty category or "all" returns every image.
func ByCategory(images []Image, category string) []Image {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == CategoryAll {
		return slices.Clone(images)
	}

	out := make([]Image, 0)
	for _, img := range images {
		if strings.ToLower(img.Category) == category {
			out = append(out, img)
		}
	}
	return out
}
