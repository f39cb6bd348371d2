package gallery

import (
	"context"
	"path"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Eyobiel-12/savannaeetcafe/internal/storage"
)

// Source lists gallery images.
type Source interface {
	ListImages(ctx context.Context) ([]Image, error)
}

var defaultImages = []Image{
	{ID: 1, Src: "/images/interior/restaurant-1.jpg", Alt: "Restaurant Interior", Category: "Interior"},
	{ID: 2, Src: "/images/interior/restaurant-2.jpg", Alt: "Dining Area", Category: "Interior"},
	{ID: 3, Src: "/images/interior/restaurant-3.jpg", Alt: "Restaurant Seating", Category: "Interior"},
	{ID: 4, Src: "/images/food/food-1.jpg", Alt: "Ethiopian Dish", Category: "Food"},
	{ID: 5, Src: "/images/food/food-2.jpg", Alt: "Traditional Platter", Category: "Food"},
	{ID: 6, Src: "/images/food/food-3.jpg", Alt: "Injera with Various Dishes", Category: "Food"},
	{ID: 7, Src: "/images/food/food-4.jpg", Alt: "Vegetarian Platter", Category: "Food"},
	{ID: 8, Src: "/images/food/food-5.jpg", Alt: "Habesha Special", Category: "Food"},
	{ID: 9, Src: "/images/food/food-6.jpg", Alt: "Traditional Ethiopian Cuisine", Category: "Food"},
}

type StaticSource struct {
	images []Image
}

func NewStaticSource() *StaticSource {
	return &StaticSource{images: defaultImages}
}

func (s *StaticSource) ListImages(ctx context.Context) ([]Image, error) {
	return slices.Clone(s.images), nil
}

// ObjectLister is the part of the R2 client the gallery uses.
type ObjectLister interface {
	List(ctx context.Context, prefix string) ([]storage.Object, error)
}

// BucketSource lists images from a bucket laid out as
// <prefix>/<category>/<file>.
type BucketSource struct {
	bucket ObjectLister
	prefix string
}

func NewBucketSource(bucket ObjectLister, prefix string) *BucketSource {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &BucketSource{bucket: bucket, prefix: prefix}
}

var imageExts = []string{".jpg", ".jpeg", ".png", ".webp", ".avif", ".gif"}

func (s *BucketSource) ListImages(ctx context.Context) ([]Image, error) {
	objects, err := s.bucket.List(ctx, s.prefix)
	if err != nil {
		return nil, err
	}

	images := make([]Image, 0, len(objects))
	for _, obj := range objects {
		rel := strings.TrimPrefix(obj.Key, s.prefix)
		category, file, ok := strings.Cut(rel, "/")
		if !ok || strings.Contains(file, "/") {
			continue
		}

		ext := strings.ToLower(path.Ext(file))
		if !slices.Contains(imageExts, ext) {
			continue
		}

		images = append(images, Image{
			ID:       len(images) + 1,
			Src:      obj.URL,
			Alt:      altText(strings.TrimSuffix(file, path.Ext(file))),
			Category: category,
		})
	}
	return images, nil
}

// altText turns "habesha-special_2" into "Habesha special 2".
func altText(name string) string {
	name = strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	}), " ")
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
