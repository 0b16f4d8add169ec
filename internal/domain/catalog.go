package domain

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Kind tells which entry type a category holds.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

const (
	// ThumbnailURLPattern is the preview image of an externally hosted video.
	ThumbnailURLPattern = "https://img.youtube.com/vi/%s/hqdefault.jpg"
	// EmbedURLPattern is the embeddable player, autoplay on.
	EmbedURLPattern = "https://www.youtube.com/embed/%s?autoplay=1"

	// AssetPrefix is the public path of thumbnail image assets.
	AssetPrefix = "/thumbnails/"
	// CollagePrefix is the public path of hero collage images.
	CollagePrefix = "/images/"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidExternalID = errors.New("invalid external id")
	ErrInvalidFilename   = errors.New("invalid asset filename")
)

var externalIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Video is a catalog entry hosted on the video platform.
type Video struct {
	// Title is shown under the card preview.
	Title string `json:"title"`

	// URL is the canonical watch link. Informational only.
	URL string `json:"url"`

	// ExternalID is the opaque platform identifier.
	// Both the preview image and the player URL are derived from it.
	ExternalID string `json:"id"`
}

// ThumbnailURL returns the preview image URL of the video.
func (v Video) ThumbnailURL() string { return ThumbnailURL(v.ExternalID) }

// EmbedURL returns the player URL of the video.
func (v Video) EmbedURL() string { return EmbedURL(v.ExternalID) }

// Image is a catalog entry served from the local thumbnails directory.
type Image struct {
	Title    string `json:"title"`
	Filename string `json:"file"`
}

// AssetURL returns the public path of the image.
func (i Image) AssetURL() string { return AssetPrefix + url.PathEscape(i.Filename) }

// Category is a named, ordered gallery.
//
// Entry order is display order. Exactly one of Videos or Images
// is populated, matching Kind.
type Category struct {
	// Slug is the section anchor (ex: "shortform").
	Slug string `json:"slug"`

	// Title is the section heading (ex: "Short-form Edits").
	Title string `json:"title"`

	// NavLabel is the text of the scroll link (ex: "Shorts").
	NavLabel string `json:"nav"`

	Kind   Kind    `json:"kind"`
	Videos []Video `json:"videos,omitempty"`
	Images []Image `json:"images,omitempty"`
}

// Len returns the number of entries in the category.
func (c *Category) Len() int {
	if c.Kind == KindImage {
		return len(c.Images)
	}
	return len(c.Videos)
}

// CollageImage is one of the decorative hero images.
type CollageImage struct {
	Src  string `json:"src"`
	Alt  string `json:"alt"`
	Side string `json:"side"` // "left" | "right"
}

// URL returns the public path of the collage image.
func (c CollageImage) URL() string { return CollagePrefix + url.PathEscape(c.Src) }

// Profile holds the site-wide identity shown in the hero, nav and footer.
type Profile struct {
	SiteTitle string         `json:"site_title"`
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	Owner     string         `json:"owner"`
	CTALabel  string         `json:"cta"`
	Collage   []CollageImage `json:"collage,omitempty"`
}

// Catalog is the full, immutable portfolio content.
// Categories are kept in display order.
type Catalog struct {
	Profile    Profile     `json:"profile"`
	Categories []*Category `json:"categories"`
}

// Category returns the category with the given slug.
func (c *Catalog) Category(slug string) (*Category, error) {
	for _, cat := range c.Categories {
		if cat.Slug == slug {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, slug)
}

// FindVideo returns the first video with the given id and the category holding it.
func (c *Catalog) FindVideo(id string) (Video, *Category, bool) {
	if id == "" {
		return Video{}, nil, false
	}
	for _, cat := range c.Categories {
		if cat.Kind != KindVideo {
			continue
		}
		for _, v := range cat.Videos {
			if v.ExternalID == id {
				return v, cat, true
			}
		}
	}
	return Video{}, nil, false
}

// VideoIDs returns the set of external ids present in the catalog.
func (c *Catalog) VideoIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, cat := range c.Categories {
		for _, v := range cat.Videos {
			ids[v.ExternalID] = struct{}{}
		}
	}
	return ids
}

// EntryCount returns the number of entries across all categories.
func (c *Catalog) EntryCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += cat.Len()
	}
	return n
}

// ThumbnailURL derives the preview image URL from an external id.
func ThumbnailURL(id string) string { return fmt.Sprintf(ThumbnailURLPattern, id) }

// EmbedURL derives the player URL from an external id.
func EmbedURL(id string) string { return fmt.Sprintf(EmbedURLPattern, id) }

// ValidateExternalID reports whether id can safely be templated into platform URLs.
func ValidateExternalID(id string) error {
	if !externalIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidExternalID, id)
	}
	return nil
}

// ValidateFilename rejects names that would escape the assets directory.
func ValidateFilename(name string) error {
	switch {
	case strings.TrimSpace(name) == "",
		name == "." || name == "..",
		strings.ContainsAny(name, `/\`),
		strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}
