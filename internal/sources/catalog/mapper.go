package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/showreel/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Mapper converts a catalog file to a domain.Catalog
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map validates the file and converts it to a domain.Catalog
func (m *Mapper) Map(file *File) (*domain.Catalog, error) {
	if file == nil || len(file.Categories) == 0 {
		return nil, fmt.Errorf("no categories found in catalog")
	}

	cat := &domain.Catalog{
		Profile:    m.mapProfile(file.Profile),
		Categories: make([]*domain.Category, 0, len(file.Categories)),
	}

	seen := make(map[string]struct{}, len(file.Categories))
	for i, props := range file.Categories {
		c, err := m.mapCategory(props)
		if err != nil {
			return nil, fmt.Errorf("category #%d: %w", i+1, err)
		}
		if _, dup := seen[c.Slug]; dup {
			return nil, fmt.Errorf("category #%d: duplicate slug %q", i+1, c.Slug)
		}
		seen[c.Slug] = struct{}{}
		cat.Categories = append(cat.Categories, c)
	}

	return cat, nil
}

func (m *Mapper) mapProfile(p ProfileProps) domain.Profile {
	profile := domain.Profile{
		SiteTitle: strings.TrimSpace(p.SiteTitle),
		Name:      strings.TrimSpace(p.Name),
		Role:      strings.TrimSpace(p.Role),
		Owner:     strings.TrimSpace(p.Owner),
		CTALabel:  strings.TrimSpace(p.CTA),
	}

	if profile.SiteTitle == "" {
		profile.SiteTitle = "My Portfolio"
	}
	if profile.Owner == "" {
		profile.Owner = profile.Name
	}
	if profile.CTALabel == "" {
		profile.CTALabel = "Explore my work"
	}

	for _, c := range p.Collage {
		// Skip images that would escape the images directory
		if domain.ValidateFilename(c.Src) != nil {
			continue
		}
		side := strings.ToLower(strings.TrimSpace(c.Side))
		if side != "right" {
			side = "left"
		}
		profile.Collage = append(profile.Collage, domain.CollageImage{Src: c.Src, Alt: c.Alt, Side: side})
	}

	return profile
}

func (m *Mapper) mapCategory(props CategoryProps) (*domain.Category, error) {
	slug := strings.TrimSpace(props.Slug)
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid slug %q", props.Slug)
	}

	title := strings.TrimSpace(props.Title)
	if title == "" {
		return nil, fmt.Errorf("%s: missing title", slug)
	}

	nav := strings.TrimSpace(props.Nav)
	if nav == "" {
		nav = navLabelFromSlug(slug)
	}

	c := &domain.Category{
		Slug:     slug,
		Title:    title,
		NavLabel: nav,
		Kind:     domain.Kind(strings.ToLower(strings.TrimSpace(props.Kind))),
	}

	switch c.Kind {
	case domain.KindVideo:
		if len(props.Images) > 0 {
			return nil, fmt.Errorf("%s: video category lists images", slug)
		}
		ids := make(map[string]struct{}, len(props.Videos))
		for _, v := range props.Videos {
			id := strings.TrimSpace(v.ID)
			if err := domain.ValidateExternalID(id); err != nil {
				return nil, fmt.Errorf("%s: %w", slug, err)
			}
			if _, dup := ids[id]; dup {
				return nil, fmt.Errorf("%s: duplicate video id %q", slug, id)
			}
			ids[id] = struct{}{}
			c.Videos = append(c.Videos, domain.Video{
				Title:      strings.TrimSpace(v.Title),
				URL:        strings.TrimSpace(v.URL),
				ExternalID: id,
			})
		}
	case domain.KindImage:
		if len(props.Videos) > 0 {
			return nil, fmt.Errorf("%s: image category lists videos", slug)
		}
		for _, img := range props.Images {
			if err := domain.ValidateFilename(img.File); err != nil {
				return nil, fmt.Errorf("%s: %w", slug, err)
			}
			c.Images = append(c.Images, domain.Image{
				Title:    strings.TrimSpace(img.Title),
				Filename: img.File,
			})
		}
	default:
		return nil, fmt.Errorf("%s: unknown kind %q", slug, props.Kind)
	}

	return c, nil
}

// navLabelFromSlug title-cases the words of a slug
// Example: "gamingShorts" -> "Gaming Shorts", "long-form" -> "Long Form"
func navLabelFromSlug(slug string) string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for _, r := range slug {
		switch {
		case r == '-' || r == '_':
			flush()
		case unicode.IsUpper(r):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	// Casers are stateful, one per call
	return cases.Title(language.English).String(strings.Join(words, " "))
}
