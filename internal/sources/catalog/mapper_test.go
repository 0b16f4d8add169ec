package catalog

import (
	"errors"
	"testing"

	"github.com/MrSnakeDoc/showreel/internal/domain"
)

func validFile() *File {
	return &File{
		Profile: ProfileProps{Name: "Test Editor", Role: "Video Editor"},
		Categories: []CategoryProps{
			{
				Slug:  "shortform",
				Title: "Short-form Edits",
				Nav:   "Shorts",
				Kind:  "video",
				Videos: []VideoProps{
					{Title: "First", URL: "https://youtu.be/aaa111", ID: "aaa111"},
					{Title: "Second", URL: "https://youtu.be/bbb222", ID: "bbb222"},
				},
			},
			{
				Slug:   "thumbnails",
				Title:  "Thumbnails",
				Kind:   "image",
				Images: []ImageProps{{Title: "Ghibli Style", File: "Ghibli.jpg"}},
			},
		},
	}
}

func TestMapperMap(t *testing.T) {
	cat, err := NewMapper().Map(validFile())
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if len(cat.Categories) != 2 {
		t.Fatalf("Map() returned %d categories, want 2", len(cat.Categories))
	}

	shorts := cat.Categories[0]
	if shorts.Kind != domain.KindVideo || shorts.NavLabel != "Shorts" {
		t.Errorf("shortform = %+v", shorts)
	}
	if shorts.Videos[0].ExternalID != "aaa111" || shorts.Videos[1].ExternalID != "bbb222" {
		t.Errorf("video order not preserved: %+v", shorts.Videos)
	}

	if cat.Categories[1].NavLabel != "Thumbnails" {
		t.Errorf("nav label fallback = %q, want Thumbnails", cat.Categories[1].NavLabel)
	}

	if cat.Profile.SiteTitle != "My Portfolio" {
		t.Errorf("SiteTitle default = %q, want My Portfolio", cat.Profile.SiteTitle)
	}
	if cat.Profile.Owner != "Test Editor" {
		t.Errorf("Owner fallback = %q, want Test Editor", cat.Profile.Owner)
	}
}

func TestMapperMapErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *File)
	}{
		{"no categories", func(f *File) { f.Categories = nil }},
		{"duplicate slug", func(f *File) { f.Categories[1].Slug = "shortform" }},
		{"invalid slug", func(f *File) { f.Categories[0].Slug = "short form" }},
		{"missing title", func(f *File) { f.Categories[0].Title = "  " }},
		{"unknown kind", func(f *File) { f.Categories[0].Kind = "audio" }},
		{"malformed id", func(f *File) { f.Categories[0].Videos[0].ID = "abc?x=1" }},
		{"empty id", func(f *File) { f.Categories[0].Videos[0].ID = "" }},
		{"duplicate id in category", func(f *File) { f.Categories[0].Videos[1].ID = "aaa111" }},
		{"traversal filename", func(f *File) { f.Categories[1].Images[0].File = "../secret.jpg" }},
		{"absolute filename", func(f *File) { f.Categories[1].Images[0].File = "/etc/passwd" }},
		{"video category with images", func(f *File) {
			f.Categories[0].Images = []ImageProps{{Title: "x", File: "x.jpg"}}
		}},
		{"image category with videos", func(f *File) {
			f.Categories[1].Videos = []VideoProps{{Title: "x", ID: "x"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.mutate(f)

			if _, err := NewMapper().Map(f); err == nil {
				t.Error("Map() should return error")
			}
		})
	}
}

func TestMapperMapWrapsSentinels(t *testing.T) {
	f := validFile()
	f.Categories[0].Videos[0].ID = "bad id"

	_, err := NewMapper().Map(f)
	if !errors.Is(err, domain.ErrInvalidExternalID) {
		t.Errorf("Map() error = %v, want ErrInvalidExternalID", err)
	}
}

func TestMapperEmptyCategoryAllowed(t *testing.T) {
	f := validFile()
	f.Categories[1].Images = nil

	cat, err := NewMapper().Map(f)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if cat.Categories[1].Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Categories[1].Len())
	}
}

func TestMapperCollage(t *testing.T) {
	f := validFile()
	f.Profile.Collage = []CollageProps{
		{Src: "clm1.jpg", Alt: "one", Side: "left"},
		{Src: "clm3.jpg", Alt: "three", Side: "RIGHT"},
		{Src: "../escape.jpg", Side: "left"},
		{Src: "clm2.jpeg"},
	}

	cat, err := NewMapper().Map(f)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	collage := cat.Profile.Collage
	if len(collage) != 3 {
		t.Fatalf("collage has %d images, want 3", len(collage))
	}
	if collage[1].Side != "right" || collage[2].Side != "left" {
		t.Errorf("collage sides = %+v", collage)
	}
}

func TestNavLabelFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"gamingShorts", "Gaming Shorts"},
		{"trendyBrainrot", "Trendy Brainrot"},
		{"long-form", "Long Form"},
		{"cinematics", "Cinematics"},
		{"ads_and_info", "Ads And Info"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			if got := navLabelFromSlug(tt.slug); got != tt.want {
				t.Errorf("navLabelFromSlug(%q) = %q, want %q", tt.slug, got, tt.want)
			}
		})
	}
}
