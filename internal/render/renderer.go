// Package render builds page view models and executes the HTML templates.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/MrSnakeDoc/showreel/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template files, each executed through the shared layout.
const (
	pageHome     = "home.html"
	pageAbout    = "about.html"
	pageNotFound = "notfound.html"
)

// Options configures a Renderer.
type Options struct {
	ScrollOffset int
	Now          func() time.Time
}

// Renderer turns catalog state into HTML pages.
type Renderer struct {
	pages        map[string]*template.Template
	scrollOffset int
	now          func() time.Time
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// New parses the embedded templates.
func New(opts Options) (*Renderer, error) {
	base, err := template.New("root").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{pageHome, pageAbout, pageNotFound} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}
		t, err := clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = t
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Renderer{
		pages:        pages,
		scrollOffset: opts.ScrollOffset,
		now:          now,
	}, nil
}

// Static returns the embedded CSS and script files, rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return sub
}

func (r *Renderer) shell(cat *domain.Catalog, pageTitle string) Shell {
	s := Shell{
		PageTitle:    pageTitle,
		Year:         r.now().Year(),
		ScrollOffset: r.scrollOffset,
		NavScroll:    domain.NewScrollSpec(r.scrollOffset, domain.NavScrollDuration),
		HeroScroll:   domain.NewScrollSpec(r.scrollOffset, domain.HeroScrollDuration),
	}
	if cat != nil {
		s.SiteTitle = cat.Profile.SiteTitle
		s.Owner = cat.Profile.Owner
	}
	if s.SiteTitle == "" {
		s.SiteTitle = "My Portfolio"
	}
	if s.PageTitle == "" {
		s.PageTitle = s.SiteTitle
	}
	return s
}

// BuildHome assembles the portfolio page: one section per category, one card per entry,
// and the modal when the playback state holds a catalog video.
func (r *Renderer) BuildHome(cat *domain.Catalog, state domain.PlaybackState) HomeView {
	view := HomeView{Shell: r.shell(cat, "")}
	view.Home = true
	view.Nav = cat.NavItems()

	p := cat.Profile
	view.PageTitle = p.SiteTitle
	if p.Name != "" {
		view.PageTitle = p.Name + " | " + p.Role
	}
	view.Hero = HeroView{Name: p.Name, Role: p.Role, CTALabel: p.CTALabel}
	if len(cat.Categories) > 0 {
		view.Hero.CTAAnchor = cat.Categories[0].Slug
	}
	for _, img := range p.Collage {
		c := CollageView{URL: img.URL(), Alt: img.Alt}
		if img.Side == "right" {
			view.Hero.Right = append(view.Hero.Right, c)
		} else {
			view.Hero.Left = append(view.Hero.Left, c)
		}
	}

	playing, _ := state.Current()

	view.Sections = make([]SectionView, 0, len(cat.Categories))
	for i, c := range cat.Categories {
		section := SectionView{
			Slug:  c.Slug,
			Title: c.Title,
			Kind:  c.Kind,
			Muted: i%2 == 1,
			Cards: make([]CardView, 0, c.Len()),
		}
		switch c.Kind {
		case domain.KindVideo:
			for _, v := range c.Videos {
				section.Cards = append(section.Cards, CardView{
					Title:      v.Title,
					Image:      v.ThumbnailURL(),
					Href:       PlayHref(v.ExternalID, c.Slug),
					ExternalID: v.ExternalID,
					Playing:    v.ExternalID == playing,
				})
			}
		case domain.KindImage:
			for _, img := range c.Images {
				section.Cards = append(section.Cards, CardView{
					Title:    img.Title,
					Image:    img.AssetURL(),
					Href:     img.AssetURL(),
					External: true,
				})
			}
		}
		view.Sections = append(view.Sections, section)
	}

	if id, ok := state.Current(); ok {
		if v, c, found := cat.FindVideo(id); found {
			view.Modal = &ModalView{
				ExternalID: v.ExternalID,
				Title:      v.Title,
				EmbedURL:   v.EmbedURL(),
				CloseHref:  CloseHref(c.Slug),
			}
		}
	}

	return view
}

// Home renders the portfolio page.
func (r *Renderer) Home(cat *domain.Catalog, state domain.PlaybackState) ([]byte, error) {
	return r.execute(pageHome, r.BuildHome(cat, state))
}

// About renders the about page in the same shell, with only a link back home.
func (r *Renderer) About(cat *domain.Catalog, page *domain.AboutPage) ([]byte, error) {
	if page == nil {
		return nil, fmt.Errorf("about page not loaded")
	}
	view := AboutView{Shell: r.shell(cat, page.Title), About: page}
	return r.execute(pageAbout, view)
}

// NotFound renders the 404 page in the same shell.
func (r *Renderer) NotFound(cat *domain.Catalog, path string) ([]byte, error) {
	view := NotFoundView{Shell: r.shell(cat, "Page not found"), Path: path}
	return r.execute(pageNotFound, view)
}

func (r *Renderer) execute(page string, data any) ([]byte, error) {
	t, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page template: %s", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", page, err)
	}
	return buf.Bytes(), nil
}
