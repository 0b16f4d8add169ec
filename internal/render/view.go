package render

import (
	"net/url"

	"github.com/MrSnakeDoc/showreel/internal/domain"
)

// Shell is the layout data shared by every page: head, fixed nav and footer.
type Shell struct {
	PageTitle string
	SiteTitle string
	Owner     string
	Year      int

	// Home pages get section links, other pages a single link back home
	Home bool
	Nav  []domain.NavItem

	ScrollOffset int
	NavScroll    domain.ScrollSpec
	HeroScroll   domain.ScrollSpec
}

// HomeView is the portfolio page.
type HomeView struct {
	Shell
	Hero     HeroView
	Sections []SectionView
	Modal    *ModalView // nil when nothing plays
}

// HeroView is the intro block with the decorative collage.
type HeroView struct {
	Name      string
	Role      string
	CTALabel  string
	CTAAnchor string
	Left      []CollageView
	Right     []CollageView
}

// CollageView is one hero image.
type CollageView struct {
	URL string
	Alt string
}

// SectionView is one gallery, bound to a category.
type SectionView struct {
	Slug  string
	Title string
	Kind  domain.Kind
	Cards []CardView
	Muted bool // alternating background
}

// CardView is one entry of a gallery grid.
type CardView struct {
	Title      string
	Image      string
	Href       string
	External   bool   // opens in a new browsing context
	ExternalID string // set for video cards
	Playing    bool
}

// ModalView is the open video overlay.
type ModalView struct {
	ExternalID string
	Title      string
	EmbedURL   string
	CloseHref  string
}

// AboutView is the bio and contact page.
type AboutView struct {
	Shell
	About *domain.AboutPage
}

// NotFoundView is rendered for unknown paths.
type NotFoundView struct {
	Shell
	Path string
}

// PlayHref is the link that opens a video in the modal, landing on its section.
func PlayHref(id, slug string) string {
	return "/?" + url.Values{"play": {id}}.Encode() + "#" + slug
}

// CloseHref is the link that closes the modal, landing on the section it was opened from.
func CloseHref(slug string) string {
	if slug == "" {
		return "/"
	}
	return "/#" + slug
}
