package catalog

// File represents the top-level structure of catalog.yaml
type File struct {
	Profile    ProfileProps    `yaml:"profile"`
	Categories []CategoryProps `yaml:"categories"`
}

// ProfileProps contains the site identity shown in the hero, nav and footer
type ProfileProps struct {
	SiteTitle string         `yaml:"site_title"`
	Name      string         `yaml:"name"`
	Role      string         `yaml:"role"`
	Owner     string         `yaml:"owner"`
	CTA       string         `yaml:"cta,omitempty"`
	Collage   []CollageProps `yaml:"collage,omitempty"`
}

// CollageProps is one decorative hero image
type CollageProps struct {
	Src  string `yaml:"src"`
	Alt  string `yaml:"alt,omitempty"`
	Side string `yaml:"side,omitempty"`
}

// CategoryProps describes one gallery section. List order is display order.
type CategoryProps struct {
	Slug   string       `yaml:"slug"`
	Title  string       `yaml:"title"`
	Nav    string       `yaml:"nav,omitempty"`
	Kind   string       `yaml:"kind"`
	Videos []VideoProps `yaml:"videos,omitempty"`
	Images []ImageProps `yaml:"images,omitempty"`
}

// VideoProps is a video entry as written in the file
type VideoProps struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url,omitempty"`
	ID    string `yaml:"id"`
}

// ImageProps is an image entry as written in the file
type ImageProps struct {
	Title string `yaml:"title"`
	File  string `yaml:"file"`
}
