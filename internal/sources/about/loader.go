// Package about loads the about page from a Markdown document with YAML front matter.
package about

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/MrSnakeDoc/showreel/internal/content"
	"github.com/MrSnakeDoc/showreel/internal/domain"
)

const defaultTitle = "About Me"

// Matter is the front matter of the about document
type Matter struct {
	Title             string           `yaml:"title"`
	Highlights        []HighlightProps `yaml:"highlights"`
	Collaborations    []string         `yaml:"collaborations"`
	CollaborationNote string           `yaml:"collaboration_note"`
	Contacts          ContactProps     `yaml:"contacts"`
}

// HighlightProps is one labelled paragraph
type HighlightProps struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	Text  string `yaml:"text"`
}

// ContactProps lists the three contact methods
type ContactProps struct {
	Email   string `yaml:"email"`
	X       string `yaml:"x"`
	Discord string `yaml:"discord"`
}

// Loader reads the about document and renders its body
type Loader struct {
	filePath string
	md       goldmark.Markdown
}

// NewLoader creates a new about loader.
// An empty path loads the bundled document.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// FilePath returns the configured file path, empty for the bundled document
func (l *Loader) FilePath() string {
	return l.filePath
}

// Load reads, parses and renders the about page
func (l *Loader) Load() (*domain.AboutPage, error) {
	data := content.About
	if l.filePath != "" {
		var err error
		data, err = os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read about file: %w", err)
		}
	}

	return l.Parse(data)
}

// Parse converts an about document to a domain.AboutPage
func (l *Loader) Parse(data []byte) (*domain.AboutPage, error) {
	var matter Matter
	body, err := frontmatter.Parse(bytes.NewReader(data), &matter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse about front matter: %w", err)
	}

	contacts := domain.Contacts{
		Email:   strings.TrimSpace(matter.Contacts.Email),
		XHandle: strings.TrimPrefix(strings.TrimSpace(matter.Contacts.X), "@"),
		Discord: strings.TrimSpace(matter.Contacts.Discord),
	}
	if contacts.Email == "" || contacts.XHandle == "" || contacts.Discord == "" {
		return nil, fmt.Errorf("about contacts require email, x and discord")
	}

	var buf bytes.Buffer
	if err := l.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("failed to render about body: %w", err)
	}

	page := &domain.AboutPage{
		Title:             strings.TrimSpace(matter.Title),
		CollaborationNote: strings.TrimSpace(matter.CollaborationNote),
		Contacts:          contacts,
		BodyHTML:          template.HTML(buf.String()),
	}
	if page.Title == "" {
		page.Title = defaultTitle
	}

	for _, h := range matter.Highlights {
		if strings.TrimSpace(h.Text) == "" {
			continue
		}
		page.Highlights = append(page.Highlights, domain.Highlight{
			Label: strings.TrimSpace(h.Label),
			Icon:  strings.TrimSpace(h.Icon),
			Text:  strings.TrimSpace(h.Text),
		})
	}

	for _, c := range matter.Collaborations {
		if c = strings.TrimSpace(c); c != "" {
			page.Collaborations = append(page.Collaborations, c)
		}
	}

	return page, nil
}
