package domain

import (
	"html/template"
	"net/url"
	"strings"
)

// Highlight is one labelled paragraph of the about page.
type Highlight struct {
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Text  string `json:"text"`
}

// Contacts are the three ways to reach the owner.
type Contacts struct {
	Email   string `json:"email"`
	XHandle string `json:"x"`
	Discord string `json:"discord"`
}

// EmailHref returns the mailto link of the contact email.
func (c Contacts) EmailHref() string {
	return "mailto:" + c.Email
}

// XURL returns the profile URL of the X handle.
func (c Contacts) XURL() string {
	return "https://x.com/" + url.PathEscape(strings.TrimPrefix(c.XHandle, "@"))
}

// XLabel returns the handle as displayed (ex: "@thecilium").
func (c Contacts) XLabel() string {
	return "@" + strings.TrimPrefix(c.XHandle, "@")
}

// AboutPage is the bio and contact content of the about route.
type AboutPage struct {
	Title             string      `json:"title"`
	Highlights        []Highlight `json:"highlights"`
	Collaborations    []string    `json:"collaborations"`
	CollaborationNote string      `json:"collaboration_note,omitempty"`
	Contacts          Contacts    `json:"contacts"`

	// BodyHTML is the rendered Markdown body. Trusted: it comes from the operator's file.
	BodyHTML template.HTML `json:"-"`
}
