package about

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoaderLoadBundled(t *testing.T) {
	page, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if page.Title != "About Me" {
		t.Errorf("Title = %q, want About Me", page.Title)
	}
	if len(page.Highlights) != 2 {
		t.Errorf("Highlights = %d, want 2", len(page.Highlights))
	}

	wantCollabs := []string{"Paragons DAO", "Champions TCG", "Chosen Ones", "Cambria"}
	if len(page.Collaborations) != len(wantCollabs) {
		t.Fatalf("Collaborations = %v, want %v", page.Collaborations, wantCollabs)
	}
	for i, c := range wantCollabs {
		if page.Collaborations[i] != c {
			t.Errorf("Collaborations[%d] = %q, want %q", i, page.Collaborations[i], c)
		}
	}

	if page.Contacts.EmailHref() != "mailto:lnkochev2@gmail.com" {
		t.Errorf("EmailHref() = %q", page.Contacts.EmailHref())
	}
	if page.Contacts.XURL() != "https://x.com/thecilium" {
		t.Errorf("XURL() = %q", page.Contacts.XURL())
	}
	if page.Contacts.Discord != "ciliumcho" {
		t.Errorf("Discord = %q, want ciliumcho", page.Contacts.Discord)
	}

	if !strings.Contains(string(page.BodyHTML), "<p>Created standout content entries") {
		t.Errorf("BodyHTML = %q", page.BodyHTML)
	}
}

func TestLoaderLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	mdPath := filepath.Join(tmpDir, "about.md")

	doc := `---
title: Who I Am
contacts:
  email: me@example.com
  x: "@handle"
  discord: someone
---
# Intro

Some **bold** text.

<script>alert(1)</script>
`
	if err := os.WriteFile(mdPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	page, err := NewLoader(mdPath).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if page.Title != "Who I Am" {
		t.Errorf("Title = %q, want Who I Am", page.Title)
	}
	if page.Contacts.XHandle != "handle" {
		t.Errorf("XHandle = %q, want handle", page.Contacts.XHandle)
	}

	body := string(page.BodyHTML)
	if !strings.Contains(body, `<h1 id="intro">Intro</h1>`) {
		t.Errorf("BodyHTML missing heading: %q", body)
	}
	if !strings.Contains(body, "<strong>bold</strong>") {
		t.Errorf("BodyHTML missing emphasis: %q", body)
	}
	if strings.Contains(body, "<script>") {
		t.Errorf("BodyHTML should not contain raw html: %q", body)
	}
}

func TestLoaderMissingContacts(t *testing.T) {
	doc := `---
title: About
contacts:
  email: me@example.com
---
Body
`
	if _, err := NewLoader("").Parse([]byte(doc)); err == nil {
		t.Error("Parse() without x and discord should return error")
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	if _, err := NewLoader("/nonexistent/about.md").Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}
