package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validCatalog = `---
profile:
  name: Test Editor
categories:
  - slug: shortform
    title: Short-form Edits
    nav: Shorts
    kind: video
    videos:
      - title: First
        id: abc123
      - title: Second
        id: def456
`

func TestCatalogListBundled(t *testing.T) {
	out, err := execute(t, "catalog", "list")
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}

	cat, err := loadCatalog("")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "SLUG") {
		t.Errorf("header = %q", lines[0])
	}
	for i, c := range cat.Categories {
		if !strings.HasPrefix(lines[i+1], c.Slug+" ") {
			t.Errorf("line %d = %q, want slug %q first", i+1, lines[i+1], c.Slug)
		}
	}
	if !strings.Contains(out, "Total: 7 categories") {
		t.Errorf("missing total in %q", out)
	}
}

func TestCatalogListFile(t *testing.T) {
	path := writeCatalog(t, validCatalog)

	out, err := execute(t, "catalog", "list", "--file", path)
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	if !strings.Contains(out, "shortform") || !strings.Contains(out, "Total: 1 categories, 2 entries") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", validCatalog, false},
		{"no categories", "profile:\n  name: x\n", true},
		{"bad id", strings.Replace(validCatalog, "abc123", "abc 123", 1), true},
		{"duplicate slug", validCatalog + `  - slug: shortform
    title: Again
    kind: video
    videos:
      - title: Third
        id: ghi789
`, true},
		{"kind mismatch", strings.Replace(validCatalog, "kind: video", "kind: image", 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.content)
			out, err := execute(t, "catalog", "validate", "--file", path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate error = %v, wantErr %v (output %q)", err, tt.wantErr, out)
			}
			if !tt.wantErr && !strings.Contains(out, "is valid: 1 categories, 2 entries") {
				t.Errorf("unexpected output %q", out)
			}
		})
	}
}

func TestCatalogValidateRequiresFile(t *testing.T) {
	if _, err := execute(t, "catalog", "validate"); err == nil {
		t.Error("validate without --file should fail")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "showreel ") {
		t.Errorf("version output = %q", out)
	}
}

func TestServeFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SHOWREEL_LISTEN_PORT", ":8080")
	t.Setenv("SHOWREEL_CATALOG_FILE", "")

	f := serveFlags{port: "9090", catalogFile: "/srv/catalog.yaml"}
	if err := f.apply(); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("SHOWREEL_LISTEN_PORT"); got != "9090" {
		t.Errorf("SHOWREEL_LISTEN_PORT = %q", got)
	}
	if got := os.Getenv("SHOWREEL_CATALOG_FILE"); got != "/srv/catalog.yaml" {
		t.Errorf("SHOWREEL_CATALOG_FILE = %q", got)
	}

	// unset flags leave the environment alone
	t.Setenv("SHOWREEL_ASSETS_DIR", "./public")
	if err := (serveFlags{}).apply(); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("SHOWREEL_ASSETS_DIR"); got != "./public" {
		t.Errorf("SHOWREEL_ASSETS_DIR = %q", got)
	}
}
