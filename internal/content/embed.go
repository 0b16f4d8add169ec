// Package content bundles the default portfolio data into the binary.
package content

import _ "embed"

// Catalog is the default catalog, used when no catalog file is configured.
//
//go:embed catalog.yaml
var Catalog []byte

// About is the default about page document.
//
//go:embed about.md
var About []byte
