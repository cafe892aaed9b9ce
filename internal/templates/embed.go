package templates

import _ "embed"

// EmbeddedTemplate is the built-in HTML shell the exporter injects rendered
// question content into (kept embedded so the binary is self-contained).
//
//go:embed template.html
var EmbeddedTemplate string
