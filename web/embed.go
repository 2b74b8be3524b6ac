package web

import "embed"

// TemplatesFS holds the HTML templates rendered by the overview page.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds the static assets served under /static/.
//
//go:embed static/*
var StaticFS embed.FS
