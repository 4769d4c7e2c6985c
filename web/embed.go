package web

import "embed"

// FS contains the static assets served under /static: the client script
// handling menu events and the stylesheet.
//
//go:embed static/*
var FS embed.FS
