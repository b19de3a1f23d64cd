// Package web embeds the static HTML/JS front end served by the API server.
package web

import "embed"

//go:embed index.html app.js
var FS embed.FS
