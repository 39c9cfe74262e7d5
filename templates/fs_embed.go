package templates

import "embed"

//go:embed pages/*.html
var Files embed.FS
