package ui

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the browser runtime and stylesheet served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
