// Package web embeds the landing page and its assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// IndexHTML is the landing page served at /.
func IndexHTML() ([]byte, error) {
	return files.ReadFile("index.html")
}

// Static returns the assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
