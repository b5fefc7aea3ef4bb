package catalog

import (
	"embed"
	"io/fs"
)

//go:embed screens/*.yaml
var embeddedScreens embed.FS

// EmbeddedFS returns the bundled screen definitions. Pass it to LoadFS to use
// the default catalog.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedScreens, "screens")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default loads the embedded catalog.
func Default(options ...Option) (*Store, error) {
	return LoadFS(EmbeddedFS(), options...)
}
