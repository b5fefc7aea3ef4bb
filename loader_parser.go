package a11ycatalog

import (
	"io/fs"
	"os"

	"github.com/goliatone/go-a11ycatalog/pkg/catalog"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
	"github.com/goliatone/go-a11ycatalog/pkg/theming"
)

// LoadCatalog parses every screen file under fsys, running decorators after
// validation.
func LoadCatalog(fsys fs.FS, decorators ...model.Decorator) (*catalog.Store, error) {
	return catalog.LoadFS(fsys, catalog.WithDecorators(decorators...))
}

// LoadCatalogDir is LoadCatalog over a directory on disk.
func LoadCatalogDir(dir string, decorators ...model.Decorator) (*catalog.Store, error) {
	return LoadCatalog(os.DirFS(dir), decorators...)
}

// LoadThemes builds a selector over the manifests found in fsys.
func LoadThemes(fsys fs.FS, options ...theming.Option) (*theming.Selector, error) {
	manifests, err := theming.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return theming.New(manifests, options...)
}
