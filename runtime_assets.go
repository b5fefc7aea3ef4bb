package a11ycatalog

import (
	"io/fs"

	"github.com/goliatone/go-a11ycatalog/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet and browser runtime the vanilla
// pages link to, so Go applications can serve them without a build step.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(a11ycatalog.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
