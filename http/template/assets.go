package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/xy-planning-network/bookstore"
)

// AssetURI encloses the environment, the Vite dev server origin and the client's dist directory
// so when called executing a template, emits valid URI for client side static and bundled assets.
//
// In development, scripts are served by the Vite dev server at origin.
// Elsewhere, AssetURI matches the hashed files Vite bundles into distDir,
// e.g., "main.js" becomes "/client/dist/assets/main-4f2a9c.js".
func AssetURI(env bookstore.Environment, origin, distDir string, filesys fs.FS) func(string) string {
	if filesys == nil {
		filesys = os.DirFS(".")
	}

	distDir = strings.Trim(distDir, "/")
	origin = strings.TrimRight(origin, "/")

	return func(assetPath string) string {
		switch {
		case env.IsTesting():
			return ""

		case env.IsDevelopment() && path.Ext(assetPath) == ".css":
			// NOTE: the Vite dev server injects styles from the entrypoint
			return ""

		case env.IsDevelopment():
			return fmt.Sprintf("%s/src/%s.ts", origin, strings.TrimSuffix(assetPath, path.Ext(assetPath)))

		default:
			ext := path.Ext(assetPath)
			name := strings.TrimSuffix(assetPath, ext)
			glob := fmt.Sprintf("%s/assets/%s-*%s", distDir, name, ext)
			matches, err := fs.Glob(filesys, glob)
			if errors.Is(err, path.ErrBadPattern) || len(matches) == 0 {
				return fmt.Sprintf("/%s/assets/%s", distDir, assetPath)
			}

			return "/" + matches[0]
		}
	}
}
