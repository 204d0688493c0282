package response

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/dmitrymomot/newslens/core/handler"
)

// FileFS creates a response that serves name from fsys, typically an
// embed.FS. Content type detection and range requests are handled by
// http.ServeFileFS. Returns 404 if the file doesn't exist or is a directory.
func FileFS(fsys fs.FS, name string) handler.Response {
	// fs.FS paths are unrooted and slash separated
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")

	return func(w http.ResponseWriter, r *http.Request) error {
		info, err := fs.Stat(fsys, clean)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
				http.NotFound(w, r)
				return nil
			}
			return err
		}

		if info.IsDir() {
			http.NotFound(w, r)
			return nil
		}

		http.ServeFileFS(w, r, fsys, clean)
		return nil
	}
}
