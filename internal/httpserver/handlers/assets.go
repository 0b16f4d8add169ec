package handlers

import (
	"net/http"
	"os"

	"github.com/MrSnakeDoc/showreel/internal/render"
	"github.com/MrSnakeDoc/showreel/internal/utils"
)

// Assets serves files below root. The request path is used as is, so
// /thumbnails/x.jpg maps to root/thumbnails/x.jpg. Directories are never listed.
func Assets(root string) http.HandlerFunc {
	fileServer := http.FileServer(noListingFS{http.Dir(root)})
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(w, r)
	}
}

// Static serves the embedded stylesheet and script under /static/.
func Static() http.HandlerFunc {
	fileServer := http.StripPrefix("/static/", http.FileServer(noListingFS{http.FS(render.Static())}))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	}
}

type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		utils.Close(f)
		return nil, err
	}
	if st.IsDir() {
		utils.Close(f)
		return nil, os.ErrNotExist
	}
	return f, nil
}
