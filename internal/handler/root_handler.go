package handler

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

const IndexPath = "/static/index.html"

type RootHandler struct {
	static fs.FS
}

func NewRootHandler(static fs.FS) *RootHandler {
	return &RootHandler{static: static}
}

// Root godoc
// @Summary Redirect to the sign-up page
// @Tags Root
// @Success 307
// @Router / [get]
func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}

// Index serves index.html directly. http.FileServer would answer this path
// with a redirect to the directory.
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.static, "index.html")
	if err != nil {
		slog.Error("failed to read index page", "error", err)
		http.NotFound(w, r)
		return
	}

	var modTime time.Time
	if info, err := fs.Stat(h.static, "index.html"); err == nil {
		modTime = info.ModTime()
	}

	http.ServeContent(w, r, "index.html", modTime, bytes.NewReader(data))
}
