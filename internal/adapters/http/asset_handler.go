package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/3-lines-studio/syntax/internal/core"
)

type asset struct {
	data []byte
	etag string
}

// AssetHandler serves generated stylesheets from memory, keyed by URL path.
type AssetHandler struct {
	assets map[string]asset
	isDev  bool
}

func NewAssetHandler(files map[string][]byte, isDev bool) http.Handler {
	assets := make(map[string]asset, len(files))
	for name, data := range files {
		assets["/"+strings.TrimPrefix(name, "/")] = asset{data: data, etag: core.ETag(data)}
	}
	return &AssetHandler{
		assets: assets,
		isDev:  isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	a, ok := h.assets[path.Clean(req.URL.Path)]
	if !ok {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.ContentType(req.URL.Path))
	w.Header().Set("ETag", a.etag)
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}

	if match := req.Header.Get("If-None-Match"); match != "" && match == a.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(a.data)
}
