package http

import (
	"html"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/3-lines-studio/syntax/internal/core"
	"github.com/3-lines-studio/syntax/internal/ui/layout"
	"github.com/3-lines-studio/syntax/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	isDev   bool
	logger  zerolog.Logger
}

func NewPageHandler(service *usecase.PageService, isDev bool, logger zerolog.Logger) http.Handler {
	return &PageHandler{
		service: service,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		h.serveStatus(w, http.StatusMethodNotAllowed, "")
		return
	}

	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		RequestPath: req.URL.Path,
	})

	if output.Error != nil {
		h.logger.Error().Err(output.Error).Str("path", req.URL.Path).Msg("failed to render page")
		h.serveStatus(w, http.StatusInternalServerError, output.Error.Error())
		return
	}

	switch output.Action {
	case core.ActionNotFound:
		h.serveStatus(w, http.StatusNotFound, "")
	case core.ActionRender:
		h.serveHTML(w, req, output.HTML)
	}
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, req *http.Request, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(body))
}

func (h *PageHandler) serveStatus(w http.ResponseWriter, status int, message string) {
	var b strings.Builder
	if err := layout.ErrorPage(status, message, h.isDev).Render(&b); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(http.StatusText(status)) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(b.String()))
}
