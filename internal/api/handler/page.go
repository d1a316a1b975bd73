package handler

import (
	"bytes"
	"checkups/internal/searchui"
	"checkups/pkg/logger"
	"checkups/pkg/serrors"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

const PageTitle = "Health Checkup Package Search"

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var layoutTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl")) //nolint: gochecknoglobals

type layoutView struct {
	Title   string
	Content template.HTML
}

// Page handles GET /. With ?filter= or ?q= the search runs server-side and
// its outcome is rendered into the page. Those searches need the same bearer
// token as POST /search; the blank page is public.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)

		return
	}

	params := r.URL.Query()
	c := searchui.New(fetcherFunc(h.search))

	if !params.Has("filter") && !params.Has("q") {
		h.writePage(w, r, http.StatusOK, c.State())

		return
	}

	ctx, err := h.deps.Verifier.Authenticate(r)
	if err != nil {
		c.SetQuery(params.Get("q"))
		c.DisplayError(serrors.MessageOf(err))
		h.writePage(w, r, http.StatusUnauthorized, c.State())

		return
	}

	if params.Has("filter") {
		if err := c.SetFilter(ctx, params.Get("filter")); errors.Is(err, searchui.ErrUnknownFilter) {
			logger.Info(ctx, "unknown filter requested", zap.Error(err))
		}
	} else {
		c.SetQuery(params.Get("q"))
		c.Search(ctx)
	}

	h.writePage(w, r, http.StatusOK, c.State())
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int, state searchui.State) {
	ctx := r.Context()

	var content bytes.Buffer
	if err := searchui.RenderHTML(&content, state); err != nil {
		logger.Error(ctx, "could not render search page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	var page bytes.Buffer
	//nolint: gosec
	if err := layoutTemplate.ExecuteTemplate(&page, "layout", layoutView{Title: PageTitle, Content: template.HTML(content.String())}); err != nil {
		logger.Error(ctx, "could not render layout", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = page.WriteTo(w)
}
