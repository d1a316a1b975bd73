package searchui

import (
	"checkups/pkg/domain"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/fatih/color"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var searchTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl")) //nolint: gochecknoglobals

type filterLink struct {
	Tag   domain.Filter
	Label string
}

type htmlView struct {
	Query    string
	Loading  bool
	Filters  []filterLink
	Kind     string
	Message  string
	Packages []domain.Package

	Suggestions  []string
	EmptyTitle   string
	EmptyMessage string
	ErrorTitle   string
	ErrorFooter  string
	BookLabel    string
	Currency     string
}

// RenderHTML writes the search form, the loading spinner and the results
// panel for s. All user and package text is escaped.
func RenderHTML(w io.Writer, s State) error {
	view := htmlView{
		Query:        s.Query,
		Loading:      s.Loading,
		Suggestions:  EmptySuggestions,
		EmptyTitle:   EmptyTitle,
		EmptyMessage: EmptyMessage,
		ErrorTitle:   ErrorTitle,
		ErrorFooter:  ErrorFooter,
		BookLabel:    BookLabel,
		Currency:     Currency,
	}
	for _, f := range domain.Filters() {
		view.Filters = append(view.Filters, filterLink{Tag: f, Label: label(string(f))})
	}

	switch p := s.Panel.(type) {
	case PanelError:
		view.Kind, view.Message = "error", p.Message
	case PanelEmpty:
		view.Kind = "empty"
	case PanelResults:
		view.Kind, view.Packages = "results", p.Packages
	}

	if err := searchTemplate.ExecuteTemplate(w, "search", view); err != nil {
		return fmt.Errorf("could not render search template: %w", err)
	}

	return nil
}

func label(tag string) string {
	if tag == "" {
		return tag
	}

	return strings.ToUpper(tag[:1]) + tag[1:]
}

// TextOptions controls terminal rendering.
type TextOptions struct {
	Color bool
}

type palette struct {
	heading, price, errorText, info, check, link *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		heading:   color.New(color.Bold),
		price:     color.New(color.FgGreen, color.Bold),
		errorText: color.New(color.FgRed, color.Bold),
		info:      color.New(color.FgCyan, color.Bold),
		check:     color.New(color.FgGreen),
		link:      color.New(color.FgBlue, color.Underline),
	}
	for _, c := range []*color.Color{p.heading, p.price, p.errorText, p.info, p.check, p.link} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// RenderText writes s for a terminal.
func RenderText(w io.Writer, s State, opts TextOptions) error {
	p := newPalette(opts.Color)
	tw := &textWriter{w: w}

	if s.Loading {
		tw.printf("Searching for %q...\n", strings.TrimSpace(s.Query))
	}

	switch panel := s.Panel.(type) {
	case PanelError:
		tw.printf("%s\n%s\n\n%s\n", p.errorText.Sprint(ErrorTitle), panel.Message, ErrorFooter)
	case PanelEmpty:
		tw.printf("%s\n%s\n", p.info.Sprint(EmptyTitle), EmptyMessage)
		for _, s := range EmptySuggestions {
			tw.printf("  - %s\n", s)
		}
	case PanelResults:
		for i, pkg := range panel.Packages {
			if i > 0 {
				tw.printf("\n")
			}
			tw.printf("%d. %s  %s\n", i+1, p.heading.Sprint(pkg.Hospital), p.price.Sprint(Currency+pkg.Price.String()))
			if pkg.Description != "" {
				tw.printf("   %s\n", pkg.Description)
			}
			if len(pkg.Features) > 0 {
				tw.printf("   Package Includes:\n")
				for _, f := range pkg.Features {
					tw.printf("     %s %s\n", p.check.Sprint("✓"), f)
				}
			}
			tw.printf("   %s: %s\n", BookLabel, p.link.Sprint(pkg.Link()))
		}
	}

	return tw.err
}

// textWriter keeps the first write error.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
