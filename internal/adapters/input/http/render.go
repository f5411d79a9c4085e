package http

import (
	"bytes"
	"embed"
	"html/template"

	"bookshelf/internal/domain"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

type (
	indexPage struct {
		Books []domain.BookLink
	}

	bookPage struct {
		Title       string
		Body        template.HTML
		Suggestions []domain.BookLink
		Rereads     []domain.BookLink
	}

	searchForm struct {
		Author      string
		Title       string
		Description string
	}

	searchPage struct {
		Form     searchForm
		Searched bool
		Results  []BookResponse
	}

	errorPage struct {
		Code    int
		Message string
	}
)

// Pages renders the HTML views from typed page data
type Pages struct {
	templates *template.Template
}

// NewPages parses the embedded templates
func NewPages() (*Pages, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{templates: tmpl}, nil
}

func (p *Pages) render(c *fiber.Ctx, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := p.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func newBookPage(view *domain.BookView) bookPage {
	return bookPage{
		Title: view.Book.Metadata.Title,
		// book documents come from the operator-seeded store and are served as-is
		Body:        template.HTML(view.Body),
		Suggestions: view.Recommendation.Suggestions,
		Rereads:     view.Recommendation.Rereads,
	}
}

func newSearchForm(r SearchRequest) searchForm {
	return searchForm{
		Author:      deref(r.Author),
		Title:       deref(r.Title),
		Description: deref(r.Description),
	}
}
