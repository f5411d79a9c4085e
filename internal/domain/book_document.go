package domain

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BookDocument is a parsed book page. Body holds the inner HTML of <body>.
type BookDocument struct {
	Metadata BookMetadata
	Body     string
}

// ParseBookDocument extracts title, author and description from a stored
// book page. The title is the first h2 (or h1), the first paragraph is the
// author and the remaining paragraphs form the description.
func ParseBookDocument(raw string) (BookDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return BookDocument{}, ErrMalformedDocument
	}

	heading := doc.Find("h2").First()
	if heading.Length() == 0 {
		heading = doc.Find("h1").First()
	}
	title := strings.TrimSpace(heading.Text())
	if title == "" {
		return BookDocument{}, ErrMalformedDocument
	}

	paragraphs := doc.Find("p")
	if paragraphs.Length() == 0 {
		return BookDocument{}, ErrMalformedDocument
	}
	author := strings.TrimSpace(paragraphs.First().Text())

	description := make([]string, 0, paragraphs.Length()-1)
	paragraphs.Slice(1, paragraphs.Length()).Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			description = append(description, text)
		}
	})

	body, _ := doc.Find("body").Html()

	return BookDocument{
		Metadata: BookMetadata{
			Title:       title,
			Author:      author,
			Description: strings.Join(description, " "),
		},
		Body: strings.TrimSpace(body),
	}, nil
}

// ExtractBody returns the inner HTML of a document's body without requiring
// the book structure. Used to render books whose metadata cannot be parsed.
func ExtractBody(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	body, _ := doc.Find("body").Html()
	return strings.TrimSpace(body)
}
