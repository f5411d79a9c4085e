package http

import (
	"errors"
	"strings"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/input"
	"bookshelf/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SessionCookie struct - name and lifetime (seconds) of the session cookie
type SessionCookie struct {
	Name   string
	MaxAge int
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	books     input.BookService
	search    input.SearchService
	health    input.HealthChecker
	validator validator.Validator
	pages     *Pages
	cookie    SessionCookie
}

// New func - Creates new HTTP handler
func New(books input.BookService, search input.SearchService, health input.HealthChecker, cookie SessionCookie) (*HTTPHandler, error) {
	pages, err := NewPages()
	if err != nil {
		return nil, err
	}
	if cookie.Name == "" {
		cookie.Name = "session"
	}
	return &HTTPHandler{
		books:     books,
		search:    search,
		health:    health,
		validator: validator.New(),
		pages:     pages,
		cookie:    cookie,
	}, nil
}

// HealthCheck godoc
// @Summary Health check
// @Description Pings the document store
// @Tags SYSTEM
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.health.Ping(c.UserContext()); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// Index func - catalog listing
func (hdl *HTTPHandler) Index(c *fiber.Ctx) error {
	books, err := hdl.books.ListBooks(c.UserContext())
	if err != nil {
		return hdl.renderError(c, err)
	}
	links := make([]domain.BookLink, 0, len(books))
	for _, book := range books {
		links = append(links, domain.NewBookLink(book))
	}
	return hdl.pages.render(c, fiber.StatusOK, "index", indexPage{Books: links})
}

// GetBook func - book page with recommendations; (re)issues the session cookie
func (hdl *HTTPHandler) GetBook(c *fiber.Ctx) error {
	id, ok := domain.ParseBookID(c.Params("id"))
	if !ok {
		return hdl.renderError(c, domain.ErrNotFound)
	}
	view, err := hdl.books.GetBook(c.UserContext(), hdl.sessionToken(c), id)
	if err != nil {
		return hdl.renderError(c, err)
	}
	hdl.setSessionCookie(c, view.SessionID)
	return hdl.pages.render(c, fiber.StatusOK, "book", newBookPage(view))
}

// SearchBooks func - blank form without criteria, results otherwise
func (hdl *HTTPHandler) SearchBooks(c *fiber.Ctx) error {
	request, err := hdl.parseSearch(c)
	if err != nil {
		return hdl.pages.render(c, fiber.StatusBadRequest, "error", errorPage{Code: fiber.StatusBadRequest, Message: strings.Join(hdl.validator.Messages(err), "; ")})
	}
	page := searchPage{Form: newSearchForm(request)}
	criteria := request.Criteria()
	if criteria.IsEmpty() {
		return hdl.pages.render(c, fiber.StatusOK, "search", page)
	}

	books, err := hdl.search.Search(c.UserContext(), criteria)
	if err != nil {
		return hdl.renderError(c, err)
	}
	page.Searched = true
	for _, book := range books {
		page.Results = append(page.Results, newBookResponse(book))
	}
	return hdl.pages.render(c, fiber.StatusOK, "search", page)
}

// SearchBooksAPI godoc
// @Summary Search books
// @Description Case-insensitive substring search over title, author and description. Without parameters every book is returned.
// @Tags BOOK
// @Produce json
// @Param title query string false "title fragment"
// @Param author query string false "author fragment"
// @Param description query string false "description fragment"
// @Success 200 {object} ResponseBody{data=SearchResponse}
// @Failure 400 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /v1/api/books/search [get]
func (hdl *HTTPHandler) SearchBooksAPI(c *fiber.Ctx) error {
	request, err := hdl.parseSearch(c)
	if err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = hdl.validator.Messages(err)
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}
	books, err := hdl.search.Search(c.UserContext(), request.Criteria())
	if err != nil {
		return hdl.jsonError(c, err)
	}
	data := SearchResponse{Books: make([]BookResponse, 0, len(books)), Total: len(books)}
	for _, book := range books {
		data.Books = append(data.Books, newBookResponse(book))
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data})
}

// GetRecommendations godoc
// @Summary Book recommendations
// @Description Records the book as read for the session cookie and returns unread suggestions and rereads
// @Tags BOOK
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} ResponseBody{data=RecommendationResponse}
// @Failure 404 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /v1/api/books/{id}/recommendations [get]
func (hdl *HTTPHandler) GetRecommendations(c *fiber.Ctx) error {
	id, ok := domain.ParseBookID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: NotFound})
	}
	session, recommendation, err := hdl.books.Recommend(c.UserContext(), hdl.sessionToken(c), id)
	if err != nil {
		return hdl.jsonError(c, err)
	}
	hdl.setSessionCookie(c, session)
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: RecommendationResponse{
		BookID:      id,
		Suggestions: recommendation.Suggestions,
		Rereads:     recommendation.Rereads,
	}})
}

func (hdl *HTTPHandler) parseSearch(c *fiber.Ctx) (SearchRequest, error) {
	var request SearchRequest
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
		return request, err
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return request, err
	}
	return request, nil
}

func (hdl *HTTPHandler) sessionToken(c *fiber.Ctx) domain.SessionToken {
	// c.Cookies points into the pooled request buffer
	return domain.NewSessionToken(strings.Clone(c.Cookies(hdl.cookie.Name)))
}

func (hdl *HTTPHandler) setSessionCookie(c *fiber.Ctx, session domain.SessionID) {
	c.Cookie(&fiber.Cookie{
		Name:     hdl.cookie.Name,
		Value:    string(session),
		Path:     "/",
		MaxAge:   hdl.cookie.MaxAge,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (hdl *HTTPHandler) renderError(c *fiber.Ctx, err error) error {
	status, body := classify(err)
	return hdl.pages.render(c, status.Code, "error", errorPage{Code: status.Code, Message: body})
}

func (hdl *HTTPHandler) jsonError(c *fiber.Ctx, err error) error {
	status, _ := classify(err)
	return c.Status(status.Code).JSON(ResponseBody{Status: status})
}

// classify maps application errors to a response status; only
// infrastructure failures are logged as errors
func classify(err error) (Status, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return NotFound, "Not Found"
	case errors.Is(err, domain.ErrStoreUnavailable):
		logrus.Errorln(err)
		return ServiceUnavailable, "Service Unavailable"
	default:
		logrus.Errorln(err)
		return InternalServerError, "Internal Server Error"
	}
}
