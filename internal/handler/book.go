package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elovate/library-api/internal/model"
)

// AddBook godoc
//
//	@Summary	Add a new book
//	@Tags		Books
//	@Accept		json
//	@Produce	json
//	@Param		body	body	model.CreateBookRequest	true	"book"
//	@Success	201		{object}	map[string]int64
//	@Router		/books [post]
func (h *Handler) AddBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.bookSvc.AddBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"book_id": id})
}

// GetBooks godoc
//
//	@Summary	List all books
//	@Tags		Books
//	@Produce	json
//	@Success	200	{array}	model.Book
//	@Router		/books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	books, err := h.bookSvc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
//
//	@Summary	Get a book by id
//	@Tags		Books
//	@Produce	json
//	@Param		id	path	int	true	"book id"
//	@Success	200	{object}	model.Book
//	@Failure	404	{object}	map[string]string
//	@Router		/books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// UpdateBook godoc
//
//	@Summary	Partially update a book
//	@Tags		Books
//	@Accept		json
//	@Param		id		path	int					true	"book id"
//	@Param		body	body	model.BookUpdate	true	"fields to change"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/books/{id} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var upd model.BookUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&upd); err != nil {
		return err
	}

	if err := h.bookSvc.UpdateBook(c.Request().Context(), id, upd); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteBook godoc
//
//	@Summary	Delete a book and cascade its loans
//	@Tags		Books
//	@Param		id	path	int	true	"book id"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.bookSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
