package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/elovate/library-api/internal/model"
)

// CreateUser godoc
//
//	@Summary	Create a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		body	body	model.CreateUserRequest	true	"user"
//	@Success	201		{object}	map[string]int64
//	@Router		/users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.userSvc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{array}	model.UserResponse
//	@Router		/users [get]
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userSvc.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
//
//	@Summary	Partially update a user
//	@Tags		Users
//	@Accept		json
//	@Param		id		path	int					true	"user id"
//	@Param		body	body	model.UserUpdate	true	"fields to change"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/users/{id} [put]
func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var upd model.UserUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&upd); err != nil {
		return err
	}

	if err := h.userSvc.UpdateUser(c.Request().Context(), id, upd); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteUser godoc
//
//	@Summary	Delete a user and cascade its loans
//	@Tags		Users
//	@Param		id	path	int	true	"user id"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/users/{id} [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.userSvc.DeleteUser(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}
