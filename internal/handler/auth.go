package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elovate/library-api/internal/model"
)

// Register godoc
//
//	@Summary	Register a new user
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body	model.RegisterRequest	true	"credentials"
//	@Success	201		{object}	map[string]int64
//	@Router		/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.authSvc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Login godoc
//
//	@Summary	Log in with username and password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body	model.LoginRequest	true	"credentials"
//	@Success	200		{object}	model.TokenResponse
//	@Failure	401		{object}	map[string]string
//	@Router		/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.TokenResponse{UserToken: token})
}

// WhoAmI godoc
//
//	@Summary	Current user info
//	@Tags		Auth
//	@Security	Bearer
//	@Produce	json
//	@Success	200	{object}	model.UserResponse
//	@Router		/who_am_i [get]
func (h *Handler) WhoAmI(c echo.Context) error {
	user := principal(c)
	return c.JSON(http.StatusOK, model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
