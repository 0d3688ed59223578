package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/elovate/library-api/internal/errs"
	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/pkg/auth"
	md "github.com/elovate/library-api/pkg/middleware"
	"github.com/elovate/library-api/pkg/validate"
	_ "github.com/elovate/library-api/swagger"
)

type Services struct {
	Auth AuthService
	User UserService
	Book BookService
	Loan LoanService
}

type Handler struct {
	authSvc AuthService
	userSvc UserService
	bookSvc BookService
	loanSvc LoanService
	stats   StatsLog
	log     *zap.Logger
}

func New(svcs Services, stats StatsLog, log *zap.Logger) *Handler {
	h := &Handler{
		authSvc: svcs.Auth,
		userSvc: svcs.User,
		bookSvc: svcs.Book,
		loanSvc: svcs.Loan,
		stats:   stats,
		log:     log,
	}
	return h
}

// NewRouter keeps the original API paths (including /loans/creat and
// /loans/deactive) for wire compatibility.
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = errs.NewHTTPErrorHandler(h.log)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/manage/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
	)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.ListUsers)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.POST("/books", h.AddBook)
	api.GET("/books", h.GetBooks)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	authed := api.Group("", h.authenticate)
	authed.GET("/who_am_i", h.WhoAmI)
	authed.POST("/loans/creat", h.CreateLoan)
	authed.GET("/loans/active", h.ActiveLoans)
	authed.GET("/loans/deactive", h.ReturnedLoans)
	authed.POST("/loans/deliver", h.DeliverLoan)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

const principalKey = "principal"

// authenticate resolves the bearer token to an existing user and stores
// the principal on the request; handlers pass it explicitly into services.
func (h *Handler) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(auth.AuthorizationHeader)
		if authorization == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization Header")
		}
		if !strings.HasPrefix(authorization, auth.Bearer) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization Header")
		}
		token := strings.TrimPrefix(authorization, auth.Bearer)

		user, err := h.authSvc.Authenticate(c.Request().Context(), token)
		if err != nil {
			return httpError(err)
		}
		c.Set(principalKey, user)
		return next(c)
	}
}

func principal(c echo.Context) model.User {
	user, _ := c.Get(principalKey).(model.User)
	return user
}

func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(errs.Status(err), err.Error())
}
