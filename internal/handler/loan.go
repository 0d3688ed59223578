package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elovate/library-api/internal/model"
	"github.com/elovate/library-api/pkg/kafka"
)

// CreateLoan godoc
//
//	@Summary	Check out a book for a user (admin only)
//	@Tags		Loans
//	@Security	Bearer
//	@Accept		json
//	@Produce	json
//	@Param		body	body	model.CreateLoanRequest	true	"loan"
//	@Success	201		{object}	model.Loan
//	@Failure	403		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	409		{object}	map[string]string
//	@Router		/loans/creat [post]
func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.loanSvc.CreateLoan(c.Request().Context(), principal(c), req)
	if err != nil {
		return httpError(err)
	}
	h.logLoanEvent(kafka.EventCheckout, loan, req.Username)
	return c.JSON(http.StatusCreated, loan)
}

// ActiveLoans godoc
//
//	@Summary	List open loans
//	@Tags		Loans
//	@Security	Bearer
//	@Produce	json
//	@Success	200	{array}	model.Loan
//	@Router		/loans/active [get]
func (h *Handler) ActiveLoans(c echo.Context) error {
	loans, err := h.loanSvc.ActiveLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// ReturnedLoans godoc
//
//	@Summary	List returned loans
//	@Tags		Loans
//	@Security	Bearer
//	@Produce	json
//	@Success	200	{array}	model.Loan
//	@Router		/loans/deactive [get]
func (h *Handler) ReturnedLoans(c echo.Context) error {
	loans, err := h.loanSvc.ReturnedLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// DeliverLoan godoc
//
//	@Summary	Return a loan (admin only)
//	@Tags		Loans
//	@Security	Bearer
//	@Accept		json
//	@Produce	json
//	@Param		body	body	model.ReturnLoanRequest	true	"loan id"
//	@Success	200		{object}	model.Loan
//	@Failure	403		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	409		{object}	map[string]string
//	@Router		/loans/deliver [post]
func (h *Handler) DeliverLoan(c echo.Context) error {
	var req model.ReturnLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.loanSvc.ReturnLoan(c.Request().Context(), principal(c), req.LoanID)
	if err != nil {
		return httpError(err)
	}
	h.logLoanEvent(kafka.EventReturn, loan, "")
	return c.JSON(http.StatusOK, loan)
}
