package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/poscustomers/internal/middleware"
	"github.com/umalmyha/poscustomers/internal/model"
	"github.com/umalmyha/poscustomers/internal/service"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	currencyCode      = "RWF"
	displayDateLayout = "Jan 2, 2006"
	noCustomersFound  = "No customers found matching your search."
)

type loginEntry struct {
	Entry    string `json:"entry"`
	DemoHint string `json:"demoHint"`
}

type customerRow struct {
	*model.Customer
	FormattedAmount      string `json:"formattedAmount"`
	FormattedPeriodStart string `json:"formattedPeriodStart"`
	FormattedPeriodEnd   string `json:"formattedPeriodEnd"`
}

type dashboard struct {
	Identity             model.Identity      `json:"identity"`
	Search               string              `json:"search"`
	Stats                model.CustomerStats `json:"stats"`
	FormattedTotalAmount string              `json:"formattedTotalAmount"`
	Customers            []customerRow       `json:"customers"`
	Message              string              `json:"message,omitempty"`
}

// DashboardHTTPHandler serves login entry point and dashboard view
type DashboardHTTPHandler struct {
	customerSvc service.CustomerService
	demoHint    string
	printer     *message.Printer
}

// NewDashboardHTTPHandler builds new DashboardHTTPHandler
func NewDashboardHTTPHandler(customerSvc service.CustomerService, demoEmail, demoPassword string) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{
		customerSvc: customerSvc,
		demoHint:    fmt.Sprintf("Demo credentials: %s / %s", demoEmail, demoPassword),
		printer:     message.NewPrinter(language.English),
	}
}

// Login shows login entry point
// @Summary     Login entry point
// @Description Redirects to dashboard when identity is already signed in
// @Tags        gate
// @Produce     json
// @Success     200    {object} loginEntry
// @Success     302    "Redirect to dashboard"
// @Router      /login [get]
func (h *DashboardHTTPHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, &loginEntry{
		Entry:    "login",
		DemoHint: h.demoHint,
	})
}

// Dashboard shows customer management view
// @Summary     Dashboard
// @Description Returns statistics and customers matching search term, redirects to login when signed out
// @Tags        gate
// @Produce     json
// @Param       search query    string false "Search term"
// @Success     200    {object} dashboard
// @Success     302    "Redirect to login"
// @Router      /dashboard [get]
func (h *DashboardHTTPHandler) Dashboard(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	var s search
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	stats, err := h.customerSvc.Aggregates(ctx)
	if err != nil {
		return err
	}

	customers, err := h.customerSvc.Search(ctx, s.Term)
	if err != nil {
		return err
	}

	rows := make([]customerRow, 0, len(customers))
	for _, cust := range customers {
		rows = append(rows, customerRow{
			Customer:             cust,
			FormattedAmount:      h.formatAmount(cust.Amount),
			FormattedPeriodStart: formatDate(cust.PeriodStart),
			FormattedPeriodEnd:   formatDate(cust.PeriodEnd),
		})
	}

	view := &dashboard{
		Identity:             *identity,
		Search:               s.Term,
		Stats:                stats,
		FormattedTotalAmount: h.formatAmount(stats.TotalAmount),
		Customers:            rows,
	}

	if len(rows) == 0 {
		view.Message = noCustomersFound
	}

	return c.JSON(http.StatusOK, view)
}

func (h *DashboardHTTPHandler) formatAmount(amount float64) string {
	return h.printer.Sprintf("%s %v", currencyCode, number.Decimal(amount, number.MaxFractionDigits(2)))
}

// formatDate leaves value untouched when it isn't a valid date
func formatDate(value string) string {
	d, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return value
	}
	return d.Format(displayDateLayout)
}
