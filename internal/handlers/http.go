package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/poscustomers/internal/model"
	"github.com/umalmyha/poscustomers/internal/service"
)

type session struct {
	Token     string         `json:"accessToken"`
	ExpiresAt int64          `json:"expiresAt"`
	Identity  model.Identity `json:"identity"`
}

type login struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signup struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// SessionCookieCfg describes cookie which carries access token for browser clients
type SessionCookieCfg struct {
	Name   string
	Secure bool
}

// AuthHTTPHandler is http handler for auth endpoint
type AuthHTTPHandler struct {
	authSvc   service.AuthService
	cookieCfg SessionCookieCfg
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService, cookieCfg SessionCookieCfg) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		authSvc:   authSvc,
		cookieCfg: cookieCfg,
	}
}

// Signup signups new identity
// @Summary     Signup new account
// @Description Starts session for new identity, account isn't stored
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       signup body	    signup true "New account data"
// @Success     200    {object} session
// @Failure     400    {object} validation.PayloadError
// @Failure     401    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/signup [post]
func (h *AuthHTTPHandler) Signup(c echo.Context) error {
	var su signup
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	sess, err := h.authSvc.Signup(c.Request().Context(), su.Name, su.Email, su.Password, su.ConfirmPassword, time.Now().UTC())
	if err != nil {
		return err
	}

	return h.sessionResponse(c, sess)
}

// Login logins identity
// @Summary     Login
// @Description Verifies provided credentials and starts session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login  body	    login true "Credentials"
// @Success     200    {object} session
// @Failure     400    {object} validation.PayloadError
// @Failure     401    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	sess, err := h.authSvc.Login(c.Request().Context(), lgn.Email, lgn.Password, time.Now().UTC())
	if err != nil {
		return err
	}

	return h.sessionResponse(c, sess)
}

// Logout logouts identity
// @Summary     Logout
// @Description Clears current identity unconditionally
// @Tags        auth
// @Success     204    "Successful status code"
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/logout [post]
func (h *AuthHTTPHandler) Logout(c echo.Context) error {
	if err := h.authSvc.Logout(c.Request().Context()); err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.NoContent(http.StatusNoContent)
}

// Me returns current identity
// @Summary     Current identity
// @Description Returns signed-in identity
// @Tags        auth
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {object} model.Identity
// @Failure     401    {object} echo.HTTPError
// @Router      /api/auth/me [get]
func (h *AuthHTTPHandler) Me(c echo.Context) error {
	identity, err := h.authSvc.Identity(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

func (h *AuthHTTPHandler) sessionResponse(c echo.Context, sess *model.Session) error {
	maxAge := int(time.Until(time.Unix(sess.ExpiresAt, 0)).Seconds())
	c.SetCookie(h.sessionCookie(sess.Token, maxAge))

	return c.JSON(http.StatusOK, &session{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		Identity:  sess.Identity,
	})
}

func (h *AuthHTTPHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieCfg.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

type identifier struct {
	ID string `param:"id" validate:"required"`
}

type search struct {
	Term string `query:"search"`
}

type customerPayload struct {
	Name        string       `json:"name" validate:"required"`
	Country     string       `json:"country" validate:"required"`
	Amount      float64      `json:"amount" validate:"gte=0"`
	Email       string       `json:"email" validate:"required,email"`
	PhoneNumber string       `json:"phoneNumber" validate:"required"`
	PeriodStart string       `json:"periodStart" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string       `json:"periodEnd" validate:"required,datetime=2006-01-02"`
	Status      model.Status `json:"status" validate:"required,oneof=active inactive"`
}

func (p customerPayload) fields() model.CustomerFields {
	return model.CustomerFields{
		Name:        p.Name,
		Country:     p.Country,
		Amount:      p.Amount,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		Status:      p.Status,
	}
}

type updateCustomer struct {
	ID string `json:"-" param:"id" validate:"required"`
	customerPayload
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id, used to pre-fill edit form
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer id"
// @Success     200    {object} model.Customer
// @Failure     401    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := identifier{ID: c.Param("id")}
	if err := c.Validate(&id); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// GetAll gets customers matching search term
// @Summary     Get customers
// @Description Returns customers in insertion order, search matches name, email or country ignoring case
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       search query    string false "Search term"
// @Success     200    {array}  model.Customer
// @Failure     401    {object} echo.HTTPError
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	var s search
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customers, err := h.customerSvc.Search(c.Request().Context(), s.Term)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Stats gets customer aggregates
// @Summary     Customer statistics
// @Description Returns count, active count, total amount and number of distinct countries
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {object} model.CustomerStats
// @Failure     401    {object} echo.HTTPError
// @Router      /api/customers/stats [get]
func (h *CustomerHTTPHandler) Stats(c echo.Context) error {
	stats, err := h.customerSvc.Aggregates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Post creates new customer
// @Summary     New Customer
// @Description Creates new customer and appends it to the end of collection
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param 		customerPayload body	 customerPayload true "Data for new customer"
// @Success     201    		    {object} model.Customer
// @Failure     400    		    {object} validation.PayloadError
// @Failure     401    		    {object} echo.HTTPError
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc customerPayload
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), nc.fields())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// Put updates customer
// @Summary     Update Customer
// @Description Replaces every customer field except id
// @Tags        customers
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id     		    path 	 string 		 true "Customer id"
// @Param 		customerPayload body	 customerPayload true "Customer data"
// @Success     200    		    {object} model.Customer
// @Failure     400    		    {object} validation.PayloadError
// @Failure     401    		    {object} echo.HTTPError
// @Failure     404    		    {object} echo.HTTPError
// @Router      /api/customers/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	var uc updateCustomer
	if err := c.Bind(&uc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&uc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Update(c.Request().Context(), uc.ID, uc.fields())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id
// @Tags        customers
// @Security	ApiKeyAuth
// @Param       id     path 	string true "Customer id"
// @Success     204    "Successful status code"
// @Failure     401    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id := identifier{ID: c.Param("id")}
	if err := c.Validate(&id); err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
