package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/poscustomers/internal/model"
	"github.com/umalmyha/poscustomers/internal/service"
)

const identityCtxKey = "identity"

const (
	// LoginPath is the login entry point
	LoginPath = "/login"
	// DashboardPath is the page available only for signed-in identity
	DashboardPath = "/dashboard"
)

// Authorize verifies that access token of the live session is provided in Authorization header or session cookie
func Authorize(authSvc service.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := accessToken(c, cookieName)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token is missing")
			}

			identity, err := authSvc.Verify(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(identityCtxKey, identity)
			return next(c)
		}
	}
}

// RequireIdentity redirects to login entry point when nobody is signed in
func RequireIdentity(authSvc service.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := signedIn(c, authSvc, cookieName)
			if !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			c.Set(identityCtxKey, identity)
			return next(c)
		}
	}
}

// RedirectAuthenticated redirects away from login entry point when identity is already signed in
func RedirectAuthenticated(authSvc service.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := signedIn(c, authSvc, cookieName); ok {
				return c.Redirect(http.StatusFound, DashboardPath)
			}
			return next(c)
		}
	}
}

// IdentityFrom returns identity stored by Authorize or RequireIdentity
func IdentityFrom(c echo.Context) (*model.Identity, bool) {
	identity, ok := c.Get(identityCtxKey).(*model.Identity)
	return identity, ok
}

func signedIn(c echo.Context, authSvc service.AuthService, cookieName string) (*model.Identity, bool) {
	token, ok := accessToken(c, cookieName)
	if !ok {
		return nil, false
	}

	identity, err := authSvc.Verify(c.Request().Context(), token)
	if err != nil {
		return nil, false
	}
	return identity, true
}

func accessToken(c echo.Context, cookieName string) (string, bool) {
	if authHdr := c.Request().Header.Get(echo.HeaderAuthorization); authHdr != "" {
		hdrSplit := strings.Split(authHdr, " ")
		if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], "Bearer") {
			return "", false
		}
		return hdrSplit[1], true
	}

	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
