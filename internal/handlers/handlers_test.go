package handlers

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/poscustomers/internal/auth"
	apperrors "github.com/umalmyha/poscustomers/internal/errors"
	"github.com/umalmyha/poscustomers/internal/interceptors"
	"github.com/umalmyha/poscustomers/internal/model"
	"github.com/umalmyha/poscustomers/internal/repository"
	"github.com/umalmyha/poscustomers/internal/rpc"
	"github.com/umalmyha/poscustomers/internal/service"
	"github.com/umalmyha/poscustomers/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const grpcConnBufSize = 1024 * 1024

const (
	jwtAlgoEd25519 = "EdDSA"
	jwtIssuerClaim = "test-issuer"
	jwtTimeToLive  = 3 * time.Minute
)

const (
	testName          = "Admin"
	testEmail         = "admin@pos.rw"
	testPassword      = "admin123"
	testSessionCookie = "test-session"
)

const testCustomerJSON = `{
	"name":"Jean Baptiste Uwimana",
	"country":"Rwanda",
	"amount":125000,
	"email":"jean.uwimana@email.rw",
	"phoneNumber":"+250 788 123 456",
	"periodStart":"2024-01-01",
	"periodEnd":"2024-12-31",
	"status":"active"
}`

type handlersTestSuite struct {
	suite.Suite
	app         *echo.Echo
	authSvc     service.AuthService
	customerSvc service.CustomerService
	grpcServer  *grpc.Server
	bufListener *bufconn.Listener
	bufDialer   func(context.Context, string) (net.Conn, error)
}

func (s *handlersTestSuite) SetupSuite() {
	assert := s.Require()

	v, err := validation.New()
	assert.NoError(err, "failed to build validator")

	// create echo app instance
	s.app = echo.New()
	s.app.Validator = v

	// create service dependencies
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	assert.NoError(err, "failed to generate jwt keys")

	method := jwt.GetSigningMethod(jwtAlgoEd25519)
	jwtIssuer := auth.NewJwtIssuer(jwtIssuerClaim, method, jwtTimeToLive, priv)
	jwtValidator := auth.NewJwtValidator(method, pub)

	authenticator, err := auth.NewDemoAuthenticator(testName, testEmail, testPassword)
	assert.NoError(err, "failed to build authenticator")

	s.authSvc = service.NewAuthService(authenticator, jwtIssuer, jwtValidator, repository.NewMemorySessionRepository())
	s.customerSvc = service.NewCustomerService(repository.NewMemoryCustomerRepository())

	// start gRPC server
	s.bufListener = bufconn.Listen(grpcConnBufSize)

	s.grpcServer = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.ErrorUnaryInterceptor(),
			interceptors.AuthUnaryInterceptor(s.authSvc, interceptors.UnaryApplicableForService(rpc.CustomerServiceName)),
			interceptors.ValidatorUnaryInterceptor(v),
		),
	)
	rpc.RegisterAuthServiceServer(s.grpcServer, NewAuthGrpcHandler(s.authSvc))
	rpc.RegisterCustomerServiceServer(s.grpcServer, NewCustomerGrpcHandler(s.customerSvc))

	go func() {
		if err := s.grpcServer.Serve(s.bufListener); err != nil {
			s.T().Logf("gRPC server stopped - %v", err)
		}
	}()

	s.bufDialer = func(context.Context, string) (net.Conn, error) {
		return s.bufListener.Dial()
	}
}

func (s *handlersTestSuite) TearDownSuite() {
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
}

//nolint:funlen // function contains a lot of inlined tests
func (s *handlersTestSuite) TestAuthHTTPHandler() {
	t := s.T()
	require := s.Require()

	var sess session
	authHTTPHandler := NewAuthHTTPHandler(s.authSvc, SessionCookieCfg{Name: testSessionCookie})

	t.Log("signup with wrong payload")
	{
		wrongPayloadJSON := `{"email":"alice@pos.r`
		c, _ := s.echoPostContext("/api/auth/signup", wrongPayloadJSON)
		err := authHTTPHandler.Signup(c)
		require.Error(err, "wrong payload has been provided but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
	}

	t.Log("signup with invalid data sent in payload")
	{
		invalidJSON := `{"name":"Alice","email":"alice.pos.rw","password":"pwd"}`
		c, _ := s.echoPostContext("/api/auth/signup", invalidJSON)
		err := authHTTPHandler.Signup(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
		require.ElementsMatch([]string{"email", "confirmPassword"}, err.(*validation.PayloadError).Fields())
	}

	t.Log("signup with mismatched password confirmation")
	{
		mismatchJSON := `{"name":"Alice","email":"alice@pos.rw","password":"one","confirmPassword":"two"}`
		c, _ := s.echoPostContext("/api/auth/signup", mismatchJSON)
		err := authHTTPHandler.Signup(c)
		require.IsType(&apperrors.AuthErr{}, err, "error must be auth error")
	}

	t.Log("successful signup")
	{
		signupJSON := `{"name":"Alice","email":"alice@pos.rw","password":"pwd","confirmPassword":"pwd"}`
		c, rec := s.echoPostContext("/api/auth/signup", signupJSON)
		err := authHTTPHandler.Signup(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")
	}

	t.Log("login with invalid data in payload")
	{
		invalidJSON := `{"email":"","password":""}`
		c, _ := s.echoPostContext("/api/auth/login", invalidJSON)
		err := authHTTPHandler.Login(c)
		require.Error(err, "wrong data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("login with wrong password")
	{
		wrongCredsJSON := fmt.Sprintf(`{"email":%q,"password":"wrong"}`, testEmail)
		c, _ := s.echoPostContext("/api/auth/login", wrongCredsJSON)
		err := authHTTPHandler.Login(c)
		require.ErrorIs(err, auth.ErrInvalidCredentials, "it must be invalid credentials error")
	}

	t.Log("successful login")
	{
		loginJSON := fmt.Sprintf(`{"email":%q,"password":%q}`, testEmail, testPassword)
		c, rec := s.echoPostContext("/api/auth/login", loginJSON)
		err := authHTTPHandler.Login(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

		err = json.NewDecoder(rec.Body).Decode(&sess)
		require.NoError(err, "failed to parse session from response")
		require.Equal(model.Identity{Name: testName, Email: testEmail}, sess.Identity)

		cookies := rec.Result().Cookies()
		require.Len(cookies, 1, "session cookie must be set")
		require.Equal(testSessionCookie, cookies[0].Name)
		require.Equal(sess.Token, cookies[0].Value)
		require.True(cookies[0].HttpOnly, "session cookie must be http only")
	}

	t.Log("current identity")
	{
		c, rec := s.echoGetContext("/api/auth/me")
		err := authHTTPHandler.Me(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")
		require.Contains(rec.Body.String(), testEmail)
	}

	t.Log("successful logout")
	{
		c, rec := s.echoPostContext("/api/auth/logout", "")
		err := authHTTPHandler.Logout(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code, "response status code must be No Content")

		cookies := rec.Result().Cookies()
		require.Len(cookies, 1, "session cookie must be cleared")
		require.Equal("", cookies[0].Value)
	}

	t.Log("identity is unset after logout")
	{
		c, _ := s.echoGetContext("/api/auth/me")
		err := authHTTPHandler.Me(c)
		require.IsType(&apperrors.AuthErr{}, err, "error must be auth error")
	}
}

//nolint:funlen // function contains a lot of inlined tests
func (s *handlersTestSuite) TestCustomerHTTPHandler() {
	t := s.T()
	require := s.Require()

	var customer model.Customer
	customerHTTPHandler := NewCustomerHTTPHandler(s.customerSvc)

	t.Log("create customer with wrong payload")
	{
		c, _ := s.echoPostContext("/api/customers", `{"name":`)
		err := customerHTTPHandler.Post(c)
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
	}

	t.Log("create customer with invalid data in payload")
	{
		invalidJSON := `{"name":"","country":"Rwanda","amount":-5,"email":"nope","phoneNumber":"1","periodStart":"2024/01/01","periodEnd":"2024-12-31","status":"pending"}`
		c, _ := s.echoPostContext("/api/customers", invalidJSON)
		err := customerHTTPHandler.Post(c)
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
		require.ElementsMatch(
			[]string{"name", "amount", "email", "periodStart", "status"},
			err.(*validation.PayloadError).Fields(),
		)
	}

	t.Log("create customer")
	{
		c, rec := s.echoPostContext("/api/customers", testCustomerJSON)
		err := customerHTTPHandler.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusCreated, rec.Code, "response status code must be Created")

		err = json.NewDecoder(rec.Body).Decode(&customer)
		require.NoError(err, "failed to parse customer from response")
		require.NotEmpty(customer.ID, "id must be generated")
	}

	t.Log("get customer")
	{
		c, rec := s.echoGetContextWithID("/api/customers/:id", customer.ID)
		err := customerHTTPHandler.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")
	}

	t.Log("get missing customer")
	{
		c, _ := s.echoGetContextWithID("/api/customers/:id", "missing")
		err := customerHTTPHandler.Get(c)
		require.IsType(&apperrors.EntryNotFoundErr{}, err, "error must be not found error")
	}

	t.Log("update customer")
	{
		updateJSON := strings.Replace(testCustomerJSON, `"status":"active"`, `"status":"inactive"`, 1)
		c, rec := s.echoPutContext("/api/customers/:id", customer.ID, updateJSON)
		err := customerHTTPHandler.Put(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

		var updated model.Customer
		err = json.NewDecoder(rec.Body).Decode(&updated)
		require.NoError(err, "failed to parse customer from response")
		require.Equal(customer.ID, updated.ID, "id must not change")
		require.Equal(model.StatusInactive, updated.Status)
	}

	t.Log("update ignores id sent in payload")
	{
		c, rec := s.echoPostContext("/api/customers", strings.Replace(testCustomerJSON, "Jean Baptiste Uwimana", "Other Customer", 1))
		err := customerHTTPHandler.Post(c)
		require.NoError(err, "no error must be raised")

		var other model.Customer
		err = json.NewDecoder(rec.Body).Decode(&other)
		require.NoError(err, "failed to parse customer from response")

		updateJSON := strings.Replace(testCustomerJSON, `"name":"Jean Baptiste Uwimana"`, fmt.Sprintf(`"id":%q,"name":"Edited"`, other.ID), 1)
		updateJSON = strings.Replace(updateJSON, `"status":"active"`, `"status":"inactive"`, 1)
		c, rec = s.echoPutContext("/api/customers/:id", customer.ID, updateJSON)
		err = customerHTTPHandler.Put(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

		edited, err := s.customerSvc.FindByID(context.Background(), customer.ID)
		require.NoError(err, "customer from path must exist")
		require.Equal("Edited", edited.Name, "customer from path must be updated")

		untouched, err := s.customerSvc.FindByID(context.Background(), other.ID)
		require.NoError(err, "customer from payload must exist")
		require.Equal("Other Customer", untouched.Name, "customer from payload must stay untouched")

		err = s.customerSvc.DeleteByID(context.Background(), other.ID)
		require.NoError(err, "no error must be raised")
	}

	t.Log("update missing customer")
	{
		c, _ := s.echoPutContext("/api/customers/:id", "missing", testCustomerJSON)
		err := customerHTTPHandler.Put(c)
		require.IsType(&apperrors.EntryNotFoundErr{}, err, "error must be not found error")
	}

	t.Log("search customers")
	{
		c, rec := s.echoGetContext("/api/customers?search=UWIMANA")
		err := customerHTTPHandler.GetAll(c)
		require.NoError(err, "no error must be raised")

		var found []model.Customer
		err = json.NewDecoder(rec.Body).Decode(&found)
		require.NoError(err, "failed to parse customers from response")
		require.Len(found, 1)
	}

	t.Log("customer statistics")
	{
		c, rec := s.echoGetContext("/api/customers/stats")
		err := customerHTTPHandler.Stats(c)
		require.NoError(err, "no error must be raised")

		var stats model.CustomerStats
		err = json.NewDecoder(rec.Body).Decode(&stats)
		require.NoError(err, "failed to parse stats from response")
		require.Equal(model.CustomerStats{Count: 1, ActiveCount: 0, TotalAmount: 125000, DistinctCountryCount: 1}, stats)
	}

	t.Log("delete customer")
	{
		c, rec := s.echoDeleteContext("/api/customers/:id", customer.ID)
		err := customerHTTPHandler.DeleteByID(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code, "response status code must be No Content")
	}

	t.Log("delete customer twice")
	{
		c, _ := s.echoDeleteContext("/api/customers/:id", customer.ID)
		err := customerHTTPHandler.DeleteByID(c)
		require.IsType(&apperrors.EntryNotFoundErr{}, err, "error must be not found error")
	}
}

func (s *handlersTestSuite) TestDashboardHTTPHandler() {
	t := s.T()
	require := s.Require()

	dashboardHandler := NewDashboardHTTPHandler(s.customerSvc, testEmail, testPassword)

	t.Log("login entry point shows demo hint")
	{
		c, rec := s.echoGetContext("/login")
		err := dashboardHandler.Login(c)
		require.NoError(err, "no error must be raised")
		require.Contains(rec.Body.String(), "Demo credentials: admin@pos.rw / admin123")
	}

	t.Log("dashboard without identity redirects to login")
	{
		c, rec := s.echoGetContext("/dashboard")
		err := dashboardHandler.Dashboard(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusFound, rec.Code, "response status code must be Found")
		require.Equal("/login", rec.Header().Get(echo.HeaderLocation))
	}

	t.Log("dashboard with search term nothing matches")
	{
		c, rec := s.echoGetContext("/dashboard?search=nobody-matches-this")
		c.Set("identity", &model.Identity{Name: testName, Email: testEmail})
		err := dashboardHandler.Dashboard(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status code must be OK")

		var view dashboard
		err = json.NewDecoder(rec.Body).Decode(&view)
		require.NoError(err, "failed to parse dashboard from response")
		require.Empty(view.Customers)
		require.Equal("No customers found matching your search.", view.Message)
		require.Equal("nobody-matches-this", view.Search)
	}
}

func (s *handlersTestSuite) TestFormatting() {
	require := s.Require()
	dashboardHandler := NewDashboardHTTPHandler(s.customerSvc, testEmail, testPassword)

	require.Equal("RWF 125,000", dashboardHandler.formatAmount(125000))
	require.Equal("RWF 0", dashboardHandler.formatAmount(0))
	require.Equal("RWF 1,234.5", dashboardHandler.formatAmount(1234.5))
	require.Equal("Jan 1, 2024", formatDate("2024-01-01"))
	require.Equal("Dec 31, 2024", formatDate("2024-12-31"))
	require.Equal("not-a-date", formatDate("not-a-date"))
}

func (s *handlersTestSuite) TestAuthGrpcHandler() {
	t := s.T()
	require := s.Require()

	ctx := context.Background()
	conn, err := grpc.DialContext(ctx, "bufnet", grpc.WithContextDialer(s.bufDialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(err, "failed to create gRPC connection")
	defer conn.Close()

	client := rpc.NewAuthServiceClient(conn)

	t.Log("login with wrong credentials")
	_, err = client.Login(ctx, &rpc.LoginRequest{Email: testEmail, Password: "wrong"})
	require.Equal(codes.Unauthenticated, status.Code(err), "code must be unauthenticated")

	t.Log("login with invalid request")
	_, err = client.Login(ctx, &rpc.LoginRequest{Email: testEmail})
	require.Equal(codes.InvalidArgument, status.Code(err), "code must be invalid argument")

	t.Log("signup with mismatched password confirmation")
	_, err = client.Signup(ctx, &rpc.SignupRequest{Name: "Bob", Email: "bob@pos.rw", Password: "one", ConfirmPassword: "two"})
	require.Equal(codes.Unauthenticated, status.Code(err), "code must be unauthenticated")

	t.Log("successful signup")
	sess, err := client.Signup(ctx, &rpc.SignupRequest{Name: "Bob", Email: "bob@pos.rw", Password: "pwd", ConfirmPassword: "pwd"})
	require.NoError(err, "no error must be raised")
	require.Equal("bob@pos.rw", sess.Identity.Email)

	t.Log("login with demo credentials")
	sess, err = client.Login(ctx, &rpc.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(err, "no error must be raised")
	require.NotEmpty(sess.Token, "access token must be issued")

	t.Log("logout")
	_, err = client.Logout(ctx, new(rpc.Empty))
	require.NoError(err, "no error must be raised")
}

//nolint:funlen // function contains a lot of inlined tests
func (s *handlersTestSuite) TestCustomerGrpcHandler() {
	t := s.T()
	require := s.Require()

	ctx := context.Background()
	conn, err := grpc.DialContext(ctx, "bufnet", grpc.WithContextDialer(s.bufDialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(err, "failed to create gRPC connection")
	defer conn.Close()

	authClient := rpc.NewAuthServiceClient(conn)
	client := rpc.NewCustomerServiceClient(conn)

	t.Log("list customers without access token")
	_, err = client.List(ctx, new(rpc.ListCustomersRequest))
	require.Equal(codes.Unauthenticated, status.Code(err), "code must be unauthenticated")

	t.Log("create invalid customer without access token")
	_, err = client.Create(ctx, &rpc.CustomerRequest{Status: "pending"})
	require.Equal(codes.Unauthenticated, status.Code(err), "access token must be checked before payload")

	sess, err := authClient.Login(ctx, &rpc.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(err, "no error must be raised")
	authCtx := metadata.AppendToOutgoingContext(ctx, rpc.AccessTokenMetadataKey, sess.Token)

	newCustomer := rpc.CustomerRequest{
		Name:        "Agnes Niyonzima",
		Country:     "Rwanda",
		Amount:      203000,
		Email:       "agnes.niyonzima@email.rw",
		PhoneNumber: "+250 785 111 222",
		PeriodStart: "2024-01-15",
		PeriodEnd:   "2024-12-31",
		Status:      model.StatusActive,
	}

	t.Log("create customer with invalid request")
	invalid := newCustomer
	invalid.Status = "pending"
	_, err = client.Create(authCtx, &invalid)
	require.Equal(codes.InvalidArgument, status.Code(err), "code must be invalid argument")

	t.Log("create customer")
	created, err := client.Create(authCtx, &newCustomer)
	require.NoError(err, "no error must be raised")
	require.NotEmpty(created.ID, "id must be generated")
	require.Equal("Agnes Niyonzima", created.Name)

	t.Log("update customer")
	update := newCustomer
	update.Amount = 1000
	updated, err := client.Update(authCtx, &rpc.UpdateCustomerRequest{ID: created.ID, CustomerRequest: update})
	require.NoError(err, "no error must be raised")
	require.Equal(float64(1000), updated.Amount)

	t.Log("get recently created customer")
	c, err := client.Get(authCtx, &rpc.CustomerIDRequest{ID: created.ID})
	require.NoError(err, "no error must be raised")
	require.Equal(created.ID, c.ID, "incorrect customer was returned")

	t.Log("search customers")
	list, err := client.List(authCtx, &rpc.ListCustomersRequest{Search: "niyonzima"})
	require.NoError(err, "no error must be raised")
	require.Len(list.Customers, 1)

	t.Log("customer statistics")
	stats, err := client.Stats(authCtx, new(rpc.Empty))
	require.NoError(err, "no error must be raised")
	require.GreaterOrEqual(stats.Count, 1)

	t.Log("delete customer by id")
	_, err = client.Delete(authCtx, &rpc.CustomerIDRequest{ID: created.ID})
	require.NoError(err, "no error must be raised")

	t.Log("get deleted customer")
	_, err = client.Get(authCtx, &rpc.CustomerIDRequest{ID: created.ID})
	require.Equal(codes.NotFound, status.Code(err), "code must be not found")

	t.Log("access token is rejected after logout")
	_, err = authClient.Logout(ctx, new(rpc.Empty))
	require.NoError(err, "no error must be raised")
	_, err = client.List(authCtx, new(rpc.ListCustomersRequest))
	require.Equal(codes.Unauthenticated, status.Code(err), "code must be unauthenticated")
}

func (s *handlersTestSuite) echoPostContext(target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoGetContextWithID(target, id string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := s.echoGetContext(target)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *handlersTestSuite) echoDeleteContext(target, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodDelete, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *handlersTestSuite) echoPutContext(target, id, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
