package handlers

import (
	"context"
	"time"

	"github.com/umalmyha/poscustomers/internal/model"
	"github.com/umalmyha/poscustomers/internal/rpc"
	"github.com/umalmyha/poscustomers/internal/service"
)

// AuthGrpcHandler is gRPC handler for auth endpoint
type AuthGrpcHandler struct {
	authSvc service.AuthService
}

// NewAuthGrpcHandler builds new AuthGrpcHandler
func NewAuthGrpcHandler(authSvc service.AuthService) *AuthGrpcHandler {
	return &AuthGrpcHandler{authSvc: authSvc}
}

// Signup signups new identity
func (h *AuthGrpcHandler) Signup(ctx context.Context, req *rpc.SignupRequest) (*rpc.SessionResponse, error) {
	sess, err := h.authSvc.Signup(ctx, req.Name, req.Email, req.Password, req.ConfirmPassword, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

// Login logins identity
func (h *AuthGrpcHandler) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.SessionResponse, error) {
	sess, err := h.authSvc.Login(ctx, req.Email, req.Password, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return sessionResponse(sess), nil
}

// Logout logouts identity
func (h *AuthGrpcHandler) Logout(ctx context.Context, _ *rpc.Empty) (*rpc.Empty, error) {
	if err := h.authSvc.Logout(ctx); err != nil {
		return nil, err
	}
	return new(rpc.Empty), nil
}

func sessionResponse(sess *model.Session) *rpc.SessionResponse {
	return &rpc.SessionResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		Identity:  sess.Identity,
	}
}

// CustomerGrpcHandler is gRPC handler for customers endpoint
type CustomerGrpcHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerGrpcHandler builds CustomerGrpcHandler
func NewCustomerGrpcHandler(customerSvc service.CustomerService) *CustomerGrpcHandler {
	return &CustomerGrpcHandler{customerSvc: customerSvc}
}

// List lists customers matching search term
func (h *CustomerGrpcHandler) List(ctx context.Context, req *rpc.ListCustomersRequest) (*rpc.CustomerListResponse, error) {
	customers, err := h.customerSvc.Search(ctx, req.Search)
	if err != nil {
		return nil, err
	}
	return &rpc.CustomerListResponse{Customers: customers}, nil
}

// Get gets customer by id
func (h *CustomerGrpcHandler) Get(ctx context.Context, req *rpc.CustomerIDRequest) (*model.Customer, error) {
	return h.customerSvc.FindByID(ctx, req.ID)
}

// Create creates new customer
func (h *CustomerGrpcHandler) Create(ctx context.Context, req *rpc.CustomerRequest) (*model.Customer, error) {
	return h.customerSvc.Create(ctx, req.Fields())
}

// Update updates customer
func (h *CustomerGrpcHandler) Update(ctx context.Context, req *rpc.UpdateCustomerRequest) (*model.Customer, error) {
	return h.customerSvc.Update(ctx, req.ID, req.Fields())
}

// Delete deletes customer by id
func (h *CustomerGrpcHandler) Delete(ctx context.Context, req *rpc.CustomerIDRequest) (*rpc.Empty, error) {
	if err := h.customerSvc.DeleteByID(ctx, req.ID); err != nil {
		return nil, err
	}
	return new(rpc.Empty), nil
}

// Stats returns customer aggregates
func (h *CustomerGrpcHandler) Stats(ctx context.Context, _ *rpc.Empty) (*model.CustomerStats, error) {
	stats, err := h.customerSvc.Aggregates(ctx)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
