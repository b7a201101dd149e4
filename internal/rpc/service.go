package rpc

import (
	"context"

	"github.com/umalmyha/poscustomers/internal/model"
	"google.golang.org/grpc"
)

const (
	// AuthServiceName is full name of auth service
	AuthServiceName = "pos.AuthService"
	// CustomerServiceName is full name of customer service
	CustomerServiceName = "pos.CustomerService"
)

// AuthServiceServer is the server API for auth service
type AuthServiceServer interface {
	Login(context.Context, *LoginRequest) (*SessionResponse, error)
	Signup(context.Context, *SignupRequest) (*SessionResponse, error)
	Logout(context.Context, *Empty) (*Empty, error)
}

// CustomerServiceServer is the server API for customer service
type CustomerServiceServer interface {
	List(context.Context, *ListCustomersRequest) (*CustomerListResponse, error)
	Get(context.Context, *CustomerIDRequest) (*model.Customer, error)
	Create(context.Context, *CustomerRequest) (*model.Customer, error)
	Update(context.Context, *UpdateCustomerRequest) (*model.Customer, error)
	Delete(context.Context, *CustomerIDRequest) (*Empty, error)
	Stats(context.Context, *Empty) (*model.CustomerStats, error)
}

// RegisterAuthServiceServer registers auth service implementation
func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&authServiceDesc, srv)
}

// RegisterCustomerServiceServer registers customer service implementation
func RegisterCustomerServiceServer(s grpc.ServiceRegistrar, srv CustomerServiceServer) {
	s.RegisterService(&customerServiceDesc, srv)
}

// unary builds method handler which decodes Req and runs call through interceptor chain
func unary[S any, Req any, Res any](
	service, method string,
	call func(S, context.Context, *Req) (*Res, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + service + "/" + method

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var authServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unary(AuthServiceName, "Login", AuthServiceServer.Login)},
		{MethodName: "Signup", Handler: unary(AuthServiceName, "Signup", AuthServiceServer.Signup)},
		{MethodName: "Logout", Handler: unary(AuthServiceName, "Logout", AuthServiceServer.Logout)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/auth",
}

var customerServiceDesc = grpc.ServiceDesc{
	ServiceName: CustomerServiceName,
	HandlerType: (*CustomerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unary(CustomerServiceName, "List", CustomerServiceServer.List)},
		{MethodName: "Get", Handler: unary(CustomerServiceName, "Get", CustomerServiceServer.Get)},
		{MethodName: "Create", Handler: unary(CustomerServiceName, "Create", CustomerServiceServer.Create)},
		{MethodName: "Update", Handler: unary(CustomerServiceName, "Update", CustomerServiceServer.Update)},
		{MethodName: "Delete", Handler: unary(CustomerServiceName, "Delete", CustomerServiceServer.Delete)},
		{MethodName: "Stats", Handler: unary(CustomerServiceName, "Stats", CustomerServiceServer.Stats)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pos/customer",
}
