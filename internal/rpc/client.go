package rpc

import (
	"context"

	"github.com/umalmyha/poscustomers/internal/model"
	"google.golang.org/grpc"
)

// AccessTokenMetadataKey is metadata key of access token
const AccessTokenMetadataKey = "accesstoken"

// AuthServiceClient is the client API for auth service
type AuthServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthServiceClient builds auth service client
func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc: cc}
}

func (c *authServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, AuthServiceName, "Login", in, opts)
}

func (c *authServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, AuthServiceName, "Signup", in, opts)
}

func (c *authServiceClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, AuthServiceName, "Logout", in, opts)
}

// CustomerServiceClient is the client API for customer service
type CustomerServiceClient interface {
	List(ctx context.Context, in *ListCustomersRequest, opts ...grpc.CallOption) (*CustomerListResponse, error)
	Get(ctx context.Context, in *CustomerIDRequest, opts ...grpc.CallOption) (*model.Customer, error)
	Create(ctx context.Context, in *CustomerRequest, opts ...grpc.CallOption) (*model.Customer, error)
	Update(ctx context.Context, in *UpdateCustomerRequest, opts ...grpc.CallOption) (*model.Customer, error)
	Delete(ctx context.Context, in *CustomerIDRequest, opts ...grpc.CallOption) (*Empty, error)
	Stats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*model.CustomerStats, error)
}

type customerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCustomerServiceClient builds customer service client
func NewCustomerServiceClient(cc grpc.ClientConnInterface) CustomerServiceClient {
	return &customerServiceClient{cc: cc}
}

func (c *customerServiceClient) List(ctx context.Context, in *ListCustomersRequest, opts ...grpc.CallOption) (*CustomerListResponse, error) {
	return invoke[CustomerListResponse](ctx, c.cc, CustomerServiceName, "List", in, opts)
}

func (c *customerServiceClient) Get(ctx context.Context, in *CustomerIDRequest, opts ...grpc.CallOption) (*model.Customer, error) {
	return invoke[model.Customer](ctx, c.cc, CustomerServiceName, "Get", in, opts)
}

func (c *customerServiceClient) Create(ctx context.Context, in *CustomerRequest, opts ...grpc.CallOption) (*model.Customer, error) {
	return invoke[model.Customer](ctx, c.cc, CustomerServiceName, "Create", in, opts)
}

func (c *customerServiceClient) Update(ctx context.Context, in *UpdateCustomerRequest, opts ...grpc.CallOption) (*model.Customer, error) {
	return invoke[model.Customer](ctx, c.cc, CustomerServiceName, "Update", in, opts)
}

func (c *customerServiceClient) Delete(ctx context.Context, in *CustomerIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, CustomerServiceName, "Delete", in, opts)
}

func (c *customerServiceClient) Stats(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*model.CustomerStats, error) {
	return invoke[model.CustomerStats](ctx, c.cc, CustomerServiceName, "Stats", in, opts)
}

func invoke[Res any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in any, opts []grpc.CallOption) (*Res, error) {
	out := new(Res)
	if err := cc.Invoke(ctx, "/"+service+"/"+method, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
