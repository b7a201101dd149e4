package infra

import (
	"github.com/umalmyha/poscustomers/internal/handlers"
	"github.com/umalmyha/poscustomers/internal/interceptors"
	"github.com/umalmyha/poscustomers/internal/rpc"
	"google.golang.org/grpc"
)

// GrpcServer builds gRPC server with auth and customer services registered
func GrpcServer(app *App) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.ErrorUnaryInterceptor(),
			interceptors.AuthUnaryInterceptor(app.AuthSvc, interceptors.UnaryApplicableForService(rpc.CustomerServiceName)),
			interceptors.ValidatorUnaryInterceptor(app.Validator),
		),
	)

	rpc.RegisterAuthServiceServer(server, handlers.NewAuthGrpcHandler(app.AuthSvc))
	rpc.RegisterCustomerServiceServer(server, handlers.NewCustomerGrpcHandler(app.CustomerSvc))

	return server
}
