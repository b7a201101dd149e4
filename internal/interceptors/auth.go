package interceptors

import (
	"context"

	"github.com/umalmyha/poscustomers/internal/rpc"
	"github.com/umalmyha/poscustomers/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AuthUnaryInterceptor verifies that access token of the live session is provided in metadata
func AuthUnaryInterceptor(authSvc service.AuthService, applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		headers, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "no auth info provided")
		}

		tokenHdr := headers.Get(rpc.AccessTokenMetadataKey)
		if len(tokenHdr) == 0 {
			return nil, status.Errorf(codes.Unauthenticated, "%s header is missing", rpc.AccessTokenMetadataKey)
		}

		if _, err := authSvc.Verify(ctx, tokenHdr[0]); err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid access token provided - %v", err)
		}

		return h(ctx, req)
	}
}
