package interceptors

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/poscustomers/internal/errors"
	"github.com/umalmyha/poscustomers/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func httpToGrpcCode(s int) codes.Code {
	switch s {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}

func grpcCode(err error) codes.Code {
	var pldErr *validation.PayloadError
	var validationErr *apperrors.ValidationErr
	if errors.As(err, &pldErr) || errors.As(err, &validationErr) {
		return codes.InvalidArgument
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return codes.NotFound
	}

	var authErr *apperrors.AuthErr
	if errors.As(err, &authErr) {
		return codes.Unauthenticated
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return httpToGrpcCode(echoErr.Code)
	}
	return codes.Internal
}

// ErrorUnaryInterceptor converts error retrieved from handler to gRPC error with corresponding code
func ErrorUnaryInterceptor(applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		res, err := h(ctx, req)
		if err == nil {
			return res, nil
		}

		if _, ok := status.FromError(err); ok { // it is already grpc status error
			return nil, err
		}

		code := grpcCode(err)
		if code == codes.Internal {
			logrus.Errorf("error occurred on grpc request %s processing - %v", info.FullMethod, err)
			return nil, status.Error(code, "Internal server error")
		}
		return nil, status.Error(code, err.Error())
	}
}
