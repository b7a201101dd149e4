package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/poscustomers/internal/config"
	"github.com/umalmyha/poscustomers/internal/infra"
	"google.golang.org/grpc"
)

// @title POS Customers API
// @version 1.0
// @description Customer management API of POS dashboard guarded by single demo account
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.ConfigureLogger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	app, err := infra.NewApp(context.Background(), cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app)
}

func start(app *infra.App) {
	e := infra.Router(app)
	grpcServer := infra.GrpcServer(app)

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 2)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", app.Cfg.ServerCfg.HTTPPort))
	}()

	go func() {
		errorCh <- serveGrpc(grpcServer, app.Cfg.ServerCfg.GrpcPort)
	}()

	select {
	case <-shutdownCh:
		logrus.Info("shutdown signal has been sent, stopping the servers...")
		stop(e, grpcServer, app.Cfg.ServerCfg)
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, grpc.ErrServerStopped) {
			logrus.Errorf("shutting down the servers, unexpected error occurred - %s", err)
		}
		stop(e, grpcServer, app.Cfg.ServerCfg)
		os.Exit(1)
	}
}

func serveGrpc(server *grpc.Server, port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d - %w", port, err)
	}
	logrus.Infof("gRPC server is listening on %s", lis.Addr())
	return server.Serve(lis)
}

func stop(e *echo.Echo, grpcServer *grpc.Server, cfg config.ServerCfg) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	grpcServer.GracefulStop()
	if err := e.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to stop http server gracefully - %s", err)
	}
}
