package cmd

import (
	"context"
	"fmt"

	"stock-genius/internal/delivery/http"
	"stock-genius/pkg/logger"
	"stock-genius/pkg/middleware"

	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type HTTPServer struct {
	ctx     context.Context
	appDep  *AppDependency
	handler *http.HttpAPIHandler
}

func NewHTTPServer(ctx context.Context, appDep *AppDependency, handler *http.HttpAPIHandler) *HTTPServer {
	return &HTTPServer{
		ctx:     ctx,
		appDep:  appDep,
		handler: handler,
	}
}

func (s *HTTPServer) Start() error {
	s.appDep.log.Info("Starting HTTP server", logger.IntField("port", s.appDep.cfg.API.Port))
	address := fmt.Sprintf(":%d", s.appDep.cfg.API.Port)

	s.SetupMiddleware()
	s.SetupRoutes()

	return s.appDep.echo.Start(address)
}

func (s *HTTPServer) Stop() error {
	s.appDep.log.Info("Shutting down HTTP server")

	// The parent context is already cancelled by the signal, shut down on a fresh one.
	ctx, cancel := context.WithTimeout(context.Background(), s.appDep.cfg.API.ShutdownTimeout)
	defer cancel()

	stopDone := make(chan error, 1)
	go func() {
		stopDone <- s.appDep.echo.Shutdown(ctx)
	}()

	select {
	case err := <-stopDone:
		if err != nil {
			s.appDep.log.Error("Error When Stop HTTP server", logger.ErrorField(err))
			return err
		}
		s.appDep.log.Info("HTTP server stopped successfully")
	case <-ctx.Done():
		s.appDep.log.Warn("Timeout while stopping HTTP server, forcing shutdown")
		return s.appDep.echo.Close()
	}
	return nil
}

func (s *HTTPServer) SetupMiddleware() {
	e := s.appDep.echo
	cfg := s.appDep.cfg.API

	e.Use(echoMiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(s.appDep.log))
	e.Use(middleware.NewRequestLoggerMiddleware(s.appDep.log))
	e.Use(middleware.NewCORSMiddleware())
	e.Use(middleware.NewRateLimiterMiddleware(cfg.RateLimit, cfg.RateBurst))
	if cfg.RequestTimeout > 0 {
		e.Use(echoMiddleware.ContextTimeout(cfg.RequestTimeout))
	}
}

func (s *HTTPServer) SetupRoutes() {
	s.handler.SetupRoutes()
}
