// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package service

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"clientgen/internal/config"
)

const (
	defaultShutdownTimeout = 30 * time.Second
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
)

// Server — HTTP-сервис генерации клиентов по документу из тела запроса.
type Server struct {
	cfg *config.Config
	log zerolog.Logger
	app *fiber.App
}

type errorResponse struct {
	Error string `json:"error" yaml:"error"`
}

func New(cfg *config.Config, log zerolog.Logger) (srv *Server) {

	srv = &Server{cfg: cfg, log: log}
	srv.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.Serve.BodyLimit,
		ReadTimeout:           defaultReadTimeout,
		WriteTimeout:          defaultWriteTimeout,
		IdleTimeout:           defaultIdleTimeout,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          srv.errorHandler,
	})
	srv.app.Use(recover.New())
	srv.app.Use(srv.accessLog)
	srv.app.Get("/healthz", srv.serveHealth)
	srv.app.Post("/generate", srv.serveGenerate)
	return
}

func (srv *Server) App() *fiber.App {
	return srv.app
}

func (srv *Server) Listen(addr string) error {

	srv.log.Info().Str("addr", addr).Msg("generation service started")
	return srv.app.Listen(addr)
}

func (srv *Server) Shutdown() error {

	return srv.app.ShutdownWithTimeout(defaultShutdownTimeout)
}

func (srv *Server) serveHealth(ftx *fiber.Ctx) error {

	return ftx.JSON(fiber.Map{"status": "ok"})
}

func (srv *Server) accessLog(ftx *fiber.Ctx) error {

	start := time.Now()
	if chainErr := ftx.Next(); chainErr != nil {
		if err := srv.errorHandler(ftx, chainErr); err != nil {
			_ = ftx.SendStatus(fiber.StatusInternalServerError)
		}
	}
	status := ftx.Response().StatusCode()
	event := srv.log.Info()
	if status >= fiber.StatusInternalServerError {
		event = srv.log.Error()
	} else if status >= fiber.StatusBadRequest {
		event = srv.log.Warn()
	}
	event.
		Str("method", ftx.Method()).
		Str("path", ftx.Path()).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("request")
	return nil
}

func (srv *Server) errorHandler(ftx *fiber.Ctx, err error) error {

	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return ftx.Status(code).JSON(errorResponse{Error: err.Error()})
}
