package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpRouter "github.com/jhoicas/Cafeteria-client/internal/interfaces/http"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
	"github.com/jhoicas/Cafeteria-client/pkg/config"
	"github.com/jhoicas/Cafeteria-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.Stub.Addr()).
		Msg("iniciando stub server")

	store := memory.NewStore()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-stub",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name + "-stub"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store: store,
		JWT: httpRouter.JWTConfig{
			Secret:     cfg.Stub.JWTSecret,
			Issuer:     cfg.Stub.JWTIssuer,
			ExpMinutes: cfg.Stub.JWTExpMins,
		},
	})

	go func() {
		if err := app.Listen(cfg.Stub.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando stub server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
