package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	httpadapter "portfolio-generator/internal/adapter/http"
	"portfolio-generator/internal/common"
	"portfolio-generator/internal/config"
	"portfolio-generator/internal/usecase"
	"portfolio-generator/pkg/ai"
	infra "portfolio-generator/pkg/infrastructure"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := common.Logger()

	aiClient := ai.NewClient(cfg)
	generator := usecase.NewGenerator(aiClient, cfg.EnrichConcurrency)
	uploader := infra.NewUploader(cfg)
	pdfRenderer := infra.NewChromedpRenderer()

	app := fiber.New(fiber.Config{AppName: "portfolio-generator"})

	h := httpadapter.NewHandler(generator, aiClient, uploader, pdfRenderer)
	h.Register(app)

	if !uploader.Configured() {
		log.Warn("image upload destination not configured; /api/upload-image will reject requests")
	}

	log.Info("server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server failed", "error", err)
	}
}
