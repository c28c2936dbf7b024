package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio-generator/internal/common"
	"portfolio-generator/internal/model"
	"portfolio-generator/internal/usecase"
	"portfolio-generator/pkg/ai"
)

// Enhancer covers the standalone enrichment endpoints the form UI calls
// outside of full generation.
type Enhancer interface {
	EnhanceText(ctx context.Context, text string, kind ai.SectionKind) (string, error)
	GenerateProjectDescription(ctx context.Context, projectName, skillsHint string) (string, error)
	GenerateProjectImage(ctx context.Context, projectName, description string) (string, error)
}

type ImageUploader interface {
	UploadImage(ctx context.Context, fileName, content string) (string, error)
}

type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	generator *usecase.Generator
	enhancer  Enhancer
	uploader  ImageUploader
	pdf       PDFRenderer
}

func NewHandler(g *usecase.Generator, e Enhancer, u ImageUploader, p PDFRenderer) *Handler {
	return &Handler{generator: g, enhancer: e, uploader: u, pdf: p}
}

// Register mounts every API route on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/api/generate-portfolio", h.GeneratePortfolio)
	app.Post("/api/generate-portfolio/pdf", h.GenerateResumePDF)
	app.Post("/api/enhance-text", h.EnhanceText)
	app.Post("/api/generate-description", h.GenerateDescription)
	app.Post("/api/generate-image", h.GenerateImage)
	app.Post("/api/upload-image", h.UploadImage)
}

// GeneratePortfolio runs the full pipeline and returns both documents.
// Enrichment failures never surface here; only bad input is rejected.
func (h *Handler) GeneratePortfolio(c *fiber.Ctx) error {
	req, err := h.parseGenerateRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	docs, err := h.generator.Generate(c.UserContext(), *req)
	if err != nil {
		return badRequest(c, err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"portfolioHtml": docs.PortfolioHTML,
		"resumeHtml":    docs.ResumeHTML,
	})
}

// GenerateResumePDF renders the resume document and prints it to PDF.
func (h *Handler) GenerateResumePDF(c *fiber.Ctx) error {
	req, err := h.parseGenerateRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	docs, err := h.generator.Generate(c.UserContext(), *req)
	if err != nil {
		return badRequest(c, err)
	}

	pdf, err := h.pdf.RenderHTMLToPDF(c.UserContext(), docs.ResumeHTML)
	if err != nil {
		common.Logger().Error("handler: pdf rendering failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}

func (h *Handler) parseGenerateRequest(c *fiber.Ctx) (*model.Request, error) {
	if err := model.ValidateRequestBody(c.Body()); err != nil {
		return nil, err
	}
	var req model.Request
	if err := c.BodyParser(&req); err != nil {
		return nil, &model.InputError{Reason: "invalid payload"}
	}
	return &req, nil
}

type enhanceTextReq struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

func (h *Handler) EnhanceText(c *fiber.Ctx) error {
	var req enhanceTextReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Text is required"})
	}

	enhanced, err := h.enhancer.EnhanceText(c.UserContext(), req.Text, ai.SectionKind(req.Type))
	if err != nil {
		common.Logger().Warn("handler: text enhancement failed", "kind", req.Type, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enhance text"})
	}
	return c.JSON(fiber.Map{"enhancedText": enhanced})
}

type descriptionReq struct {
	ProjectName string `json:"projectName"`
	Skills      string `json:"skills"`
}

func (h *Handler) GenerateDescription(c *fiber.Ctx) error {
	var req descriptionReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project name required"})
	}

	desc, err := h.enhancer.GenerateProjectDescription(c.UserContext(), req.ProjectName, req.Skills)
	if err != nil {
		common.Logger().Warn("handler: description generation failed", "project", req.ProjectName, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate description"})
	}
	return c.JSON(fiber.Map{"success": true, "description": desc})
}

type imageReq struct {
	ProjectName        string `json:"projectName"`
	ProjectDescription string `json:"projectDescription"`
}

func (h *Handler) GenerateImage(c *fiber.Ctx) error {
	var req imageReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project name required"})
	}

	imageURL, err := h.enhancer.GenerateProjectImage(c.UserContext(), req.ProjectName, req.ProjectDescription)
	if err != nil || imageURL == "" {
		common.Logger().Warn("handler: image generation failed", "project", req.ProjectName, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate image"})
	}
	return c.JSON(fiber.Map{"success": true, "imageUrl": imageURL})
}

type uploadReq struct {
	FileName    string `json:"fileName"`
	FileContent string `json:"fileContent"`
}

func (h *Handler) UploadImage(c *fiber.Ctx) error {
	var req uploadReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.FileName == "" || req.FileContent == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	url, err := h.uploader.UploadImage(c.UserContext(), req.FileName, req.FileContent)
	if err != nil {
		common.Logger().Error("handler: image upload failed", "file", req.FileName, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "imageUrl": url, "message": "Image uploaded"})
}

func badRequest(c *fiber.Ctx, err error) error {
	var inputErr *model.InputError
	if errors.As(err, &inputErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": inputErr.Error()})
	}
	common.Logger().Error("handler: generation failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate portfolio"})
}
