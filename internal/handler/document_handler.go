package handler

import (
	"github.com/gofiber/fiber/v2"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"
	"quizforge/internal/validation"
)

// DocumentHandler handles document upload and management requests
type DocumentHandler struct {
	docService service.DocumentService
	validator  *validation.Validator
}

// NewDocumentHandler creates a new DocumentHandler instance
func NewDocumentHandler(docService service.DocumentService, validator *validation.Validator) *DocumentHandler {
	return &DocumentHandler{docService: docService, validator: validator}
}

// UploadDocument godoc
// @Summary Upload a PDF document
// @Description Stores an uploaded PDF (max 10MB) for later quiz generation
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Param title formData string false "Document title"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("failed to read uploaded file", err)
	}
	defer file.Close()

	doc, err := h.docService.UploadPDF(c.Context(),
		middleware.UserIDFromContext(c),
		c.FormValue("title"),
		fileHeader.Filename,
		fileHeader.Size,
		file,
	)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDocumentResponse(doc))
}

// CreateTextDocument godoc
// @Summary Create a text document
// @Description Stores a pasted text body for later quiz generation
// @Tags documents
// @Accept json
// @Produce json
// @Param request body dto.CreateTextDocumentRequest true "Text document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Security BearerAuth
// @Router /documents/text [post]
func (h *DocumentHandler) CreateTextDocument(c *fiber.Ctx) error {
	var req dto.CreateTextDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateCreateTextDocumentRequest(&req); len(errs) > 0 {
		return errs
	}

	doc, err := h.docService.CreateTextDocument(c.Context(),
		middleware.UserIDFromContext(c), req.Title, req.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDocumentResponse(doc))
}

// GetDocument godoc
// @Summary Get a document
// @Description Returns one of the caller's documents
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.docService.GetDocument(c.Context(), c.Params("id"), middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDocumentResponse(doc))
}

// DeleteDocument godoc
// @Summary Delete a document
// @Description Deletes one of the caller's documents and its stored file
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.docService.DeleteDocument(c.Context(), c.Params("id"), middleware.UserIDFromContext(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Document deleted"})
}

// ListDocuments godoc
// @Summary List documents
// @Description Returns one page of the caller's documents, newest first
// @Tags documents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Filter by status" Enums(pending, completed, failed)
// @Success 200 {object} dto.DocumentListResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	params := service.DocumentListParams{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
		Status: c.Query("status"),
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	docs, total, err := h.docService.ListDocuments(c.Context(), middleware.UserIDFromContext(c), params)
	if err != nil {
		return err
	}

	resp := dto.DocumentListResponse{
		Documents:  make([]dto.DocumentResponse, 0, len(docs)),
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}
	for i := range docs {
		resp.Documents = append(resp.Documents, dto.NewDocumentResponse(&docs[i]))
	}
	return c.JSON(resp)
}
