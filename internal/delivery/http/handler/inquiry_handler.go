package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainInquiry "padel-booking/internal/domain/inquiry"
	"padel-booking/internal/usecase/inquiry"
	appErrors "padel-booking/pkg/errors"
	"padel-booking/pkg/utils"
)

// InquiryHandler serves the support inquiry endpoints. Unlike the rest of
// the API these respond in JSON throughout, errors included.
type InquiryHandler struct {
	service *inquiry.Service
}

func NewInquiryHandler(service *inquiry.Service) *InquiryHandler {
	return &InquiryHandler{service: service}
}

func (h *InquiryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/inquiries", h.List)
	router.POST("/inquiries", h.Create)
	router.PUT("/inquiries/:id", h.Update)
}

func (h *InquiryHandler) List(c *gin.Context) {
	email := utils.SanitizeEmail(c.Query("email"))

	inquiries, err := h.service.List(c.Request.Context(), email)
	if err != nil {
		logInternalError(c, err)
		utils.MessageResponse(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

func (h *InquiryHandler) Create(c *gin.Context) {
	var req inquiry.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MessageResponse(c, http.StatusBadRequest, "Email, subject, and message are required.")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)
	req.Category = utils.SanitizeString(req.Category)
	req.Subject = utils.SanitizeString(req.Subject)
	req.Description = utils.SanitizeText(req.Description)

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *InquiryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.MessageResponse(c, http.StatusNotFound, "Inquiry not found.")
		return
	}

	var req inquiry.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MessageResponse(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Response != nil {
		sanitized := utils.SanitizeText(*req.Response)
		req.Response = &sanitized
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.respond(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Inquiry updated successfully.")
}

func (h *InquiryHandler) respond(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainInquiry.ErrInquiryNotFound):
		utils.MessageResponse(c, http.StatusNotFound, "Inquiry not found.")
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.MessageResponse(c, http.StatusBadRequest, appErr.Message)
			return
		}

		logInternalError(c, err)
		utils.MessageResponse(c, http.StatusInternalServerError, "Internal server error.")
	}
}
