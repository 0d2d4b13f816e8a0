package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"padel-booking/internal/usecase/reservation"
	"padel-booking/pkg/utils"
)

type ReservationHandler struct {
	service *reservation.Service
}

func NewReservationHandler(service *reservation.Service) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/courts", h.ListCourts)
	router.GET("/reservations", h.ListByEmail)
	router.GET("/reservations/day", h.ListByDay)
	router.GET("/reservations/availability", h.AvailabilityGrid)
	router.POST("/reservations", h.Create)
	router.PUT("/reservations/:id/cancel", h.Cancel)
}

func (h *ReservationHandler) ListCourts(c *gin.Context) {
	courts, err := h.service.ListCourts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, courts)
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reservation.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)
	req.Name = utils.SanitizeString(req.Name)

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Reservation not found.")
		return
	}

	var req reservation.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Cancellation reason is required.")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, req.CancellationReason); err != nil {
		respondWithError(c, err)
		return
	}

	c.String(http.StatusOK, "Reservation cancelled successfully.")
}

func (h *ReservationHandler) ListByEmail(c *gin.Context) {
	email := utils.SanitizeEmail(c.Query("email"))

	reservations, err := h.service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) ListByDay(c *gin.Context) {
	reservations, err := h.service.ListByDay(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// AvailabilityGrid serves the server-rendered (hour x court) matrix the
// booking page draws. The optional email marks the caller's own slots.
func (h *ReservationHandler) AvailabilityGrid(c *gin.Context) {
	email := utils.SanitizeEmail(c.Query("email"))

	grid, err := h.service.AvailabilityGrid(c.Request.Context(), c.Query("date"), email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, grid)
}
