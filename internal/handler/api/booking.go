package api

import (
	"net/http"
	"strings"

	reqdto "studio-agenda/internal/handler/dto/request"
	resdto "studio-agenda/internal/handler/dto/response"
	"studio-agenda/internal/handler/httperr"
	"studio-agenda/internal/handler/middleware"
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase/commands"
	"studio-agenda/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book a class
// @Description Book a class slot, or join its waitlist when it is full
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Class slot to book"
// @Success 201 {object} resdto.BookResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/agenda/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAuth, shared.MsgAuth, nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, shared.MsgInvalidClassSlot, nil)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), studentID, req.GetClassSlotID())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromBookResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, shared.MsgUnexpected, nil)
		return
	}
	if resp.Booking.ID != "" {
		c.Header("Location", "/api/agenda/bookings/"+resp.Booking.ID)
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Cancel a booking
// @Description Cancel a booking while its cancellation window is still open
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/agenda/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAuth, shared.MsgAuth, nil)
		return
	}
	bookingID := strings.TrimSpace(c.Param("id"))
	if bookingID == "" {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrNotFound, shared.MsgNotFound, nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), studentID, bookingID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
