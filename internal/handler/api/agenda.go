package api

import (
	"net/http"
	"time"

	reqdto "studio-agenda/internal/handler/dto/request"
	resdto "studio-agenda/internal/handler/dto/response"
	"studio-agenda/internal/handler/httperr"
	"studio-agenda/internal/handler/middleware"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase/queries"
	"studio-agenda/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const msgInvalidDate = "Data inválida. Use o formato AAAA-MM-DD."

type AgendaHandler struct {
	q   queries.AgendaQueries
	loc *time.Location
}

func NewAgendaHandler(q queries.AgendaQueries, cfg config.Config) *AgendaHandler {
	return &AgendaHandler{q: q, loc: cfg.Schedule.Location()}
}

// @Summary Get agenda
// @Description Refresh the student's bookings and return the agenda for the selected week and day
// @Tags agenda
// @Produce json
// @Security BearerAuth
// @Param date query string false "Selected day (YYYY-MM-DD)"
// @Param studio query string false "Studio id or 'all'"
// @Param week query int false "Weeks to move the window by"
// @Success 200 {object} resdto.AgendaResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/agenda [get]
func (h *AgendaHandler) GetAgenda(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAuth, shared.MsgAuth, nil)
		return
	}
	var query reqdto.AgendaQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Parâmetros inválidos.", nil)
		return
	}
	change, err := query.ToWindowChange(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidDate, nil)
		return
	}

	view, err := h.q.GetAgenda(c.Request.Context(), studentID, change)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromAgendaView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, shared.MsgUnexpected, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List classes
// @Description List a day's class slots with seat availability and the booking action
// @Tags agenda
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Param studio query string false "Studio id or 'all'"
// @Success 200 {array} resdto.ClassSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/agenda/classes [get]
func (h *AgendaHandler) ListClasses(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAuth, shared.MsgAuth, nil)
		return
	}
	var query reqdto.ClassesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Parâmetros inválidos.", nil)
		return
	}
	date, err := query.ParseDate(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidDate, nil)
		return
	}

	views, err := h.q.ListAvailableClasses(c.Request.Context(), studentID, date, query.Filter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromClassSlotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, shared.MsgUnexpected, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List studios
// @Tags agenda
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StudioResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/studios [get]
func (h *AgendaHandler) ListStudios(c *gin.Context) {
	studios, err := h.q.ListStudios(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromStudios(studios)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, shared.MsgUnexpected, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
