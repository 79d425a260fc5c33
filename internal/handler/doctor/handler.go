package doctor

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medvault/booking-api/internal/handler"
	"github.com/medvault/booking-api/internal/model"
)

// AppointmentService is the booking surface the doctor API needs
type AppointmentService interface {
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.AppointmentDetail, error)
	UpdateStatus(ctx context.Context, appointmentID uuid.UUID, status string, notes *string) (*model.Appointment, error)
}

type Handler struct {
	appointments AppointmentService
}

func NewHandler(appointments AppointmentService) *Handler {
	return &Handler{appointments: appointments}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	appointments, err := h.appointments.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

// UpdateStatus takes status and notes as query parameters. An absent notes
// parameter keeps the stored notes; a present one overwrites, even when
// empty.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("status is required"))
		return
	}

	var notes *string
	if v, ok := c.GetQuery("notes"); ok {
		notes = &v
	}

	appointment, err := h.appointments.UpdateStatus(c.Request.Context(), id, status, notes)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctor := r.Group("/doctor")
	{
		doctor.GET("/:doctorId/appointments", h.ListAppointments)
		doctor.PUT("/appointments/:id/status", h.UpdateStatus)
	}
}
