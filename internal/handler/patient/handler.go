package patient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medvault/booking-api/internal/handler"
	"github.com/medvault/booking-api/internal/model"
	apperrors "github.com/medvault/booking-api/pkg/errors"
)

// appointmentDateLocal is the fallback layout for booking dates that arrive
// without a zone offset.
const appointmentDateLocal = "2006-01-02T15:04:05"

// BookingService is the booking surface the patient API needs
type BookingService interface {
	Book(ctx context.Context, doctorID, patientID uuid.UUID, date time.Time, notes string) (*model.Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.AppointmentDetail, error)
}

// DoctorService serves the doctor directory
type DoctorService interface {
	ListDoctors(ctx context.Context) ([]*model.DoctorDetail, error)
}

// RecordService handles medical record metadata
type RecordService interface {
	UploadRecord(ctx context.Context, patientID uuid.UUID, fileURL, description string) (*model.MedicalRecord, error)
	ListRecords(ctx context.Context, patientID uuid.UUID) ([]*model.MedicalRecord, error)
}

type Handler struct {
	bookings BookingService
	doctors  DoctorService
	records  RecordService
}

func NewHandler(bookings BookingService, doctors DoctorService, records RecordService) *Handler {
	return &Handler{
		bookings: bookings,
		doctors:  doctors,
		records:  records,
	}
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.ListDoctors(c.Request.Context())
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

// Book parses the request date with a fallback layout, books the
// appointment and answers with the historical response shape. The HTTP
// status comes from the error kind; the message field is always present.
func (h *Handler) Book(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid patient ID"})
		return
	}

	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	date, err := parseAppointmentDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date format"})
		return
	}

	appointment, err := h.bookings.Book(c.Request.Context(), req.DoctorID, patientID, date, req.Notes)
	if err != nil {
		status := http.StatusInternalServerError
		message := err.Error()
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			status = appErr.StatusCode()
			message = appErr.Message
		}
		c.JSON(status, gin.H{"success": false, "message": message})
		return
	}

	c.JSON(http.StatusOK, model.BookAppointmentResponse{
		Success:       true,
		AppointmentID: appointment.ID,
		Message:       "Appointment scheduled successfully",
	})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	appointments, err := h.bookings.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) UploadRecord(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	fileURL := c.Query("fileUrl")
	if fileURL == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("fileUrl is required"))
		return
	}
	description := c.Query("description")

	rec, err := h.records.UploadRecord(c.Request.Context(), patientID, fileURL, description)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(rec))
}

func (h *Handler) ListRecords(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	records, err := h.records.ListRecords(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patient := r.Group("/patient")
	{
		patient.GET("/doctors", h.ListDoctors)
		patient.POST("/:patientId/book", h.Book)
		patient.GET("/:patientId/appointments", h.ListAppointments)
		patient.POST("/:patientId/records", h.UploadRecord)
		patient.GET("/:patientId/records", h.ListRecords)
	}
}

// parseAppointmentDate tries RFC 3339 first, then the zone-less local
// profile the web client sends.
func parseAppointmentDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(appointmentDateLocal, value)
}
