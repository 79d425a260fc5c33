package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvault/booking-api/internal/model"
	apperrors "github.com/medvault/booking-api/pkg/errors"
)

type fakeBookingService struct {
	bookErr error

	gotDoctorID  uuid.UUID
	gotPatientID uuid.UUID
	gotDate      time.Time
	gotNotes     string

	appointments []*model.AppointmentDetail
}

func (f *fakeBookingService) Book(_ context.Context, doctorID, patientID uuid.UUID, date time.Time, notes string) (*model.Appointment, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.gotDoctorID = doctorID
	f.gotPatientID = patientID
	f.gotDate = date
	f.gotNotes = notes
	return &model.Appointment{
		Base:            model.Base{ID: uuid.New(), CreatedAt: time.Now()},
		DoctorID:        doctorID,
		PatientID:       patientID,
		AppointmentDate: date,
		Status:          model.AppointmentStatusPending,
		Notes:           notes,
	}, nil
}

func (f *fakeBookingService) ListByPatient(context.Context, uuid.UUID) ([]*model.AppointmentDetail, error) {
	return f.appointments, nil
}

type fakeDoctorService struct {
	doctors []*model.DoctorDetail
}

func (f *fakeDoctorService) ListDoctors(context.Context) ([]*model.DoctorDetail, error) {
	return f.doctors, nil
}

type fakeRecordService struct {
	gotFileURL     string
	gotDescription string
	records        []*model.MedicalRecord
}

func (f *fakeRecordService) UploadRecord(_ context.Context, patientID uuid.UUID, fileURL, description string) (*model.MedicalRecord, error) {
	f.gotFileURL = fileURL
	f.gotDescription = description
	return &model.MedicalRecord{
		Base:        model.Base{ID: uuid.New(), CreatedAt: time.Now()},
		PatientID:   patientID,
		FileURL:     fileURL,
		Description: description,
	}, nil
}

func (f *fakeRecordService) ListRecords(context.Context, uuid.UUID) ([]*model.MedicalRecord, error) {
	return f.records, nil
}

func newTestRouter(bookings *fakeBookingService, doctors *fakeDoctorService, records *fakeRecordService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(bookings, doctors, records).RegisterRoutes(r.Group("/api"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBook(t *testing.T) {
	bookings := &fakeBookingService{}
	r := newTestRouter(bookings, &fakeDoctorService{}, &fakeRecordService{})

	doctorID := uuid.New()
	patientID := uuid.New()
	body := `{"doctorId":"` + doctorID.String() + `","date":"2025-06-01T10:00:00","notes":"checkup"}`

	w := doRequest(t, r, http.MethodPost, "/api/patient/"+patientID.String()+"/book", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.BookAppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEqual(t, uuid.Nil, resp.AppointmentID)
	assert.Equal(t, "Appointment scheduled successfully", resp.Message)

	assert.Equal(t, doctorID, bookings.gotDoctorID)
	assert.Equal(t, patientID, bookings.gotPatientID)
	assert.Equal(t, "checkup", bookings.gotNotes)
	// zone-less dates parse in UTC
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), bookings.gotDate)
}

func TestBookAcceptsRFC3339(t *testing.T) {
	bookings := &fakeBookingService{}
	r := newTestRouter(bookings, &fakeDoctorService{}, &fakeRecordService{})

	body := `{"doctorId":"` + uuid.NewString() + `","date":"2025-06-01T10:00:00+02:00"}`
	w := doRequest(t, r, http.MethodPost, "/api/patient/"+uuid.NewString()+"/book", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2*60*60, offsetSeconds(bookings.gotDate))
}

func offsetSeconds(t time.Time) int {
	_, offset := t.Zone()
	return offset
}

func TestBookInvalidDate(t *testing.T) {
	r := newTestRouter(&fakeBookingService{}, &fakeDoctorService{}, &fakeRecordService{})

	body := `{"doctorId":"` + uuid.NewString() + `","date":"01-06-2025"}`
	w := doRequest(t, r, http.MethodPost, "/api/patient/"+uuid.NewString()+"/book", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "invalid date format", resp["message"])
}

func TestBookMissingDoctorID(t *testing.T) {
	r := newTestRouter(&fakeBookingService{}, &fakeDoctorService{}, &fakeRecordService{})

	w := doRequest(t, r, http.MethodPost, "/api/patient/"+uuid.NewString()+"/book", `{"date":"2025-06-01T10:00:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookUnknownDoctor(t *testing.T) {
	bookings := &fakeBookingService{bookErr: apperrors.NotFound("doctor", nil)}
	r := newTestRouter(bookings, &fakeDoctorService{}, &fakeRecordService{})

	body := `{"doctorId":"` + uuid.NewString() + `","date":"2025-06-01T10:00:00"}`
	w := doRequest(t, r, http.MethodPost, "/api/patient/"+uuid.NewString()+"/book", body)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "doctor not found", resp["message"])
}

func TestBookInvalidPatientID(t *testing.T) {
	r := newTestRouter(&fakeBookingService{}, &fakeDoctorService{}, &fakeRecordService{})

	w := doRequest(t, r, http.MethodPost, "/api/patient/not-a-uuid/book", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListDoctors(t *testing.T) {
	doctors := &fakeDoctorService{doctors: []*model.DoctorDetail{
		{
			Doctor: model.Doctor{ID: uuid.New(), Specialization: "Cardiologist", Experience: 12, Availability: true},
			Name:   "Dr. Sarah Wilson",
			Email:  "sarah@medvault.com",
		},
	}}
	r := newTestRouter(&fakeBookingService{}, doctors, &fakeRecordService{})

	w := doRequest(t, r, http.MethodGet, "/api/patient/doctors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Name           string `json:"name"`
			Specialization string `json:"specialization"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Dr. Sarah Wilson", resp.Data[0].Name)
	assert.Equal(t, "Cardiologist", resp.Data[0].Specialization)
}

func TestUploadRecord(t *testing.T) {
	records := &fakeRecordService{}
	r := newTestRouter(&fakeBookingService{}, &fakeDoctorService{}, records)

	path := "/api/patient/" + uuid.NewString() + "/records?fileUrl=https%3A%2F%2Ffiles.example.com%2Fscan.pdf&description=MRI+scan"
	w := doRequest(t, r, http.MethodPost, path, "")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "https://files.example.com/scan.pdf", records.gotFileURL)
	assert.Equal(t, "MRI scan", records.gotDescription)
}

func TestUploadRecordRequiresFileURL(t *testing.T) {
	r := newTestRouter(&fakeBookingService{}, &fakeDoctorService{}, &fakeRecordService{})

	w := doRequest(t, r, http.MethodPost, "/api/patient/"+uuid.NewString()+"/records", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fileUrl is required")
}

func TestListAppointments(t *testing.T) {
	bookings := &fakeBookingService{appointments: []*model.AppointmentDetail{
		{
			Appointment: model.Appointment{
				Base:   model.Base{ID: uuid.New()},
				Status: model.AppointmentStatusPending,
				Notes:  "checkup",
			},
			DoctorName:  "Dr. Sarah Wilson",
			PatientName: "John Doe",
		},
	}}
	r := newTestRouter(bookings, &fakeDoctorService{}, &fakeRecordService{})

	w := doRequest(t, r, http.MethodGet, "/api/patient/"+uuid.NewString()+"/appointments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Sarah Wilson")
	assert.Contains(t, w.Body.String(), "PENDING")
}
