package adaptor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seva-booking/internal/data/entity"
	"seva-booking/internal/daterule"
	"seva-booking/internal/dto/request"
	"seva-booking/internal/dto/response"
	"seva-booking/internal/usecase"
	"seva-booking/internal/wire"
	"seva-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingService scripts service outcomes per test case
type fakeBookingService struct {
	createErr error
	getErr    error
	deleteErr error
	listErr   error
	healthErr error
}

func sampleBooking() *response.BookingResponse {
	return &response.BookingResponse{
		ID:             7,
		SevakarthaName: "Ramesh",
		Department:     "ISE",
		SevaType:       "Abhisheka",
		PoojaDate:      "2025-06-04",
		Day:            4,
		Month:          6,
		Year:           2025,
		Status:         entity.BookingStatusConfirmed,
		CreatedAt:      time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return sampleBooking(), nil
}

func (f *fakeBookingService) ListBookings(ctx context.Context) (*response.ListBookingsResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &response.ListBookingsResponse{
		Bookings: []response.BookingResponse{*sampleBooking()},
		Count:    1,
	}, nil
}

func (f *fakeBookingService) GetBookingByID(ctx context.Context, id int64) (*response.BookingResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return sampleBooking(), nil
}

func (f *fakeBookingService) DeleteBooking(ctx context.Context, id int64) error {
	return f.deleteErr
}

func (f *fakeBookingService) HealthCheck(ctx context.Context) (*response.HealthResponse, error) {
	if f.healthErr != nil {
		return nil, f.healthErr
	}
	return &response.HealthResponse{Database: "up", BookingCount: 1}, nil
}

func newTestRouter(svc usecase.BookingService) http.Handler {
	app := wire.Wiring(&usecase.Service{Booking: svc}, zap.NewNop())
	return app.Router
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body []byte) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestCreateBookingHandler(t *testing.T) {
	validBody := []byte(`{"sevakartha_name":"Ramesh","department":"ISE","seva_type":"Abhisheka","pooja_date":"2025-06-04"}`)

	tests := []struct {
		description  string
		body         []byte
		serviceErr   error
		expectedCode int
		checkErrors  map[string]string
	}{
		{
			description:  "created",
			body:         validBody,
			expectedCode: http.StatusCreated,
		},
		{
			description:  "malformed json body",
			body:         []byte(`{"sevakartha_name":`),
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "validation error",
			body:         validBody,
			serviceErr:   fmt.Errorf("%w: department: This field is required", usecase.ErrValidation),
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "invalid date",
			body:         validBody,
			serviceErr:   fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", daterule.ErrInvalidDate, "june 4th"),
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "rule violation carries the allowed booking date",
			body:         validBody,
			serviceErr:   &usecase.RuleViolationError{AllowedDate: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)},
			expectedCode: http.StatusBadRequest,
			checkErrors:  map[string]string{"allowed_booking_date": "2025-06-02"},
		},
		{
			description:  "conflict carries the existing sponsor",
			body:         validBody,
			serviceErr:   &usecase.ConflictError{BookedBy: "Suresh"},
			expectedCode: http.StatusConflict,
			checkErrors:  map[string]string{"booked_by": "Suresh"},
		},
		{
			description:  "store error stays generic",
			body:         validBody,
			serviceErr:   fmt.Errorf("create booking: connection refused"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			router := newTestRouter(&fakeBookingService{createErr: test.serviceErr})

			rec, envelope := doRequest(t, router, http.MethodPost, "/oms/details/add", test.body)

			assert.Equal(t, test.expectedCode, rec.Code)
			assert.Equal(t, test.expectedCode < 400, envelope.Status)

			if test.expectedCode == http.StatusCreated {
				data, ok := envelope.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, float64(7), data["booking_id"])
				booking, ok := data["booking"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "2025-06-04", booking["pooja_date"])
			}

			if test.checkErrors != nil {
				errs, ok := envelope.Errors.(map[string]any)
				require.True(t, ok)
				for key, want := range test.checkErrors {
					assert.Equal(t, want, errs[key])
				}
			}

			if test.expectedCode == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", envelope.Message)
			}
		})
	}
}

func TestListBookingsHandler(t *testing.T) {
	router := newTestRouter(&fakeBookingService{})

	rec, envelope := doRequest(t, router, http.MethodGet, "/oms/details/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), data["count"])
}

func TestListBookingsHandler_StoreError(t *testing.T) {
	router := newTestRouter(&fakeBookingService{listErr: fmt.Errorf("list bookings: timeout")})

	rec, _ := doRequest(t, router, http.MethodGet, "/oms/details/", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetBookingHandler(t *testing.T) {
	tests := []struct {
		description  string
		path         string
		serviceErr   error
		expectedCode int
	}{
		{
			description:  "found",
			path:         "/oms/details/7",
			expectedCode: http.StatusOK,
		},
		{
			description:  "non-numeric id",
			path:         "/oms/details/abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			description:  "unknown id",
			path:         "/oms/details/999",
			serviceErr:   usecase.ErrBookingNotFound,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			router := newTestRouter(&fakeBookingService{getErr: test.serviceErr})

			rec, _ := doRequest(t, router, http.MethodGet, test.path, nil)
			assert.Equal(t, test.expectedCode, rec.Code)
		})
	}
}

func TestDeleteBookingHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router := newTestRouter(&fakeBookingService{})

		rec, envelope := doRequest(t, router, http.MethodDelete, "/oms/details/7", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		data, ok := envelope.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Booking deleted successfully", data["message"])
	})

	t.Run("unknown id", func(t *testing.T) {
		router := newTestRouter(&fakeBookingService{deleteErr: usecase.ErrBookingNotFound})

		rec, _ := doRequest(t, router, http.MethodDelete, "/oms/details/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(&fakeBookingService{})

	rec, envelope := doRequest(t, router, http.MethodGet, "/oms/details/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "up", data["database"])
	assert.Equal(t, float64(1), data["booking_count"])
}

func TestHealthHandler_StoreDown(t *testing.T) {
	router := newTestRouter(&fakeBookingService{healthErr: fmt.Errorf("health check: no connection")})

	rec, _ := doRequest(t, router, http.MethodGet, "/oms/details/health", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
