package listTrains

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"railBooker/internal/http-server/handlers/train/listTrains/mocks"
	"railBooker/internal/lib/logger/handlers/slogdiscard"
	"railBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListTrainsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	trains := []models.Train{
		{
			Number:         "12345",
			Name:           "Rajdhani Express",
			Source:         "Delhi",
			Destination:    "Mumbai",
			Departure:      "16:55",
			Arrival:        "08:15",
			Price:          2500,
			AvailableSeats: 10,
			Status:         models.TrainStatusActive,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.TrainLister)
		expectedStatus int
		expectedBody   string
		expectedCount  int
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.TrainLister) {
				m.On("ListActiveTrains", mock.Anything).Return(trains, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "Empty catalog",
			mockSetup: func(m *mocks.TrainLister) {
				m.On("ListActiveTrains", mock.Anything).Return([]models.Train{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.TrainLister) {
				m.On("ListActiveTrains", mock.Anything).Return(nil, errors.New("database down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get trains"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewTrainLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/trains", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				var resp TrainsResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Len(t, resp.Trains, tc.expectedCount)
			}

			mockLister.AssertExpectations(t)
		})
	}
}
