package addTrain

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"railBooker/internal/http-server/handlers/train/addTrain/mocks"
	"railBooker/internal/lib/logger/handlers/slogdiscard"
	"railBooker/internal/models"
	"railBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddTrainHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"train_number": "12345",
		"train_name": "Rajdhani Express",
		"source_station": "Delhi",
		"destination_station": "Mumbai",
		"departure_time": "16:55",
		"arrival_time": "08:15",
		"price": 2500,
		"available_seats": 10,
		"status": "active"
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TrainAdder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.TrainAdder) {
				m.On("AddTrain", mock.Anything, models.Train{
					Number:         "12345",
					Name:           "Rajdhani Express",
					Source:         "Delhi",
					Destination:    "Mumbai",
					Departure:      "16:55",
					Arrival:        "08:15",
					Price:          2500,
					AvailableSeats: 10,
					Status:         models.TrainStatusActive,
				}).Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Defaults to active",
			requestBody: `{
				"train_number": "12002",
				"train_name": "Shatabdi Express",
				"source_station": "Delhi",
				"destination_station": "Bhopal",
				"departure_time": "06:00",
				"arrival_time": "13:40",
				"price": 1200,
				"available_seats": 40
			}`,
			mockSetup: func(m *mocks.TrainAdder) {
				m.On("AddTrain", mock.Anything, mock.MatchedBy(func(train models.Train) bool {
					return train.Status == models.TrainStatusActive
				})).Return(int64(2), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.TrainAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing train number",
			requestBody:    `{"train_name":"Rajdhani Express","source_station":"Delhi","destination_station":"Mumbai","departure_time":"16:55","arrival_time":"08:15","price":2500,"available_seats":10}`,
			mockSetup:      func(m *mocks.TrainAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Number is a required field"}`,
		},
		{
			name:        "Duplicate train number",
			requestBody: validBody,
			mockSetup: func(m *mocks.TrainAdder) {
				m.On("AddTrain", mock.Anything, mock.AnythingOfType("models.Train")).
					Return(int64(0), storage.ErrDuplicateTrain)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"train number already exists"}`,
		},
		{
			name:        "Internal error",
			requestBody: validBody,
			mockSetup: func(m *mocks.TrainAdder) {
				m.On("AddTrain", mock.Anything, mock.AnythingOfType("models.Train")).
					Return(int64(0), errors.New("database down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add train"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAdder := mocks.NewTrainAdder(t)
			tc.mockSetup(mockAdder)

			handler := New(logger, mockAdder)

			req, err := http.NewRequest("POST", "/trains", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				var resp TrainResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Positive(t, resp.TrainId)
			}

			mockAdder.AssertExpectations(t)
		})
	}
}
