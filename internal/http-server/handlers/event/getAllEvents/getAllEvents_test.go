package getAllEvents

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"evently/internal/http-server/handlers/event/getAllEvents/mocks"
	"evently/internal/lib/logger/handlers/slogdiscard"
	"evently/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	events := []models.Event{
		{Title: "Go Conference", Slug: "go-conference", Date: "2026-03-14", Time: "18:30"},
		{Title: "Rust Meetup", Slug: "rust-meetup", Date: "2026-04-01", Time: "19:00"},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventsProvider) {
				m.On("GetAllEvents", mock.Anything).Return(events, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"slug":"go-conference"`)
				assert.Contains(t, body, `"slug":"rust-meetup"`)
			},
		},
		{
			name: "No events",
			mockSetup: func(m *mocks.EventsProvider) {
				m.On("GetAllEvents", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.EventsProvider) {
				m.On("GetAllEvents", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "failed to get events")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewEventsProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req, err := http.NewRequest("GET", "/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
