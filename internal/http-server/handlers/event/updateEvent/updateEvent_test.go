package updateEvent

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"evently/internal/http-server/handlers/event/updateEvent/mocks"
	"evently/internal/lib/logger/handlers/slogdiscard"
	"evently/internal/models"
	"evently/internal/schema"
	"evently/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"title": "Go Conference 2027",
	"description": "A conference about Go",
	"overview": "Talks and workshops",
	"image": "/images/go-conf.png",
	"venue": "Main Hall",
	"location": "Berlin",
	"date": "2027-03-14",
	"time": "18:30",
	"mode": "offline",
	"audience": "developers",
	"agenda": ["Opening", "Keynote"],
	"organizer": "Gopher Society",
	"tags": ["go", "conference"]
}`

func normalizedInput() schema.EventInput {
	return schema.EventInput{
		Title:       "Go Conference 2027",
		Slug:        "go-conference-2027",
		Description: "A conference about Go",
		Overview:    "Talks and workshops",
		Image:       "/images/go-conf.png",
		Venue:       "Main Hall",
		Location:    "Berlin",
		Date:        "2027-03-14",
		Time:        "18:30",
		Mode:        "offline",
		Audience:    "developers",
		Agenda:      []string{"Opening", "Keynote"},
		Organizer:   "Gopher Society",
		Tags:        []string{"go", "conference"},
	}
}

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	updated := &models.Event{Title: "Go Conference 2027", Slug: "go-conference-2027"}

	testCases := []struct {
		name           string
		slug           string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			slug:        "go-conference-2026",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, "go-conference-2026", normalizedInput()).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"slug":"go-conference-2027"`)
			},
		},
		{
			name:           "Invalid JSON",
			slug:           "go-conference-2026",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing fields",
			slug:           "go-conference-2026",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:        "Not found",
			slug:        "missing-event",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, "missing-event", normalizedInput()).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "New slug taken",
			slug:        "go-conference-2026",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, "go-conference-2026", normalizedInput()).Return(nil, storage.ErrSlugTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event with this title already exists"}`,
		},
		{
			name:        "Internal server error",
			slug:        "go-conference-2026",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, "go-conference-2026", normalizedInput()).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewEventUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/events/{slug}", New(logger, mockUpdater))

			req, err := http.NewRequest("PUT", "/events/"+tc.slug, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
