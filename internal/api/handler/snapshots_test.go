package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sportomic/metrics-api/infrastructure/repository/mocks"
	"github.com/sportomic/metrics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetMetricsSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockMetricsSnapshotRepository(ctrl)

	day := time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)
	venueID := 2

	tests := []struct {
		name           string
		query          string
		setup          func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Snapshot único por data",
			query: "date=2025-12-13&venue_id=2",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByVenueAndDate(&venueID, day).
					Return(&domain.MetricsSnapshotEntry{
						ID:      1,
						VenueID: &venueID,
						Date:    day,
						Metrics: &domain.MetricsSnapshot{Bookings: 4},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bookings":4`,
		},
		{
			name:  "Snapshot inexistente responde 404",
			query: "date=2025-12-25",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByVenueAndDate(gomock.Nil(), gomock.Any()).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"RES_001"`,
		},
		{
			name:  "Faixa de datas retorna a lista em ordem",
			query: "start_date=2025-12-10&end_date=2025-12-15",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetByDateRange(gomock.Nil(), gomock.Any(), gomock.Any()).
					Return([]*domain.MetricsSnapshotEntry{
						{ID: 1, Date: day, Metrics: &domain.MetricsSnapshot{Bookings: 4}},
						{ID: 2, Date: day.AddDate(0, 0, 1), Metrics: &domain.MetricsSnapshot{Bookings: 1}},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bookings":1`,
		},
		{
			name:           "Sem date nem start_date responde 400",
			query:          "",
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"VAL_002"`,
		},
		{
			name:           "Data fora do formato ISO responde 400",
			query:          "date=13/12/2025",
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"VAL_003"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			r := httptest.NewRequest(http.MethodGet, "/v1/metrics/snapshots?"+tt.query, nil)
			w := httptest.NewRecorder()

			GetMetricsSnapshots(mockSnapshotRepo).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
