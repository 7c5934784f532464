package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sportomic/metrics-api/infrastructure/repository/mocks"
	"github.com/sportomic/metrics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Dataset de exemplo usado pelo script de seed: 8 reservas e 8 transações
// entre 2025-12-10 e 2025-12-15. Os valores esperados nos testes foram
// derivados manualmente deste conjunto.
func seedBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, VenueID: 1, SportID: 1, MemberID: 1, BookingDate: time.Date(2025, 12, 12, 10, 0, 0, 0, time.UTC), Amount: money("500.00"), Status: "Completed"},
		{ID: 2, VenueID: 2, SportID: 2, MemberID: 2, BookingDate: time.Date(2025, 12, 13, 14, 0, 0, 0, time.UTC), Amount: money("1200.00"), Status: "Confirmed"},
		{ID: 3, VenueID: 3, SportID: 3, MemberID: 7, BookingDate: time.Date(2025, 12, 13, 7, 0, 0, 0, time.UTC), Amount: money("300.00"), CouponCode: stringPtr("EARLYBIRD"), Status: "Confirmed"},
		{ID: 4, VenueID: 4, SportID: 4, MemberID: 4, BookingDate: time.Date(2025, 12, 13, 18, 0, 0, 0, time.UTC), Amount: money("400.00"), CouponCode: stringPtr("WELCOME50"), Status: "Confirmed"},
		{ID: 5, VenueID: 5, SportID: 5, MemberID: 5, BookingDate: time.Date(2025, 12, 14, 9, 0, 0, 0, time.UTC), Amount: money("1500.00"), Status: "Confirmed"},
		{ID: 6, VenueID: 1, SportID: 1, MemberID: 1, BookingDate: time.Date(2025, 12, 13, 10, 0, 0, 0, time.UTC), Amount: money("500.00"), CouponCode: stringPtr("SAVE10"), Status: "Confirmed"},
		{ID: 7, VenueID: 2, SportID: 2, MemberID: 8, BookingDate: time.Date(2025, 12, 15, 16, 0, 0, 0, time.UTC), Amount: money("600.00"), Status: "Confirmed"},
		{ID: 8, VenueID: 3, SportID: 3, MemberID: 3, BookingDate: time.Date(2025, 12, 10, 15, 0, 0, 0, time.UTC), Amount: money("300.00"), Status: "Cancelled"},
	}
}

func seedTransactions() []*domain.Transaction {
	return []*domain.Transaction{
		{ID: 101, BookingID: 1, Type: "Booking", Amount: money("500.00"), Status: "Success", TransactionDate: time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)},
		{ID: 102, BookingID: 2, Type: "Coaching", Amount: money("1200.00"), Status: "Success", TransactionDate: time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)},
		{ID: 103, BookingID: 3, Type: "Booking", Amount: money("270.00"), Status: "Success", TransactionDate: time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)},
		{ID: 104, BookingID: 4, Type: "Booking", Amount: money("200.00"), Status: "Success", TransactionDate: time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)},
		{ID: 105, BookingID: 5, Type: "Booking", Amount: money("1500.00"), Status: "Success", TransactionDate: time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)},
		{ID: 106, BookingID: 6, Type: "Booking", Amount: money("450.00"), Status: "Success", TransactionDate: time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)},
		{ID: 107, BookingID: 7, Type: "Coaching", Amount: money("600.00"), Status: "Dispute", TransactionDate: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 108, BookingID: 8, Type: "Booking", Amount: money("300.00"), Status: "Refunded", TransactionDate: time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)},
	}
}

func expectMemberCounts(mockMemberRepo *mocks.MockMemberRepository) {
	mockMemberRepo.EXPECT().CountByStatus(domain.MemberStatusActive).Return(6, nil)
	mockMemberRepo.EXPECT().CountByStatus(domain.MemberStatusInactive).Return(2, nil)
	mockMemberRepo.EXPECT().CountTrialUsers().Return(4, nil)
	mockMemberRepo.EXPECT().CountConvertedFromTrial().Return(3, nil)
}

func TestService_GeneralMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := mocks.NewMockBookingRepository(ctrl)
	mockTransactionRepo := mocks.NewMockTransactionRepository(ctrl)
	mockMemberRepo := mocks.NewMockMemberRepository(ctrl)
	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)

	service := NewService(mockBookingRepo, mockTransactionRepo, mockMemberRepo, mockVenueRepo)

	tests := []struct {
		name     string
		filters  *domain.MetricsFilters
		setup    func()
		validate func(t *testing.T, result *domain.MetricsSnapshot, err error)
	}{
		{
			name:    "Dataset de exemplo sem filtros - snapshot completo de 12 campos",
			filters: nil,
			setup: func() {
				mockBookingRepo.EXPECT().
					ListByPeriod(&domain.MetricsFilters{}).
					Return(seedBookings(), nil)

				// A lista de ids segue a ordem das reservas retornadas
				mockTransactionRepo.EXPECT().
					ListByPeriod(gomock.Nil(), gomock.Nil(), []int{1, 2, 3, 4, 5, 6, 7, 8}).
					Return(seedTransactions(), nil)

				expectMemberCounts(mockMemberRepo)
			},
			validate: func(t *testing.T, result *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)

				// 7 das 8 reservas contam (a cancelada fica de fora)
				assert.Equal(t, 6, result.ActiveMembers)
				assert.Equal(t, 2, result.InactiveMembers)
				assert.Equal(t, 7, result.Bookings)

				// Receita: só transações Success; Dispute e Refunded viram estorno
				assert.Equal(t, 2920.0, result.BookingRevenue)
				assert.Equal(t, 1200.0, result.CoachingRevenue)
				assert.Equal(t, 4120.0, result.TotalRevenue)
				assert.Equal(t, 900.0, result.RefundsDisputesAmount)
				assert.Equal(t, 2, result.RefundsDisputesCount)

				// 3 cupons entre as confirmadas; 1 de 6 membros repetiu reserva
				assert.Equal(t, 3, result.CouponRedemption)
				assert.InDelta(t, 16.67, result.RepeatBookingPct, 0.001)
				assert.InDelta(t, 87.5, result.SlotsUtilizationPct, 0.001)
				assert.InDelta(t, 75.0, result.TrialConversionRatePct, 0.001)
			},
		},
		{
			name:    "Janela sem reservas - busca de transações sem restrição de booking_id",
			filters: &domain.MetricsFilters{StartDate: datePtr(2026, 1, 1), EndDate: datePtr(2026, 1, 31)},
			setup: func() {
				mockBookingRepo.EXPECT().
					ListByPeriod(gomock.Any()).
					Return([]*domain.Booking{}, nil)

				// Lista de ids vazia: o repositório não restringe por booking_id
				mockTransactionRepo.EXPECT().
					ListByPeriod(gomock.Any(), gomock.Any(), []int{}).
					Return([]*domain.Transaction{}, nil)

				expectMemberCounts(mockMemberRepo)
			},
			validate: func(t *testing.T, result *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)

				// Contagens de membros são globais e não dependem da janela
				assert.Equal(t, 6, result.ActiveMembers)
				assert.Equal(t, 2, result.InactiveMembers)
				assert.InDelta(t, 75.0, result.TrialConversionRatePct, 0.001)

				assert.Equal(t, 0, result.Bookings)
				assert.Equal(t, 0.0, result.BookingRevenue)
				assert.Equal(t, 0.0, result.CoachingRevenue)
				assert.Equal(t, 0.0, result.TotalRevenue)
				assert.Equal(t, 0, result.CouponRedemption)
				assert.Equal(t, 0.0, result.RepeatBookingPct)
				assert.Equal(t, 0.0, result.SlotsUtilizationPct)
				assert.Equal(t, 0.0, result.RefundsDisputesAmount)
				assert.Equal(t, 0, result.RefundsDisputesCount)
			},
		},
		{
			name:    "Janela invertida não é validada - resultado vazio com percentuais zero",
			filters: &domain.MetricsFilters{StartDate: datePtr(2025, 12, 31), EndDate: datePtr(2025, 12, 1)},
			setup: func() {
				mockBookingRepo.EXPECT().
					ListByPeriod(gomock.Any()).
					Return([]*domain.Booking{}, nil)

				mockTransactionRepo.EXPECT().
					ListByPeriod(gomock.Any(), gomock.Any(), []int{}).
					Return([]*domain.Transaction{}, nil)

				expectMemberCounts(mockMemberRepo)
			},
			validate: func(t *testing.T, result *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, result.Bookings)
				assert.Equal(t, 0.0, result.TotalRevenue)
				assert.Equal(t, 0.0, result.SlotsUtilizationPct)
			},
		},
		{
			name:    "Status fora do vocabulário não entra em receita nem em estorno",
			filters: nil,
			setup: func() {
				mockBookingRepo.EXPECT().
					ListByPeriod(gomock.Any()).
					Return([]*domain.Booking{
						{ID: 1, MemberID: 1, Amount: money("500.00"), Status: "Confirmed"},
					}, nil)

				mockTransactionRepo.EXPECT().
					ListByPeriod(gomock.Any(), gomock.Any(), []int{1}).
					Return([]*domain.Transaction{
						{ID: 101, BookingID: 1, Type: "Booking", Amount: money("500.00"), Status: "Pending", TransactionDate: time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)},
					}, nil)

				expectMemberCounts(mockMemberRepo)
			},
			validate: func(t *testing.T, result *domain.MetricsSnapshot, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, result.TotalRevenue)
				assert.Equal(t, 0.0, result.RefundsDisputesAmount)
				assert.Equal(t, 0, result.RefundsDisputesCount)
			},
		},
		{
			name:    "Erro do repositório de reservas é propagado",
			filters: nil,
			setup: func() {
				mockBookingRepo.EXPECT().
					ListByPeriod(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.MetricsSnapshot, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), "erro ao buscar reservas do período")
			},
		},
		{
			name:    "Erro na contagem de membros é propagado",
			filters: nil,
			setup: func() {
				mockBookingRepo.EXPECT().
					ListByPeriod(gomock.Any()).
					Return([]*domain.Booking{}, nil)

				mockTransactionRepo.EXPECT().
					ListByPeriod(gomock.Any(), gomock.Any(), []int{}).
					Return([]*domain.Transaction{}, nil)

				mockMemberRepo.EXPECT().
					CountByStatus(domain.MemberStatusActive).
					Return(0, errors.New("timeout"))
			},
			validate: func(t *testing.T, result *domain.MetricsSnapshot, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GeneralMetrics(tt.filters)
			tt.validate(t, result, err)
		})
	}
}

func TestService_RevenueTimeseries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := mocks.NewMockBookingRepository(ctrl)
	mockTransactionRepo := mocks.NewMockTransactionRepository(ctrl)
	mockMemberRepo := mocks.NewMockMemberRepository(ctrl)
	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)

	service := NewService(mockBookingRepo, mockTransactionRepo, mockMemberRepo, mockVenueRepo)

	tests := []struct {
		name     string
		filters  *domain.MetricsFilters
		setup    func()
		validate func(t *testing.T, result []domain.RevenuePoint, err error)
	}{
		{
			name:    "Dataset de exemplo - série esparsa em ordem crescente",
			filters: nil,
			setup: func() {
				mockTransactionRepo.EXPECT().
					ListWithBookingFilter(&domain.MetricsFilters{}).
					Return(seedTransactions(), nil)
			},
			validate: func(t *testing.T, result []domain.RevenuePoint, err error) {
				assert.NoError(t, err)

				// Dispute (12-15) e Refunded (12-10) ficam de fora; os dias
				// sem transação qualificada não aparecem na série
				assert.Equal(t, []domain.RevenuePoint{
					{Date: "2025-12-12", Revenue: 500.0},
					{Date: "2025-12-13", Revenue: 2120.0},
					{Date: "2025-12-14", Revenue: 1500.0},
				}, result)
			},
		},
		{
			name:    "Comparação literal com o status gravado - minúsculas ficam de fora",
			filters: nil,
			setup: func() {
				mockTransactionRepo.EXPECT().
					ListWithBookingFilter(gomock.Any()).
					Return([]*domain.Transaction{
						{ID: 1, BookingID: 1, Type: "Booking", Amount: money("100.00"), Status: "Success", TransactionDate: time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)},
						{ID: 2, BookingID: 2, Type: "Booking", Amount: money("200.00"), Status: "success", TransactionDate: time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)},
						{ID: 3, BookingID: 3, Type: "Booking", Amount: money("300.00"), Status: "SUCCESS", TransactionDate: time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)},
					}, nil)
			},
			validate: func(t *testing.T, result []domain.RevenuePoint, err error) {
				assert.NoError(t, err)

				// Só o literal "Success" entra, diferente das métricas gerais
				assert.Equal(t, []domain.RevenuePoint{
					{Date: "2025-12-12", Revenue: 100.0},
				}, result)
			},
		},
		{
			name:    "Filtros de unidade e esporte são repassados ao repositório",
			filters: &domain.MetricsFilters{VenueID: intPtr(2), SportID: intPtr(2)},
			setup: func() {
				mockTransactionRepo.EXPECT().
					ListWithBookingFilter(&domain.MetricsFilters{VenueID: intPtr(2), SportID: intPtr(2)}).
					Return([]*domain.Transaction{}, nil)
			},
			validate: func(t *testing.T, result []domain.RevenuePoint, err error) {
				assert.NoError(t, err)
				assert.Empty(t, result)
			},
		},
		{
			name:    "Erro do repositório de transações é propagado",
			filters: nil,
			setup: func() {
				mockTransactionRepo.EXPECT().
					ListWithBookingFilter(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result []domain.RevenuePoint, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.RevenueTimeseries(tt.filters)
			tt.validate(t, result, err)
		})
	}
}

func TestService_ListVenues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := mocks.NewMockBookingRepository(ctrl)
	mockTransactionRepo := mocks.NewMockTransactionRepository(ctrl)
	mockMemberRepo := mocks.NewMockMemberRepository(ctrl)
	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)

	service := NewService(mockBookingRepo, mockTransactionRepo, mockMemberRepo, mockVenueRepo)

	venues := []*domain.Venue{
		{ID: 1, Name: "Grand Slam Arena", Location: "North Hills"},
		{ID: 2, Name: "City Kickers Turf", Location: "Downtown"},
	}

	mockVenueRepo.EXPECT().List().Return(venues, nil)

	result, err := service.ListVenues()
	assert.NoError(t, err)
	assert.Equal(t, venues, result)
}

func TestService_ListSports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookingRepo := mocks.NewMockBookingRepository(ctrl)
	mockTransactionRepo := mocks.NewMockTransactionRepository(ctrl)
	mockMemberRepo := mocks.NewMockMemberRepository(ctrl)
	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)

	service := NewService(mockBookingRepo, mockTransactionRepo, mockMemberRepo, mockVenueRepo)

	// A ordem vinda do banco não é confiável; o serviço ordena
	mockBookingRepo.EXPECT().DistinctSportIDs().Return([]int{3, 1, 5, 2, 4}, nil)

	result, err := service.ListSports()
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, result)
}
