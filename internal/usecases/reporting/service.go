package reporting

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sportomic/metrics-api/infrastructure/repository"
	"github.com/sportomic/metrics-api/internal/domain"
	"github.com/sportomic/metrics-api/pkg/utils"
)

// Service implementa o motor de métricas sobre os repositórios do banco.
// O serviço não guarda estado entre chamadas: cada cálculo é uma função
// pura do filtro e do conjunto de registros lido na hora.
type Service struct {
	bookingRepository     repository.BookingRepository
	transactionRepository repository.TransactionRepository
	memberRepository      repository.MemberRepository
	venueRepository       repository.VenueRepository
}

func NewService(
	bookingRepo repository.BookingRepository,
	transactionRepo repository.TransactionRepository,
	memberRepo repository.MemberRepository,
	venueRepo repository.VenueRepository,
) Reporter {
	return &Service{
		bookingRepository:     bookingRepo,
		transactionRepository: transactionRepo,
		memberRepository:      memberRepo,
		venueRepository:       venueRepo,
	}
}

// GeneralMetrics calcula o snapshot de métricas para a janela informada.
// Janelas invertidas (end < start) não são validadas: o resultado natural
// é um conjunto vazio, com contagens 0 e percentuais 0.0.
func (s *Service) GeneralMetrics(filters *domain.MetricsFilters) (*domain.MetricsSnapshot, error) {
	if filters == nil {
		filters = &domain.MetricsFilters{}
	}

	bookings, err := s.bookingRepository.ListByPeriod(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar reservas do período")
	}

	totalBookings := len(bookings)
	confirmed := make([]*domain.Booking, 0, len(bookings))
	bookingIDs := make([]int, 0, len(bookings))
	for _, booking := range bookings {
		bookingIDs = append(bookingIDs, booking.ID)
		if booking.IsConfirmed() {
			confirmed = append(confirmed, booking)
		}
	}

	// Com a lista de ids vazia o repositório não restringe por booking_id e
	// todas as transações da janela entram. O alargamento é contratual.
	transactions, err := s.transactionRepository.ListByPeriod(filters.StartDate, filters.EndDate, bookingIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar transações do período")
	}

	var bookingRevenue, coachingRevenue, totalRevenue, refundsAmount decimal.Decimal
	refundsCount := 0

	for _, tx := range transactions {
		status := domain.ParseTransactionStatus(tx.Status)
		switch {
		case status == domain.TransactionSuccess:
			totalRevenue = totalRevenue.Add(tx.Amount)

			switch domain.ParseTransactionType(tx.Type) {
			case domain.TransactionTypeBooking:
				bookingRevenue = bookingRevenue.Add(tx.Amount)
			case domain.TransactionTypeCoaching:
				coachingRevenue = coachingRevenue.Add(tx.Amount)
			}
		case status.IsNegative():
			refundsAmount = refundsAmount.Add(tx.Amount)
			refundsCount++
		}
	}

	couponRedemptions := 0
	bookingsPerMember := make(map[int]int)
	for _, booking := range confirmed {
		if booking.HasCoupon() {
			couponRedemptions++
		}
		bookingsPerMember[booking.MemberID]++
	}

	membersWithBooking := len(bookingsPerMember)
	membersWithRepeat := 0
	for _, count := range bookingsPerMember {
		if count > 1 {
			membersWithRepeat++
		}
	}

	counts, err := s.memberCounts()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar membros")
	}

	trialConversionRate := 0.0
	if counts.Trials > 0 {
		trialConversionRate = float64(counts.Converted) / float64(counts.Trials) * 100
	}

	repeatBookingPct := 0.0
	if membersWithBooking > 0 {
		repeatBookingPct = float64(membersWithRepeat) / float64(membersWithBooking) * 100
	}

	slotsUtilization := 0.0
	if totalBookings > 0 {
		slotsUtilization = float64(len(confirmed)) / float64(totalBookings) * 100
	}

	return &domain.MetricsSnapshot{
		ActiveMembers:          counts.Active,
		InactiveMembers:        counts.Inactive,
		Bookings:               len(confirmed),
		BookingRevenue:         moneyOut(bookingRevenue),
		CoachingRevenue:        moneyOut(coachingRevenue),
		TotalRevenue:           moneyOut(totalRevenue),
		RepeatBookingPct:       utils.RoundWithTwoDecimalPlace(repeatBookingPct),
		SlotsUtilizationPct:    utils.RoundWithTwoDecimalPlace(slotsUtilization),
		CouponRedemption:       couponRedemptions,
		TrialConversionRatePct: utils.RoundWithTwoDecimalPlace(trialConversionRate),
		RefundsDisputesAmount:  moneyOut(refundsAmount),
		RefundsDisputesCount:   refundsCount,
	}, nil
}

// RevenueTimeseries calcula a receita por dia das transações "Success" da
// janela, com os filtros opcionais aplicados via join com a reserva.
// Dias sem transação qualificada não aparecem (série esparsa).
func (s *Service) RevenueTimeseries(filters *domain.MetricsFilters) ([]domain.RevenuePoint, error) {
	if filters == nil {
		filters = &domain.MetricsFilters{}
	}

	transactions, err := s.transactionRepository.ListWithBookingFilter(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar transações do período")
	}

	revenueByDay := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		// Comparação literal e sensível a maiúsculas, ao contrário das
		// métricas gerais, que normalizam o status. A assimetria reproduz
		// o comportamento original e é mantida de propósito.
		if tx.Status != domain.RawTransactionStatusSuccess {
			continue
		}

		day := tx.TransactionDate.Format(time.DateOnly)
		revenueByDay[day] = revenueByDay[day].Add(tx.Amount)
	}

	days := make([]string, 0, len(revenueByDay))
	for day := range revenueByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	points := make([]domain.RevenuePoint, 0, len(days))
	for _, day := range days {
		points = append(points, domain.RevenuePoint{
			Date:    day,
			Revenue: moneyOut(revenueByDay[day]),
		})
	}

	return points, nil
}

// ListVenues repassa as unidades do banco. A ordem não faz parte do contrato.
func (s *Service) ListVenues() ([]*domain.Venue, error) {
	venues, err := s.venueRepository.List()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar unidades")
	}
	return venues, nil
}

// ListSports retorna os ids de esporte distintos em ordem crescente.
// A ordenação acontece aqui porque a ordem vinda do banco não é confiável.
func (s *Service) ListSports() ([]int, error) {
	ids, err := s.bookingRepository.DistinctSportIDs()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar esportes")
	}

	sort.Ints(ids)
	return ids, nil
}

func (s *Service) memberCounts() (*domain.MemberCounts, error) {
	active, err := s.memberRepository.CountByStatus(domain.MemberStatusActive)
	if err != nil {
		return nil, err
	}

	inactive, err := s.memberRepository.CountByStatus(domain.MemberStatusInactive)
	if err != nil {
		return nil, err
	}

	trials, err := s.memberRepository.CountTrialUsers()
	if err != nil {
		return nil, err
	}

	converted, err := s.memberRepository.CountConvertedFromTrial()
	if err != nil {
		return nil, err
	}

	return &domain.MemberCounts{
		Active:    active,
		Inactive:  inactive,
		Trials:    trials,
		Converted: converted,
	}, nil
}

// moneyOut converte o acumulado decimal para float64 com 2 casas.
// Única fronteira onde dinheiro vira ponto flutuante.
func moneyOut(value decimal.Decimal) float64 {
	out, _ := value.Round(2).Float64()
	return out
}
