package services

import (
	"testing"
	"time"

	"parklot_backend/internal/models"
	"parklot_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVisitorRate int64 = 5000

// paymentFixture bundles the registries and services behind a payment test.
type paymentFixture struct {
	clientRepo  repositories.ClientRepository
	vehicleRepo repositories.VehicleRepository
	paymentRepo repositories.PaymentRepository
	payments    PaymentService
	memberships MembershipService
}

func newPaymentFixture(t *testing.T, now time.Time) *paymentFixture {
	t.Helper()
	vehicleRepo, clientRepo := newTestFleet(t)
	paymentRepo := repositories.NewPaymentRepository()

	payments := NewPaymentService(paymentRepo, clientRepo, vehicleRepo, testVisitorRate).(*paymentService)
	payments.now = func() time.Time { return now }

	return &paymentFixture{
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
		paymentRepo: paymentRepo,
		payments:    payments,
		memberships: membershipServiceAt(vehicleRepo, now),
	}
}

func TestQuoteUsesMembershipTariff(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))
	_, err := f.memberships.RegisterMembership("ABC123", RegisterMembershipRequest{Tier: "basic", StartDate: "2024-01-01", Tariff: 50000})
	require.NoError(t, err)

	quote, err := f.payments.QuoteCharge("ID-001", "ABC123")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), quote.Amount)
	assert.True(t, quote.Membership)
}

func TestQuoteFallsBackToVisitorRate(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))

	quote, err := f.payments.QuoteCharge("ID-001", "ABC123")
	require.NoError(t, err)
	assert.Equal(t, testVisitorRate, quote.Amount)
	assert.False(t, quote.Membership)
}

func TestQuoteExpiredMembershipChargesVisitorRate(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.March, 15))
	_, err := f.memberships.RegisterMembership("ABC123", RegisterMembershipRequest{Tier: "basic", StartDate: "2024-01-01", Tariff: 50000})
	require.NoError(t, err)

	quote, err := f.payments.QuoteCharge("ID-001", "ABC123")
	require.NoError(t, err)
	assert.Equal(t, testVisitorRate, quote.Amount)
	assert.False(t, quote.Membership)
}

func TestQuoteRejectsAbsentReferences(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))

	_, err := f.payments.QuoteCharge("ID-404", "ABC123")
	assert.ErrorIs(t, err, ErrInvalidPaymentRef)

	_, err = f.payments.QuoteCharge("ID-001", "ZZZ999")
	assert.ErrorIs(t, err, ErrInvalidPaymentRef)
}

func TestQuoteRejectsForeignVehicle(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))
	require.NoError(t, f.clientRepo.CreateClient(&models.Client{ID: "ID-002", FullName: "Bruno Sala"}))

	_, err := f.payments.QuoteCharge("ID-002", "ABC123")
	assert.ErrorIs(t, err, ErrPaymentValidation)
}

func TestRecordPaymentAssignsUniqueIDs(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))

	first, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 5000, Method: "cash", Completed: true})
	require.NoError(t, err)
	second, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 5000, Method: "cash", Completed: true})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRecordPaymentStatusFollowsFlag(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))

	pending, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 5000, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, pending.Status)

	completed, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 5000, Method: "card", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, completed.Status)
}

func TestRecordPaymentValidation(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))

	_, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: -1, Method: "cash"})
	assert.ErrorIs(t, err, ErrPaymentValidation)

	_, err = f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 100, Method: "crypto"})
	assert.ErrorIs(t, err, ErrPaymentValidation)

	_, err = f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-404", Plate: "ABC123", Amount: 100, Method: "cash"})
	assert.ErrorIs(t, err, ErrInvalidPaymentRef)
}

func TestGetPaymentByIDRoundTrip(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))

	recorded, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 5000, Method: "cash", Completed: true})
	require.NoError(t, err)

	found, err := f.payments.GetPaymentByID(recorded.ID)
	require.NoError(t, err)
	assert.Equal(t, recorded.ID, found.ID)
	assert.Equal(t, int64(5000), found.Amount)
}

func TestGetPaymentByIDAbsent(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))

	// Absent lookup is stable and mutates nothing.
	for i := 0; i < 2; i++ {
		_, err := f.payments.GetPaymentByID("no-such-payment")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	}
}

func TestGetPaymentsByClientNewestFirst(t *testing.T) {
	f := newPaymentFixture(t, date(2024, time.January, 15))
	svc := f.payments.(*paymentService)

	svc.now = func() time.Time { return date(2024, time.January, 10) }
	older, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 100, Method: "cash", Completed: true})
	require.NoError(t, err)

	svc.now = func() time.Time { return date(2024, time.January, 20) }
	newer, err := f.payments.RecordPayment(RecordPaymentRequest{ClientID: "ID-001", Plate: "ABC123", Amount: 200, Method: "cash", Completed: true})
	require.NoError(t, err)

	payments, total, err := f.payments.GetPaymentsByClient("ID-001", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, payments, 2)
	assert.Equal(t, newer.ID, payments[0].ID)
	assert.Equal(t, older.ID, payments[1].ID)
}
