package notification

import (
	"context"
	"testing"
	"time"

	"estatien/internal/services/settlement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *captureMailer) Send(ctx context.Context, to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return m.err
}

func stay() (time.Time, time.Time) {
	checkIn := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	return checkIn, checkIn.AddDate(0, 0, 5)
}

func TestSendBookingConfirmation(t *testing.T) {
	mailer := &captureMailer{}
	svc := NewService(mailer)
	checkIn, checkOut := stay()

	err := svc.SendBookingConfirmation(context.Background(), settlement.BookingNotice{
		To:       "guest@example.com",
		Name:     "Gbenga Guest",
		Location: "Lekki Phase 1, Lagos",
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Amount:   50_000,
		Currency: "NGN",
	})

	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", mailer.to)
	assert.Equal(t, "Booking Confirmation", mailer.subject)
	assert.Contains(t, mailer.body, "Dear Gbenga Guest,")
	assert.Contains(t, mailer.body, "Lekki Phase 1, Lagos")
	assert.Contains(t, mailer.body, "Check-in: 01/06/2024")
	assert.Contains(t, mailer.body, "Check-out: 06/06/2024")
	assert.Contains(t, mailer.body, "Amount Paid: ₦50,000")
	assert.Contains(t, mailer.body, "Estatien Team")
}

func TestSendAgentSettlement(t *testing.T) {
	mailer := &captureMailer{}
	svc := NewService(mailer)
	checkIn, checkOut := stay()

	err := svc.SendAgentSettlement(context.Background(), settlement.AgentNotice{
		To:              "agent@example.com",
		Name:            "Ada Agent",
		Location:        "Lekki Phase 1, Lagos",
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Amount:          50_000,
		AdminCommission: 5_000,
		AgentAmount:     45_000,
		GuestName:       "Gbenga Guest",
		GuestEmail:      "guest@example.com",
		Guests:          3,
	})

	require.NoError(t, err)
	assert.Equal(t, "agent@example.com", mailer.to)
	assert.Equal(t, "New Booking Confirmation", mailer.subject)
	assert.Contains(t, mailer.body, "Total Amount: ₦50,000")
	assert.Contains(t, mailer.body, "Admin Commission (10%): ₦5,000")
	assert.Contains(t, mailer.body, "Your Earnings (90%): ₦45,000")
	assert.Contains(t, mailer.body, "Name: Gbenga Guest")
	assert.Contains(t, mailer.body, "Number of Guests: 3")
}

func TestSendFallbackNames(t *testing.T) {
	mailer := &captureMailer{}
	svc := NewService(mailer)

	require.NoError(t, svc.SendBookingConfirmation(context.Background(), settlement.BookingNotice{
		To: "guest@example.com",
	}))
	assert.Contains(t, mailer.body, "Dear Guest,")

	require.NoError(t, svc.SendAgentSettlement(context.Background(), settlement.AgentNotice{
		To: "agent@example.com",
	}))
	assert.Contains(t, mailer.body, "Dear Agent,")
}

func TestFormatNaira(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{5_000, "₦5,000"},
		{45_000, "₦45,000"},
		{1_234_567, "₦1,234,567"},
		{50_000.5, "₦50,000.50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatNaira(c.amount))
	}
}
