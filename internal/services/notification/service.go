// Package notification composes and delivers the booking emails. The
// settlement engine calls it after state is durable; a delivery failure
// is the caller's to log, never to act on.
package notification

import (
	"context"
	"fmt"
	"strings"

	"estatien/internal/services/settlement"
)

// Mailer delivers a plain-text message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service implements settlement.Notifier on top of a Mailer.
type Service struct {
	mailer Mailer
}

func NewService(mailer Mailer) *Service {
	if mailer == nil {
		panic("mailer is required")
	}
	return &Service{mailer: mailer}
}

const dateLayout = "02/01/2006"

func (s *Service) SendBookingConfirmation(ctx context.Context, n settlement.BookingNotice) error {
	name := n.Name
	if name == "" {
		name = "Guest"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "Your booking has been confirmed for the property at %s.\n\n", n.Location)
	b.WriteString("Booking Details:\n")
	fmt.Fprintf(&b, "- Check-in: %s\n", n.CheckIn.Format(dateLayout))
	fmt.Fprintf(&b, "- Check-out: %s\n", n.CheckOut.Format(dateLayout))
	fmt.Fprintf(&b, "- Amount Paid: %s\n\n", FormatNaira(n.Amount))
	b.WriteString("You can view your booking details in your dashboard.\n\n")
	b.WriteString("Best regards,\nEstatien Team")

	return s.mailer.Send(ctx, n.To, "Booking Confirmation", b.String())
}

func (s *Service) SendAgentSettlement(ctx context.Context, n settlement.AgentNotice) error {
	name := n.Name
	if name == "" {
		name = "Agent"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "A booking has been confirmed for your property at %s.\n\n", n.Location)
	b.WriteString("Booking Details:\n")
	fmt.Fprintf(&b, "- Check-in: %s\n", n.CheckIn.Format(dateLayout))
	fmt.Fprintf(&b, "- Check-out: %s\n", n.CheckOut.Format(dateLayout))
	fmt.Fprintf(&b, "- Total Amount: %s\n\n", FormatNaira(n.Amount))
	b.WriteString("Payment Breakdown:\n")
	fmt.Fprintf(&b, "- Admin Commission (10%%): %s\n", FormatNaira(n.AdminCommission))
	fmt.Fprintf(&b, "- Your Earnings (90%%): %s\n\n", FormatNaira(n.AgentAmount))
	b.WriteString("Your earnings have been credited to your account and are available for withdrawal.\n\n")
	b.WriteString("Guest Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", n.GuestName)
	fmt.Fprintf(&b, "- Email: %s\n", n.GuestEmail)
	fmt.Fprintf(&b, "- Number of Guests: %d\n\n", n.Guests)
	b.WriteString("Please ensure the property is ready for the guest's arrival.\n\n")
	b.WriteString("Best regards,\nEstatien Team")

	return s.mailer.Send(ctx, n.To, "New Booking Confirmation", b.String())
}

// FormatNaira renders a major-unit amount with the currency symbol and
// thousands separators, e.g. 50000 -> "₦50,000".
func FormatNaira(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	s = strings.TrimSuffix(s, ".00")

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var out strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 && r != '-' {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}
	return "₦" + out.String() + frac
}
