package mailer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"seva-booking/internal/data/entity"
	"seva-booking/pkg/utils"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// subjectDateLayout matches the long-form date in reminder subjects and bodies
const subjectDateLayout = "Monday, 2 January 2006"

// smtpTimeout bounds dial, greeting and send
const smtpTimeout = 10 * time.Second

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Mailer sends pooja reminder emails to a fixed distribution list.
type Mailer struct {
	client     *mail.Client
	from       string
	recipients []string
	log        *zap.Logger
}

// ParseRecipients splits a comma-separated address list, trims whitespace
// and drops entries that do not look like email addresses.
func ParseRecipients(raw string) []string {
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		if !emailRe.MatchString(addr) {
			continue
		}
		out = append(out, addr)
	}
	return out
}

func New(cfg utils.EmailConfig, recipientList string, log *zap.Logger) (*Mailer, error) {
	recipients := ParseRecipients(recipientList)
	if len(recipients) == 0 {
		return nil, errors.New("mailer: no valid recipient addresses configured")
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("mailer: create smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &Mailer{
		client:     client,
		from:       from,
		recipients: recipients,
		log:        log.With(zap.String("component", "mailer")),
	}, nil
}

// Send delivers a reminder for one booking to the whole distribution list.
func (m *Mailer) Send(ctx context.Context, booking *entity.Booking) error {
	formattedDate := booking.PoojaDate.Format(subjectDateLayout)

	msg := mail.NewMsg()
	if err := msg.FromFormat("Seva Booking System", m.from); err != nil {
		return fmt.Errorf("mailer: set from address: %w", err)
	}
	if err := msg.To(m.recipients...); err != nil {
		return fmt.Errorf("mailer: set recipients: %w", err)
	}

	msg.Subject(fmt.Sprintf("Reminder: %s Pooja Tomorrow (%s)", booking.SevaType, formattedDate))
	msg.SetBodyString(mail.TypeTextPlain, plainBody(booking, formattedDate))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(booking, formattedDate))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send reminder for booking %d: %w", booking.ID, err)
	}

	m.log.Info("Reminder email sent",
		zap.Int64("booking_id", booking.ID),
		zap.String("seva_type", booking.SevaType),
		zap.Strings("to", m.recipients),
	)

	return nil
}

func plainBody(b *entity.Booking, formattedDate string) string {
	return fmt.Sprintf(`REMINDER: %s Pooja Tomorrow (%s)

Booking Details:
- Sevakartha: %s
- Department: %s
- Seva Type: %s
- Date: %s

Important Notes:
- Please arrive 15 minutes before the scheduled time
- Bring the required pooja materials
- Make necessary payment arrangements

This is an automated reminder from the Seva Booking System.
`, b.SevaType, formattedDate, b.SevakarthaName, b.Department, b.SevaType, formattedDate)
}

func htmlBody(b *entity.Booking, formattedDate string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="text-align: center; background-color: #4CAF50; color: white; padding: 15px;">Pooja Reminder</h1>
  <h2>Reminder: %s is scheduled for tomorrow!</h2>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr><td style="padding: 8px; border-bottom: 1px solid #ddd;"><strong>Sevakartha:</strong></td><td style="padding: 8px; border-bottom: 1px solid #ddd;">%s</td></tr>
    <tr><td style="padding: 8px; border-bottom: 1px solid #ddd;"><strong>Department:</strong></td><td style="padding: 8px; border-bottom: 1px solid #ddd;">%s</td></tr>
    <tr><td style="padding: 8px; border-bottom: 1px solid #ddd;"><strong>Seva Type:</strong></td><td style="padding: 8px; border-bottom: 1px solid #ddd;">%s</td></tr>
    <tr><td style="padding: 8px; border-bottom: 1px solid #ddd;"><strong>Date:</strong></td><td style="padding: 8px; border-bottom: 1px solid #ddd;">%s</td></tr>
  </table>
  <ul>
    <li>Please arrive 15 minutes before the scheduled time</li>
    <li>Bring the required pooja materials as per the seva type</li>
    <li>Make necessary payment arrangements with the priest</li>
  </ul>
  <p style="color: #666; font-size: 14px; text-align: center;">
    This is an automated reminder from the Seva Booking System.<br>
    Please do not reply to this email.
  </p>
</div>`, b.SevaType, b.SevakarthaName, b.Department, b.SevaType, formattedDate)
}
