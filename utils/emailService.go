package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender delivers one transactional email. Production uses SendGrid;
// tests substitute an in-memory fake.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

// SendGridSender is the production EmailSender.
type SendGridSender struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGridSender(apiKey, fromName, fromEmail string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SendGridSender) Send(to, subject, htmlBody string) error {
	from := sgmail.NewEmail(s.fromName, s.fromEmail)
	message := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail("", to), "", htmlBody)

	resp, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// Mailer wraps an EmailSender with the storefront's transactional triggers.
// Every trigger is fire-and-forget: a failed send is logged and never blocks
// or rolls back the operation that triggered it.
type Mailer struct {
	sender EmailSender
}

func NewMailer(sender EmailSender) *Mailer {
	return &Mailer{sender: sender}
}

// HTML Wrapper for a consistent storefront look
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F4F4F4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #059669; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #059669; margin-top: 0; }
			.footer { background-color: #F4F4F4; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #10b981; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.receipt-box { background: #F8F9FA; padding: 15px; border-radius: 4px; border-left: 4px solid #10b981; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnHub. All rights reserved.<br>
				This is a transactional message for your account. Please keep receipts for your records.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func (m *Mailer) SendWelcomeEmail(email, name string) {
	subject := "Welcome to LearnHub"
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Welcome to <strong>LearnHub</strong>! Your account has been created successfully.</p>
		<p>Browse the catalog, pick a course, and start learning at your own pace.</p>
		<p>If you have any questions, just reply to this email.</p>
	`, name)

	go func() {
		if err := m.sender.Send(email, subject, getEmailTemplate("Welcome Onboard!", body)); err != nil {
			log.Printf("[EMAIL] Welcome email to %s failed: %v", email, err)
		}
	}()
}

// 2. Purchase Receipt / Enrollment Confirmation
func (m *Mailer) SendPurchaseEmail(email, name, courseTitle string, amount int64) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Thank you for enrolling in <strong>%s</strong>! Your payment has been processed and you now have full, lifetime access to the course.</p>
		<div class="receipt-box">
			<strong>Purchase Details</strong><br>
			Course: %s<br>
			Amount Paid: $%.2f<br>
			Status: Confirmed
		</div>
		<p>You can start watching immediately from your dashboard.</p>
	`, name, courseTitle, courseTitle, float64(amount)/100)

	go func() {
		if err := m.sender.Send(email, subject, getEmailTemplate("Course Enrollment Confirmed!", body)); err != nil {
			log.Printf("[EMAIL] Purchase email to %s failed: %v", email, err)
		}
	}()
}
