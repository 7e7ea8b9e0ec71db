package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendRedemptionConfirmation(ctx context.Context, email, name, rewardTitle, code string, expiresAt *time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Your reward: %s", rewardTitle))

	body := fmt.Sprintf("Hello %s,\n\nYou redeemed %s. Your redemption code is:\n\n%s\n", name, rewardTitle, code)
	if expiresAt != nil {
		body += fmt.Sprintf("\nThis code is valid until %s.\n", expiresAt.Format("January 2, 2006"))
	}
	body += "\nThanks for recycling,\nThe EcoBin Team"
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send redemption confirmation: %w", err)
	}

	return nil
}

func (s *emailService) SendChallengeCompleted(ctx context.Context, email, name, challengeTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Challenge complete: %s", challengeTitle))

	body := fmt.Sprintf("Hello %s,\n\nCongratulations! The challenge '%s' you were part of has reached its goal.\n\nThanks for recycling,\nThe EcoBin Team", name, challengeTitle)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send challenge completion email: %w", err)
	}

	return nil
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Recycling pickup this week")

	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that recycling pickup happens this week in your area. Get your recyclables ready!\n\nThanks for recycling,\nThe EcoBin Team", name)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send pickup reminder: %w", err)
	}

	return nil
}
