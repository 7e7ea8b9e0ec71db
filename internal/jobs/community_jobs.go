package jobs

import (
	"context"
	"fmt"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/logger"
)

// CloseEndedChallenges deactivates community challenges whose end date has
// passed so they stop accepting contributions, then notifies every
// participant of each closed challenge.
func (jr *JobRunner) CloseEndedChallenges() {
	jr.runWithRecovery("CloseEndedChallenges", func() {
		ctx := context.Background()

		closed, err := jr.store.ChallengeRepository.CloseEnded(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to close ended challenges", "error", err)
			return
		}

		notified := 0
		for _, challenge := range closed {
			participants, err := jr.store.ChallengeRepository.ListParticipants(ctx, challenge.ID)
			if err != nil {
				logger.Error("Failed to list challenge participants", "challenge_id", challenge.ID, "error", err)
				continue
			}
			for _, p := range participants {
				jr.notifyChallengeCompleted(ctx, challenge, p)
				notified++
			}
		}

		logger.Info("Closed ended challenges", "count", len(closed), "participants_notified", notified)
	})
}

// notifyChallengeCompleted writes the in-app notification and sends the
// completion email for one participant. Failures are logged and skipped so
// one bad address never stalls the sweep.
func (jr *JobRunner) notifyChallengeCompleted(ctx context.Context, challenge domain.Challenge, p domain.ChallengeParticipant) {
	note := &domain.Notification{
		AccountID: p.AccountID,
		Title:     "Challenge Completed",
		Message:   fmt.Sprintf("%s has ended. You contributed %d points.", challenge.Title, p.PointsContributed),
		Attributes: map[string]string{
			"type":         "CHALLENGE_COMPLETED",
			"challenge_id": fmt.Sprintf("%d", challenge.ID),
		},
	}
	if err := jr.store.NotificationRepository.Create(ctx, note); err != nil {
		logger.Error("Failed to create challenge completion notification", "account_id", p.AccountID, "error", err)
	}

	account, err := jr.store.AccountRepository.GetByID(ctx, p.AccountID)
	if err != nil {
		logger.Error("Failed to load participant account", "account_id", p.AccountID, "error", err)
		return
	}
	if err := jr.services.Email.SendChallengeCompleted(ctx, account.Email, account.FullName, challenge.Title); err != nil {
		logger.Error("Failed to send challenge completion email", "account_id", p.AccountID, "error", err)
	}
}

// SendPickupReminders emails a pickup reminder to every user account.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()

		query := `
			SELECT email, full_name
			FROM accounts
			WHERE role = 'user'
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query accounts for pickup reminders", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		failed := 0
		for rows.Next() {
			var email, name string
			if err := rows.Scan(&email, &name); err != nil {
				logger.Error("Failed to scan account for pickup reminder", "error", err)
				continue
			}
			if err := jr.services.Email.SendPickupReminder(ctx, email, name); err != nil {
				logger.Error("Failed to send pickup reminder", "email", email, "error", err)
				failed++
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating accounts for pickup reminders", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "sent", sent, "failed", failed)
	})
}
