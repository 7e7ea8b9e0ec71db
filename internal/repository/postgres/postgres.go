package postgres

import (
	"database/sql"

	"ecobin-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.BinRepository
	repository.RewardRepository
	repository.LedgerRepository
	repository.FriendshipRepository
	repository.TeamRepository
	repository.ChallengeRepository
	repository.PostRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		AccountRepository:      NewAccountRepository(db),
		BinRepository:          NewBinRepository(db),
		RewardRepository:       NewRewardRepository(db),
		LedgerRepository:       NewLedgerRepository(db),
		FriendshipRepository:   NewFriendshipRepository(db),
		TeamRepository:         NewTeamRepository(db),
		ChallengeRepository:    NewChallengeRepository(db),
		PostRepository:         NewPostRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
