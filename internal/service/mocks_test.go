package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ecobin-backend/internal/domain"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) Search(ctx context.Context, query string, page, pageSize int32) ([]domain.Account, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.Account), args.Get(1).(int32), args.Error(2)
}
func (m *MockAccountRepo) Leaderboard(ctx context.Context, limit int32) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}
func (m *MockAccountRepo) Rank(ctx context.Context, accountID int32) (int32, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int32), args.Error(1)
}

// MockBinRepo
type MockBinRepo struct {
	mock.Mock
}

func (m *MockBinRepo) Create(ctx context.Context, bin *domain.Bin) error {
	args := m.Called(ctx, bin)
	return args.Error(0)
}
func (m *MockBinRepo) GetByID(ctx context.Context, id int32) (*domain.Bin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bin), args.Error(1)
}
func (m *MockBinRepo) GetByQRCode(ctx context.Context, qrCode string) (*domain.Bin, error) {
	args := m.Called(ctx, qrCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bin), args.Error(1)
}
func (m *MockBinRepo) Update(ctx context.Context, bin *domain.Bin) error {
	args := m.Called(ctx, bin)
	return args.Error(0)
}
func (m *MockBinRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBinRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Bin, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Bin), args.Get(1).(int32), args.Error(2)
}
func (m *MockBinRepo) UpdateStatus(ctx context.Context, id int32, status domain.BinStatus, fillLevel int32) error {
	args := m.Called(ctx, id, status, fillLevel)
	return args.Error(0)
}

// MockRewardRepo
type MockRewardRepo struct {
	mock.Mock
}

func (m *MockRewardRepo) Create(ctx context.Context, reward *domain.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}
func (m *MockRewardRepo) GetByID(ctx context.Context, id int32) (*domain.Reward, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}
func (m *MockRewardRepo) Update(ctx context.Context, reward *domain.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}
func (m *MockRewardRepo) ListActive(ctx context.Context) ([]domain.Reward, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reward), args.Error(1)
}
func (m *MockRewardRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Reward, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Reward), args.Get(1).(int32), args.Error(2)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) RecordSession(ctx context.Context, session *domain.RecyclingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockLedgerRepo) CreateRedemption(ctx context.Context, redemption *domain.Redemption) error {
	args := m.Called(ctx, redemption)
	return args.Error(0)
}
func (m *MockLedgerRepo) GetBalance(ctx context.Context, accountID int32) (int32, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockLedgerRepo) ListSessions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.RecyclingSession, int32, error) {
	args := m.Called(ctx, accountID, page, pageSize)
	return args.Get(0).([]domain.RecyclingSession), args.Get(1).(int32), args.Error(2)
}
func (m *MockLedgerRepo) ListRedemptions(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Redemption, int32, error) {
	args := m.Called(ctx, accountID, page, pageSize)
	return args.Get(0).([]domain.Redemption), args.Get(1).(int32), args.Error(2)
}
func (m *MockLedgerRepo) GetRedemptionByID(ctx context.Context, id int32) (*domain.Redemption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Redemption), args.Error(1)
}
func (m *MockLedgerRepo) TransitionRedemption(ctx context.Context, id int32, to domain.RedemptionStatus) error {
	args := m.Called(ctx, id, to)
	return args.Error(0)
}
func (m *MockLedgerRepo) ExpireRedemptions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerRepo) AuditBalances(ctx context.Context) ([]domain.BalanceDrift, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BalanceDrift), args.Error(1)
}
func (m *MockLedgerRepo) CategoryCounts(ctx context.Context, accountID int32) (map[domain.WasteCategory]int32, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(map[domain.WasteCategory]int32), args.Error(1)
}
func (m *MockLedgerRepo) SummarizeActivity(ctx context.Context) (*domain.ActivityReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityReport), args.Error(1)
}

// MockChallengeRepo
type MockChallengeRepo struct {
	mock.Mock
}

func (m *MockChallengeRepo) Create(ctx context.Context, challenge *domain.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}
func (m *MockChallengeRepo) GetByID(ctx context.Context, id int32) (*domain.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}
func (m *MockChallengeRepo) ListActive(ctx context.Context, now time.Time) ([]domain.Challenge, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Challenge), args.Error(1)
}
func (m *MockChallengeRepo) Join(ctx context.Context, participant *domain.ChallengeParticipant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}
func (m *MockChallengeRepo) ListParticipants(ctx context.Context, challengeID int32) ([]domain.ChallengeParticipant, error) {
	args := m.Called(ctx, challengeID)
	return args.Get(0).([]domain.ChallengeParticipant), args.Error(1)
}
func (m *MockChallengeRepo) ContributeToActive(ctx context.Context, accountID, points int32, now time.Time) (int64, error) {
	args := m.Called(ctx, accountID, points, now)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockChallengeRepo) Progress(ctx context.Context, challengeID int32) (*domain.ChallengeProgress, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChallengeProgress), args.Error(1)
}
func (m *MockChallengeRepo) CloseEnded(ctx context.Context, now time.Time) ([]domain.Challenge, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Challenge), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, accountID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, accountID int32) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRedemptionConfirmation(ctx context.Context, email, name, rewardTitle, code string, expiresAt *time.Time) error {
	args := m.Called(ctx, email, name, rewardTitle, code, expiresAt)
	return args.Error(0)
}
func (m *MockEmailService) SendChallengeCompleted(ctx context.Context, email, name, challengeTitle string) error {
	args := m.Called(ctx, email, name, challengeTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}

// MockFriendshipRepo
type MockFriendshipRepo struct {
	mock.Mock
}

func (m *MockFriendshipRepo) Create(ctx context.Context, friendship *domain.Friendship) error {
	args := m.Called(ctx, friendship)
	return args.Error(0)
}
func (m *MockFriendshipRepo) GetByID(ctx context.Context, id int32) (*domain.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}
func (m *MockFriendshipRepo) GetByPair(ctx context.Context, accountID, friendID int32) (*domain.Friendship, error) {
	args := m.Called(ctx, accountID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}
func (m *MockFriendshipRepo) UpdateStatus(ctx context.Context, id int32, status domain.FriendshipStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockFriendshipRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFriendshipRepo) ListByAccount(ctx context.Context, accountID int32, status string) ([]domain.Friendship, error) {
	args := m.Called(ctx, accountID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Friendship), args.Error(1)
}

// MockTeamRepo
type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}
func (m *MockTeamRepo) GetByID(ctx context.Context, id int32) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}
func (m *MockTeamRepo) Update(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}
func (m *MockTeamRepo) ListPublic(ctx context.Context, page, pageSize int32) ([]domain.Team, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Team), args.Get(1).(int32), args.Error(2)
}
func (m *MockTeamRepo) AddMember(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockTeamRepo) RemoveMember(ctx context.Context, teamID, accountID int32) error {
	args := m.Called(ctx, teamID, accountID)
	return args.Error(0)
}
func (m *MockTeamRepo) ListMembers(ctx context.Context, teamID int32) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}
func (m *MockTeamRepo) TotalPoints(ctx context.Context, teamID int32) (int64, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPostRepo
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}
func (m *MockPostRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Post, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Post), args.Get(1).(int32), args.Error(2)
}
func (m *MockPostRepo) Like(ctx context.Context, postID, accountID int32) error {
	args := m.Called(ctx, postID, accountID)
	return args.Error(0)
}
func (m *MockPostRepo) Unlike(ctx context.Context, postID, accountID int32) error {
	args := m.Called(ctx, postID, accountID)
	return args.Error(0)
}
