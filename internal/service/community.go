package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecobin-backend/internal/domain"
	"ecobin-backend/internal/logger"
	"ecobin-backend/internal/repository"
)

type communityService struct {
	accountRepo    repository.AccountRepository
	friendshipRepo repository.FriendshipRepository
	teamRepo       repository.TeamRepository
	challengeRepo  repository.ChallengeRepository
	postRepo       repository.PostRepository
	noteRepo       repository.NotificationRepository
}

func NewCommunityService(
	accountRepo repository.AccountRepository,
	friendshipRepo repository.FriendshipRepository,
	teamRepo repository.TeamRepository,
	challengeRepo repository.ChallengeRepository,
	postRepo repository.PostRepository,
	noteRepo repository.NotificationRepository,
) CommunityService {
	return &communityService{
		accountRepo:    accountRepo,
		friendshipRepo: friendshipRepo,
		teamRepo:       teamRepo,
		challengeRepo:  challengeRepo,
		postRepo:       postRepo,
		noteRepo:       noteRepo,
	}
}

func (s *communityService) RequestFriendship(ctx context.Context, accountID, friendID int32) (*domain.Friendship, error) {
	if accountID == friendID {
		return nil, validationErrorf("cannot befriend yourself")
	}
	requester, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if _, err := s.accountRepo.GetByID(ctx, friendID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	existing, err := s.friendshipRepo.GetByPair(ctx, accountID, friendID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	friendship := &domain.Friendship{
		AccountID: accountID,
		FriendID:  friendID,
		Status:    domain.FriendshipStatusPending,
	}
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	s.notify(ctx, friendID, "New friend request",
		fmt.Sprintf("%s wants to connect with you", requester.FullName),
		map[string]string{"friendship_id": fmt.Sprintf("%d", friendship.ID)})

	return friendship, nil
}

func (s *communityService) RespondFriendship(ctx context.Context, accountID, friendshipID int32, accept bool) error {
	friendship, err := s.friendshipRepo.GetByID(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrFriendshipNotFound
		}
		return err
	}
	// Only the recipient may answer the request.
	if friendship.FriendID != accountID {
		return ErrNotRequestRecipient
	}
	if friendship.Status != domain.FriendshipStatusPending {
		return ErrFriendshipSettled
	}

	if !accept {
		return s.friendshipRepo.Delete(ctx, friendshipID)
	}

	if err := s.friendshipRepo.UpdateStatus(ctx, friendshipID, domain.FriendshipStatusAccepted); err != nil {
		return err
	}

	if recipient, err := s.accountRepo.GetByID(ctx, accountID); err == nil {
		s.notify(ctx, friendship.AccountID, "Friend request accepted",
			fmt.Sprintf("%s accepted your friend request", recipient.FullName), nil)
	}
	return nil
}

func (s *communityService) ListFriendships(ctx context.Context, accountID int32, status string) ([]domain.Friendship, error) {
	return s.friendshipRepo.ListByAccount(ctx, accountID, status)
}

func (s *communityService) CreateTeam(ctx context.Context, accountID int32, team *domain.Team) error {
	if team.Name == "" {
		return validationErrorf("team name is required")
	}
	team.CreatedBy = accountID
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return err
	}
	return s.teamRepo.AddMember(ctx, &domain.TeamMember{
		TeamID:    team.ID,
		AccountID: accountID,
		Role:      domain.TeamRoleOwner,
	})
}

func (s *communityService) JoinTeam(ctx context.Context, accountID, teamID int32) error {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTeamNotFound
		}
		return err
	}
	if !team.IsPublic {
		return ErrTeamNotJoinable
	}
	return s.teamRepo.AddMember(ctx, &domain.TeamMember{
		TeamID:    teamID,
		AccountID: accountID,
		Role:      domain.TeamRoleMember,
	})
}

func (s *communityService) LeaveTeam(ctx context.Context, accountID, teamID int32) error {
	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.AccountID == accountID && m.Role == domain.TeamRoleOwner && len(members) > 1 {
			return ErrTeamOwnerCannotLeave
		}
	}
	return s.teamRepo.RemoveMember(ctx, teamID, accountID)
}

func (s *communityService) ListTeams(ctx context.Context, page, pageSize int32) ([]domain.Team, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.teamRepo.ListPublic(ctx, page, pageSize)
}

func (s *communityService) GetTeamStanding(ctx context.Context, teamID int32) (*domain.Team, []domain.TeamMember, int64, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, 0, ErrTeamNotFound
		}
		return nil, nil, 0, err
	}
	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, nil, 0, err
	}
	total, err := s.teamRepo.TotalPoints(ctx, teamID)
	if err != nil {
		return nil, nil, 0, err
	}
	return team, members, total, nil
}

func (s *communityService) CreateChallenge(ctx context.Context, challenge *domain.Challenge) error {
	if challenge.Title == "" {
		return validationErrorf("challenge title is required")
	}
	if !challenge.EndDate.After(challenge.StartDate) {
		return validationErrorf("challenge end date must be after start date")
	}
	if challenge.GoalPoints <= 0 {
		return validationErrorf("goal_points must be positive, got %d", challenge.GoalPoints)
	}
	challenge.IsActive = true
	return s.challengeRepo.Create(ctx, challenge)
}

func (s *communityService) JoinChallenge(ctx context.Context, accountID, challengeID int32) error {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChallengeNotFound
		}
		return err
	}
	now := time.Now().UTC()
	if !challenge.IsActive || now.After(challenge.EndDate) {
		return ErrChallengeNotActive
	}
	return s.challengeRepo.Join(ctx, &domain.ChallengeParticipant{
		ChallengeID: challengeID,
		AccountID:   accountID,
	})
}

func (s *communityService) ListActiveChallenges(ctx context.Context, now time.Time) ([]domain.Challenge, error) {
	return s.challengeRepo.ListActive(ctx, now)
}

func (s *communityService) GetChallengeProgress(ctx context.Context, challengeID int32) (*domain.ChallengeProgress, error) {
	progress, err := s.challengeRepo.Progress(ctx, challengeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return progress, nil
}

func (s *communityService) CreatePost(ctx context.Context, post *domain.Post) error {
	if post.Content == "" && post.ImageURL == "" {
		return validationErrorf("post needs content or an image")
	}
	return s.postRepo.Create(ctx, post)
}

func (s *communityService) ListFeed(ctx context.Context, page, pageSize int32) ([]domain.Post, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.postRepo.List(ctx, page, pageSize)
}

func (s *communityService) LikePost(ctx context.Context, accountID, postID int32) error {
	return s.postRepo.Like(ctx, postID, accountID)
}

func (s *communityService) UnlikePost(ctx context.Context, accountID, postID int32) error {
	return s.postRepo.Unlike(ctx, postID, accountID)
}

// notify writes a best-effort in-app notification. A failure here never fails
// the caller's operation.
func (s *communityService) notify(ctx context.Context, accountID int32, title, message string, attrs map[string]string) {
	note := &domain.Notification{
		AccountID:  accountID,
		Title:      title,
		Message:    message,
		Attributes: attrs,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to create notification", "account_id", accountID, "error", err)
	}
}
