package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"

	"github.com/google/uuid"
)

type messageUsecase struct {
	matchRepo   domain.MatchRepository
	messageRepo domain.MessageRepository
	notifier    domain.Notifier
}

func NewMessageUsecase(matchRepo domain.MatchRepository, messageRepo domain.MessageRepository, notifier domain.Notifier) domain.MessageUsecase {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &messageUsecase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

func (u *messageUsecase) SendMessage(ctx context.Context, matchID, senderID, content string) (*domain.Message, error) {
	match, err := participantMatch(ctx, u.matchRepo, senderID, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Active {
		return nil, apperror.MatchInactive("This match is no longer active")
	}

	text := strings.TrimSpace(content)
	if text == "" {
		return nil, apperror.Validation("Message content is required")
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return nil, apperror.Validation(fmt.Sprintf("Message content must be at most %d characters", domain.MaxMessageLength))
	}

	msg := &domain.Message{
		ID:        uuid.NewString(),
		MatchID:   match.ID,
		SenderID:  senderID,
		Content:   text,
		CreatedAt: time.Now(),
	}
	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}

	u.notifier.NewMessage(ctx, msg)
	return msg, nil
}

func (u *messageUsecase) ListMessages(ctx context.Context, matchID, userID string) ([]domain.Message, error) {
	if _, err := participantMatch(ctx, u.matchRepo, userID, matchID); err != nil {
		return nil, err
	}
	msgs, err := u.messageRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return msgs, nil
}

func (u *messageUsecase) MarkAsRead(ctx context.Context, matchID, userID string) (*domain.ReadReceipt, error) {
	if _, err := participantMatch(ctx, u.matchRepo, userID, matchID); err != nil {
		return nil, err
	}
	count, err := u.messageRepo.MarkReadFor(ctx, matchID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	receipt := &domain.ReadReceipt{MatchID: matchID, UserID: userID, Count: count}
	u.notifier.MessagesRead(ctx, receipt)
	return receipt, nil
}

type nopNotifier struct{}

func (nopNotifier) NewMessage(context.Context, *domain.Message)       {}
func (nopNotifier) MessagesRead(context.Context, *domain.ReadReceipt) {}
