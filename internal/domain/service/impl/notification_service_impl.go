package impl

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/realtime"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// notificationService implements service.NotificationService
type notificationService struct {
	notificationRepo repository.NotificationRepository
	broadcaster      realtime.Broadcaster
}

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	broadcaster realtime.Broadcaster,
) service.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
	}
}

func (s *notificationService) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	if n.Status == "" {
		n.Status = entity.NotificationUnread
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		// A notification without a recipient is for the admin desk
		if n.UserID.IsZero() {
			s.broadcaster.PushToAdmins(realtime.EventNewNotification, n)
		} else {
			s.broadcaster.PushToUser(n.UserID.Hex(), realtime.EventNewNotification, n)
		}
	}

	return n, nil
}

func (s *notificationService) ListAll(ctx context.Context) ([]*entity.Notification, error) {
	return s.notificationRepo.ListAll(ctx)
}

func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return s.notificationRepo.ListByUserID(ctx, oid)
}

func (s *notificationService) MarkRead(ctx context.Context, callerID string, isAdmin bool, notificationID string) (*entity.Notification, error) {
	oid, err := parseID(notificationID)
	if err != nil {
		return nil, err
	}

	n, err := s.notificationRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperrors.ErrNotFound.WithMessage("notification not found")
	}

	// Admin-desk notifications are only writable by admins; personal
	// ones only by their recipient
	if n.UserID.IsZero() {
		if !isAdmin {
			return nil, apperrors.ErrForbidden.WithMessage("you cannot update this notification")
		}
	} else if !isAdmin && n.UserID.Hex() != callerID {
		return nil, apperrors.ErrForbidden.WithMessage("you cannot update this notification")
	}

	n.Status = entity.NotificationRead
	if err := s.notificationRepo.Update(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}
