package notification

import (
	"context"

	"gorm.io/gorm"

	"github.com/queuely/queuely-api/internal/models"
)

// Sender appends a notification for a recipient. Delivery is the
// persistence write succeeding, nothing more.
type Sender interface {
	Notify(
		ctx context.Context,
		recipientKind string,
		recipientID uint,
		title string,
		message string,
		ntype string,
	) error
}

// Store is the read/mark side of the per-recipient log.
type Store interface {
	ListForRecipient(ctx context.Context, recipientKind string, recipientID uint) ([]models.Notification, error)
	MarkRead(ctx context.Context, recipientKind string, recipientID uint, notificationID uint) (bool, error)
	MarkAllRead(ctx context.Context, recipientKind string, recipientID uint) error
}

type Log struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Log {
	return &Log{db: db}
}

func (l *Log) Notify(
	ctx context.Context,
	recipientKind string,
	recipientID uint,
	title string,
	message string,
	ntype string,
) error {

	n := models.Notification{
		RecipientKind: recipientKind,
		RecipientID:   recipientID,
		Title:         title,
		Message:       message,
		Type:          ntype,
	}

	return l.db.WithContext(ctx).Create(&n).Error
}

// ListForRecipient returns the recipient's notifications, newest first.
func (l *Log) ListForRecipient(
	ctx context.Context,
	recipientKind string,
	recipientID uint,
) ([]models.Notification, error) {

	var ns []models.Notification
	if err := l.db.WithContext(ctx).
		Where("recipient_kind = ? AND recipient_id = ?", recipientKind, recipientID).
		Order("created_at DESC").
		Find(&ns).Error; err != nil {
		return nil, err
	}

	return ns, nil
}

// MarkRead flips the read flag iff the notification belongs to the
// recipient. Returns false when no owned row matches.
func (l *Log) MarkRead(
	ctx context.Context,
	recipientKind string,
	recipientID uint,
	notificationID uint,
) (bool, error) {

	res := l.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where(
			"id = ? AND recipient_kind = ? AND recipient_id = ?",
			notificationID, recipientKind, recipientID,
		).
		Update("read", true)

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// MarkAllRead bulk-flips the recipient's unread notifications. Safe to
// call with zero unread rows.
func (l *Log) MarkAllRead(
	ctx context.Context,
	recipientKind string,
	recipientID uint,
) error {

	return l.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where(
			"recipient_kind = ? AND recipient_id = ? AND read = ?",
			recipientKind, recipientID, false,
		).
		Update("read", true).Error
}

var (
	_ Sender = (*Log)(nil)
	_ Store  = (*Log)(nil)
)
