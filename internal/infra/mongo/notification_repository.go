package mongo

import (
	"context"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const notificationCollection = "notifications"

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &notificationRepository{
		collection: db.Collection(notificationCollection),
	}
}

// Create persists a notification record.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if _, err := repo.collection.InsertOne(ctx, notification); err != nil {
		return domainerrors.NewDocumentStoreError(err, "failed to create notification")
	}

	return nil
}

// FindByAccount returns every notification for the account. Callers sort
// and truncate; the store does not impose an order.
func (repo *notificationRepository) FindByAccount(ctx context.Context, accountID string) ([]*entity.Notification, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{"account_id": accountID})
	if err != nil {
		return nil, domainerrors.NewDocumentStoreError(err, "failed to list notifications")
	}

	var notifications []*entity.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, domainerrors.NewDocumentStoreError(err, "failed to decode notifications")
	}

	return notifications, nil
}

// MarkRead flips the read flag on a single record.
func (repo *notificationRepository) MarkRead(ctx context.Context, id string) error {
	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return domainerrors.NewDocumentStoreError(err, "failed to mark notification read")
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flips the read flag on every unread record for the account
// and reports how many were updated.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, accountID string) (int64, error) {
	filter := bson.M{
		"account_id": accountID,
		"read":       false,
	}

	result, err := repo.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, domainerrors.NewDocumentStoreError(err, "failed to mark notifications read")
	}

	return result.ModifiedCount, nil
}

// Delete removes a single record.
func (repo *notificationRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewDocumentStoreError(err, "failed to delete notification")
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// CountUnread counts the account's unread records.
func (repo *notificationRepository) CountUnread(ctx context.Context, accountID string) (int64, error) {
	filter := bson.M{
		"account_id": accountID,
		"read":       false,
	}

	count, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, domainerrors.NewDocumentStoreError(err, "failed to count unread notifications")
	}

	return count, nil
}
