package mongo

import (
	"context"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const settingsCollection = "notification_settings"

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &settingsRepository{
		collection: db.Collection(settingsCollection),
	}
}

// FindByAccount retrieves the account's notification settings record.
func (repo *settingsRepository) FindByAccount(ctx context.Context, accountID string) (*entity.NotificationSettings, error) {
	var settings entity.NotificationSettings
	if err := repo.collection.FindOne(ctx, bson.M{"_id": accountID}).Decode(&settings); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, domainerrors.NewDocumentStoreError(err, "failed to find notification settings")
	}

	return &settings, nil
}
