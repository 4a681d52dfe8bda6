package mongo

import (
	"context"
	"time"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const accountCollection = "accounts"

// accountRepository implements the repository.AccountRepository interface.
//
// The token registry lives inside the account document, so every token
// write is a single-document conditional update. MongoDB applies those
// atomically, which is what keeps concurrent registrations of the same
// token from producing duplicate entries.
type accountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{
		collection: db.Collection(accountCollection),
	}
}

// FindByID retrieves an account by its identifier.
func (repo *accountRepository) FindByID(ctx context.Context, accountID string) (*entity.Account, error) {
	var account entity.Account
	if err := repo.collection.FindOne(ctx, bson.M{"_id": accountID}).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDocumentStoreError(err, "failed to find account")
	}

	return &account, nil
}

// TouchDeviceToken refreshes the entry whose token value matches, using a
// positional update on the embedded array. MatchedCount zero means no
// entry holds this token (or the account is absent); the caller follows
// up with the guarded append.
func (repo *accountRepository) TouchDeviceToken(ctx context.Context, accountID string, token *entity.DeviceToken) (bool, error) {
	filter := bson.M{
		"_id":              accountID,
		"fcm_tokens.token": token.Token,
	}
	update := bson.M{
		"$set": bson.M{
			"fcm_tokens.$.device_type":  token.DeviceType,
			"fcm_tokens.$.user_agent":   token.UserAgent,
			"fcm_tokens.$.is_active":    true,
			"fcm_tokens.$.last_updated": token.LastUpdated,
			"updated_at":                time.Now(),
		},
	}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, domainerrors.NewDocumentStoreError(err, "failed to refresh device token")
	}

	return result.MatchedCount > 0, nil
}

// AppendDeviceToken appends a token entry guarded by a filter that only
// matches while no entry holds the same token value. A concurrent
// registration that lands first makes the filter miss, which is reported
// as ErrTokenConflict so the caller can retry the refresh path.
func (repo *accountRepository) AppendDeviceToken(ctx context.Context, accountID string, token *entity.DeviceToken) error {
	filter := bson.M{
		"_id":              accountID,
		"fcm_tokens.token": bson.M{"$ne": token.Token},
	}
	update := bson.M{
		"$push": bson.M{"fcm_tokens": token},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDocumentStoreError(err, "failed to append device token")
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// The guard missed: either the account does not exist, or another
	// writer appended this token first. Disambiguate with a point read.
	if err := repo.collection.FindOne(ctx, bson.M{"_id": accountID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDocumentStoreError(err, "failed to check account existence")
	}

	return repository.ErrTokenConflict
}

// HasActiveDeviceToken is a cheap existence check on the embedded array.
func (repo *accountRepository) HasActiveDeviceToken(ctx context.Context, accountID string, token string) (bool, error) {
	filter := bson.M{
		"_id": accountID,
		"fcm_tokens": bson.M{
			"$elemMatch": bson.M{
				"token":     token,
				"is_active": true,
			},
		},
	}

	count, err := repo.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, domainerrors.NewDocumentStoreError(err, "failed to check device token")
	}

	return count > 0, nil
}

// DeactivateDeviceToken marks the matching entry inactive in place.
func (repo *accountRepository) DeactivateDeviceToken(ctx context.Context, accountID string, token string) (bool, error) {
	filter := bson.M{
		"_id":              accountID,
		"fcm_tokens.token": token,
	}
	update := bson.M{
		"$set": bson.M{
			"fcm_tokens.$.is_active":    false,
			"fcm_tokens.$.last_updated": time.Now(),
		},
	}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, domainerrors.NewDocumentStoreError(err, "failed to deactivate device token")
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	if err := repo.collection.FindOne(ctx, bson.M{"_id": accountID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, repository.ErrAccountNotFound
		}

		return false, domainerrors.NewDocumentStoreError(err, "failed to check account existence")
	}

	return false, nil
}
