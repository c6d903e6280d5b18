package postgres

import (
	"context"
	"time"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUID retrieves a single user by the identity provider's uid.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	return repo.findOne(ctx, "uid = ?", uid)
}

// FindByUIDForUpdate locks the row with SELECT ... FOR UPDATE. SQLite has no
// row locks and serializes writers instead.
func (repo *userRepository) FindByUIDForUpdate(ctx context.Context, uid string) (*entity.User, error) {
	return (&userRepository{db: repo.db.Clauses(clause.Locking{Strength: "UPDATE"})}).findOne(ctx, "uid = ?", uid)
}

// FindByEmail retrieves a single user by email. Emails are stored lowercased.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error) {
	return repo.findOne(ctx, "stripe_customer_id = ?", customerID)
}

func (repo *userRepository) findOne(ctx context.Context, cond string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return model.ToUserDomain(&userM), nil
}

// Create persists a new user. A duplicate uid or email yields ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)

	return repo.updateColumns(ctx, user.UID, map[string]any{
		"name":        userM.Name,
		"preferences": userM.Preferences,
	})
}

// UpdateMembership writes farm_id and is_farm_owner. A nil farmID stores NULL.
func (repo *userRepository) UpdateMembership(ctx context.Context, uid string, farmID *uuid.UUID, isFarmOwner bool) error {
	return repo.updateColumns(ctx, uid, map[string]any{
		"farm_id":       farmID,
		"is_farm_owner": isFarmOwner,
	})
}

func (repo *userRepository) UpdatePushTokens(ctx context.Context, uid string, tokens []string) error {
	if tokens == nil {
		tokens = []string{}
	}

	return repo.updateColumns(ctx, uid, map[string]any{
		"push_tokens": datatypes.NewJSONSlice(tokens),
	})
}

func (repo *userRepository) UpdateSubscription(ctx context.Context, uid string, subscription entity.Subscription) error {
	return repo.updateColumns(ctx, uid, map[string]any{
		"plan":                   subscription.Plan,
		"subscription_status":    string(subscription.Status),
		"stripe_customer_id":     subscription.StripeCustomerID,
		"stripe_subscription_id": subscription.StripeSubscriptionID,
		"current_period_end":     subscription.CurrentPeriodEnd,
		"cancel_at_period_end":   subscription.CancelAtPeriodEnd,
	})
}

func (repo *userRepository) updateColumns(ctx context.Context, uid string, columns map[string]any) error {
	columns["updated_at"] = time.Now().UTC()

	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("uid = ?", uid).Updates(columns)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
