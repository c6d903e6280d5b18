package postgres

import (
	"context"

	"farmdesk/internal/domain/entity"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{db: db}
}

func (repo *invitationRepository) Create(ctx context.Context, invitation *entity.Invitation) error {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}
	invitationM := model.FromInvitationDomain(invitation)

	if err := repo.db.WithContext(ctx).Create(invitationM).Error; err != nil {
		return errors.Wrap(err, "failed to create invitation")
	}

	invitation.CreatedAt = invitationM.CreatedAt

	return nil
}

func (repo *invitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindPending returns the open invitation from a farm to a user, if any.
func (repo *invitationRepository) FindPending(ctx context.Context, farmID uuid.UUID, invitedUID string) (*entity.Invitation, error) {
	return repo.findOne(ctx,
		"inviter_farm_id = ? AND invited_user_uid = ? AND status = ?",
		farmID, invitedUID, string(entity.InvitationStatusPending),
	)
}

func (repo *invitationRepository) findOne(ctx context.Context, cond string, args ...any) (*entity.Invitation, error) {
	var invitationM model.InvitationModel
	if err := repo.db.WithContext(ctx).Where(cond, args...).First(&invitationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}

	return model.ToInvitationDomain(&invitationM), nil
}

// ListByInvitee returns invitations addressed to uid, newest first. An empty
// status matches every status.
func (repo *invitationRepository) ListByInvitee(ctx context.Context, uid string, status entity.InvitationStatus) ([]*entity.Invitation, error) {
	tx := repo.db.WithContext(ctx).Where("invited_user_uid = ?", uid)
	if status != "" {
		tx = tx.Where("status = ?", string(status))
	}

	return repo.list(tx)
}

func (repo *invitationRepository) ListByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Invitation, error) {
	return repo.list(repo.db.WithContext(ctx).Where("inviter_farm_id = ?", farmID))
}

func (repo *invitationRepository) list(tx *gorm.DB) ([]*entity.Invitation, error) {
	var invitationModels []*model.InvitationModel
	if err := tx.Order("created_at DESC").Find(&invitationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invitations")
	}

	invitations := make([]*entity.Invitation, 0, len(invitationModels))
	for _, invitationM := range invitationModels {
		invitations = append(invitations, model.ToInvitationDomain(invitationM))
	}

	return invitations, nil
}

func (repo *invitationRepository) Update(ctx context.Context, invitation *entity.Invitation) error {
	invitationM := model.FromInvitationDomain(invitation)

	result := repo.db.WithContext(ctx).Model(invitationM).Select("*").Omit("created_at").Updates(invitationM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update invitation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvitationNotFound
	}

	return nil
}
