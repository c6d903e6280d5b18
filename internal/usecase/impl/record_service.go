package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "farmdesk/internal/delivery/context"
	"farmdesk/internal/domain/entity"
	domainerrors "farmdesk/internal/domain/errors"
	"farmdesk/internal/domain/repository"
	"farmdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recordPtr lets generic code reach the shared header of a record value.
type recordPtr[E any] interface {
	*E
	entity.Record
}

// recordHooks customise one log kind. Both hooks are optional.
type recordHooks[E any] struct {
	// beforeSave validates or defaults the record right before it is written.
	beforeSave func(ctx context.Context, actor *usecase.Actor, record *E) error
	// afterSave runs once the record is stored; previous is nil on create.
	afterSave func(ctx context.Context, actor *usecase.Actor, previous, saved *E)
}

// recordService is the tenant-scoped CRUD shared by every log kind.
type recordService[E any, P recordPtr[E]] struct {
	kind      entity.RecordKind
	repo      repository.RecordRepository[E]
	fieldRepo repository.FieldRepository
	hooks     recordHooks[E]
	logger    *slog.Logger
}

func newRecordService[E any, P recordPtr[E]](
	kind entity.RecordKind,
	repo repository.RecordRepository[E],
	fieldRepo repository.FieldRepository,
	hooks recordHooks[E],
	logger *slog.Logger,
) *recordService[E, P] {
	return &recordService[E, P]{
		kind:      kind,
		repo:      repo,
		fieldRepo: fieldRepo,
		hooks:     hooks,
		logger:    logger,
	}
}

func (srv *recordService[E, P]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("kind", string(srv.kind)))
}

func (srv *recordService[E, P]) Create(ctx context.Context, actor *usecase.Actor, record *E) (*E, error) {
	meta := P(record).Meta()
	now := time.Now().UTC()
	meta.ID = uuid.New()
	meta.FarmID = actor.FarmID
	meta.UserID = actor.UID
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if err := srv.prepare(ctx, actor, record); err != nil {
		return nil, err
	}

	if err := srv.repo.Create(ctx, record); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create record")
	}

	srv.log(ctx).Debug("Record created", slog.String("recordID", meta.ID.String()))

	if srv.hooks.afterSave != nil {
		srv.hooks.afterSave(ctx, actor, nil, record)
	}

	return record, nil
}

func (srv *recordService[E, P]) Get(ctx context.Context, actor *usecase.Actor, id uuid.UUID) (*E, error) {
	record, err := srv.repo.FindByID(ctx, actor.FarmID, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load record")
	}

	return record, nil
}

func (srv *recordService[E, P]) List(ctx context.Context, actor *usecase.Actor, query repository.RecordQuery) ([]*E, error) {
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}
	if query.FieldID != nil && !srv.fieldScoped() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(string(srv.kind) + " records are not linked to fields")
	}

	records, err := srv.repo.List(ctx, actor.FarmID, query.Normalized())
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list records")
	}

	return records, nil
}

// Update replaces the writable fields of a record. Ownership and audit fields
// are carried over from the stored version.
func (srv *recordService[E, P]) Update(ctx context.Context, actor *usecase.Actor, id uuid.UUID, record *E) (*E, error) {
	existing, err := srv.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	previous := P(existing).Meta()
	meta := P(record).Meta()
	meta.ID = previous.ID
	meta.FarmID = previous.FarmID
	meta.UserID = previous.UserID
	meta.CreatedAt = previous.CreatedAt
	meta.UpdatedAt = time.Now().UTC()

	if err := srv.prepare(ctx, actor, record); err != nil {
		return nil, err
	}

	if err := srv.repo.Update(ctx, record); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update record")
	}

	if srv.hooks.afterSave != nil {
		srv.hooks.afterSave(ctx, actor, existing, record)
	}

	return record, nil
}

func (srv *recordService[E, P]) Delete(ctx context.Context, actor *usecase.Actor, id uuid.UUID) error {
	err := srv.repo.Delete(ctx, actor.FarmID, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domainerrors.ErrRecordNotFound
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete record")
	}

	srv.log(ctx).Debug("Record deleted", slog.String("recordID", id.String()))

	return nil
}

func (srv *recordService[E, P]) prepare(ctx context.Context, actor *usecase.Actor, record *E) error {
	if P(record).Meta().Date.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("date is required")
	}

	if err := srv.checkFieldRef(ctx, actor, record); err != nil {
		return err
	}

	if srv.hooks.beforeSave != nil {
		return srv.hooks.beforeSave(ctx, actor, record)
	}

	return nil
}

// checkFieldRef makes sure a referenced field belongs to the actor's farm.
func (srv *recordService[E, P]) checkFieldRef(ctx context.Context, actor *usecase.Actor, record *E) error {
	scoped, ok := any(record).(entity.FieldScoped)
	if !ok || scoped.FieldRef() == nil {
		return nil
	}

	_, err := srv.fieldRepo.FindByID(ctx, actor.FarmID, *scoped.FieldRef())
	if errors.Is(err, repository.ErrFieldNotFound) {
		return domainerrors.ErrValidationFailed.WithDetails("field_id does not reference a field of this farm")
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load field")
	}

	return nil
}

func (srv *recordService[E, P]) fieldScoped() bool {
	_, ok := any(new(E)).(entity.FieldScoped)

	return ok
}
