package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	DefaultAdminPageSize = 10
)

// Actor identifies the staff member behind a back-office mutation.
type Actor struct {
	AccountID uuid.UUID
	IP        string
}

// AdminHooks customise one resource. All hooks are optional.
type AdminHooks[M any] struct {
	// BeforeSave runs inside the write transaction. current is nil on create.
	BeforeSave func(ctx context.Context, tx *gorm.DB, current, next *M) error
	// AfterCreate runs inside the create transaction.
	AfterCreate func(ctx context.Context, tx *gorm.DB, m *M) error
	// Delete replaces the default single-row hard delete.
	Delete func(ctx context.Context, id uuid.UUID) (bool, error)
}

type AdminResourceConfig[M any] struct {
	Name     string
	PageSize int
	// Filterable lists columns that may be matched exactly from query parameters.
	Filterable []string
	// Notify raises an admin notification on every mutation.
	Notify bool
	Hooks  AdminHooks[M]
}

type AdminResourceService[M any] interface {
	Name() string
	PageSize() int
	Filterable() []string
	List(ctx context.Context, q repositories.ListQuery) ([]M, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*M, error)
	Create(ctx context.Context, actor Actor, apply func(*M) error) (*M, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, apply func(*M) error) (*M, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type adminResourceService[M any] struct {
	cfg           AdminResourceConfig[M]
	repo          repositories.CrudRepository[M]
	activities    repositories.ActivityRepository
	notifications repositories.NotificationRepository
}

func NewAdminResourceService[M any](
	cfg AdminResourceConfig[M],
	repo repositories.CrudRepository[M],
	activities repositories.ActivityRepository,
	notifications repositories.NotificationRepository,
) AdminResourceService[M] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultAdminPageSize
	}
	return &adminResourceService[M]{
		cfg:           cfg,
		repo:          repo,
		activities:    activities,
		notifications: notifications,
	}
}

func idOf(m any) uuid.UUID {
	if v, ok := m.(interface{ GetID() uuid.UUID }); ok {
		return v.GetID()
	}
	return uuid.Nil
}

// adminError keeps sentinels and maps storage failures to them.
func adminError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.RecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.ErrDuplicateRecord
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return utils.ErrInvalidInput
	}
	if code := utils.StatusFor(err); code < 500 {
		return err
	}
	log.Printf("admin %s failed: %v", op, err)
	return fmt.Errorf("%w: %s", utils.ErrDatabaseError, op)
}

func (s *adminResourceService[M]) Name() string  { return s.cfg.Name }
func (s *adminResourceService[M]) PageSize() int { return s.cfg.PageSize }

func (s *adminResourceService[M]) Filterable() []string { return s.cfg.Filterable }

func (s *adminResourceService[M]) List(ctx context.Context, q repositories.ListQuery) ([]M, int64, error) {
	if q.Page < 1 {
		return nil, 0, utils.ErrInvalidPage
	}
	if q.PageSize <= 0 {
		q.PageSize = s.cfg.PageSize
	}
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, adminError("list "+s.cfg.Name, err)
	}
	return items, total, nil
}

func (s *adminResourceService[M]) Get(ctx context.Context, id uuid.UUID) (*M, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, adminError("get "+s.cfg.Name, err)
	}
	if m == nil {
		return nil, utils.RecordNotFound
	}
	return m, nil
}

func (s *adminResourceService[M]) record(ctx context.Context, tx *gorm.DB, actor Actor, action string, id uuid.UUID, details any) error {
	raw, err := json.Marshal(details)
	if err != nil {
		raw = []byte("{}")
	}

	activities := s.activities
	notifications := s.notifications
	if tx != nil {
		activities = activities.WithTx(tx)
		notifications = notifications.WithTx(tx)
	}

	err = activities.Create(ctx, &db_models.AdminActivity{
		AccountID:     actor.AccountID,
		Action:        action,
		ModelAffected: s.cfg.Name,
		ObjectID:      id.String(),
		Details:       datatypes.JSON(raw),
		IPAddress:     actor.IP,
	})
	if err != nil || !s.cfg.Notify {
		return err
	}
	return notifications.Create(ctx, &db_models.AdminNotification{
		Title:   fmt.Sprintf("%s %s", s.cfg.Name, action),
		Message: fmt.Sprintf("%s %s was %sd by staff", s.cfg.Name, id, action),
		Payload: datatypes.JSON(raw),
	})
}

func (s *adminResourceService[M]) Create(ctx context.Context, actor Actor, apply func(*M) error) (*M, error) {
	m := new(M)
	if err := apply(m); err != nil {
		return nil, adminError("apply "+s.cfg.Name, err)
	}

	err := s.repo.Transaction(ctx, func(repo repositories.CrudRepository[M], tx *gorm.DB) error {
		if h := s.cfg.Hooks.BeforeSave; h != nil {
			if err := h(ctx, tx, nil, m); err != nil {
				return err
			}
		}
		if err := repo.Create(ctx, m); err != nil {
			return err
		}
		if h := s.cfg.Hooks.AfterCreate; h != nil {
			if err := h(ctx, tx, m); err != nil {
				return err
			}
		}
		return s.record(ctx, tx, actor, ActionCreate, idOf(m), m)
	})
	if err != nil {
		return nil, adminError("create "+s.cfg.Name, err)
	}
	return m, nil
}

func (s *adminResourceService[M]) Update(ctx context.Context, actor Actor, id uuid.UUID, apply func(*M) error) (*M, error) {
	var next *M
	err := s.repo.Transaction(ctx, func(repo repositories.CrudRepository[M], tx *gorm.DB) error {
		current, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return utils.RecordNotFound
		}

		updated := *current
		if err := apply(&updated); err != nil {
			return err
		}
		if h := s.cfg.Hooks.BeforeSave; h != nil {
			if err := h(ctx, tx, current, &updated); err != nil {
				return err
			}
		}
		if err := repo.Update(ctx, &updated); err != nil {
			return err
		}
		if next, err = repo.FindByID(ctx, id); err != nil {
			return err
		}
		return s.record(ctx, tx, actor, ActionUpdate, id, next)
	})
	if err != nil {
		return nil, adminError("update "+s.cfg.Name, err)
	}
	return next, nil
}

func (s *adminResourceService[M]) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	details := map[string]string{"id": id.String()}

	if h := s.cfg.Hooks.Delete; h != nil {
		deleted, err := h(ctx, id)
		if err != nil {
			return adminError("delete "+s.cfg.Name, err)
		}
		if !deleted {
			return utils.RecordNotFound
		}
		if err := s.record(ctx, nil, actor, ActionDelete, id, details); err != nil {
			log.Printf("Failed to record %s deletion of %s: %v", s.cfg.Name, id, err)
		}
		return nil
	}

	err := s.repo.Transaction(ctx, func(repo repositories.CrudRepository[M], tx *gorm.DB) error {
		deleted, err := repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return utils.RecordNotFound
		}
		return s.record(ctx, tx, actor, ActionDelete, id, details)
	})
	if err != nil {
		return adminError("delete "+s.cfg.Name, err)
	}
	return nil
}
