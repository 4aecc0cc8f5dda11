package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListQuery struct {
	Search   string
	Page     int
	PageSize int
	// Filters are exact-match column conditions.
	Filters map[string]interface{}
}

func (q ListQuery) offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// CrudOptions describe how a table is searched and listed.
type CrudOptions struct {
	SearchColumns []string
	Preloads      []string
	Order         string
}

// CrudRepository is the back-office data access shared by every admin resource.
type CrudRepository[M any] interface {
	List(ctx context.Context, q ListQuery) ([]M, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*M, error)
	Create(ctx context.Context, m *M) error
	Update(ctx context.Context, m *M) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// Transaction runs fn with a repository bound to the transaction.
	Transaction(ctx context.Context, fn func(repo CrudRepository[M], tx *gorm.DB) error) error
}

type crudRepository[M any] struct {
	db   *gorm.DB
	opts CrudOptions
}

func NewCrudRepository[M any](db *gorm.DB, opts CrudOptions) CrudRepository[M] {
	if opts.Order == "" {
		opts.Order = "created_at DESC"
	}
	return &crudRepository[M]{db: db, opts: opts}
}

func (r *crudRepository[M]) scoped(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, p := range r.opts.Preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func (r *crudRepository[M]) applyFilters(tx *gorm.DB, q ListQuery) *gorm.DB {
	for col, v := range q.Filters {
		tx = tx.Where(col+" = ?", v)
	}
	if s := strings.TrimSpace(q.Search); s != "" && len(r.opts.SearchColumns) > 0 {
		pattern := "%" + strings.ToLower(s) + "%"
		clauses := make([]string, 0, len(r.opts.SearchColumns))
		args := make([]interface{}, 0, len(r.opts.SearchColumns))
		for _, col := range r.opts.SearchColumns {
			clauses = append(clauses, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		tx = tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	return tx
}

func (r *crudRepository[M]) List(ctx context.Context, q ListQuery) ([]M, int64, error) {
	var total int64
	countTx := r.applyFilters(r.db.WithContext(ctx).Model(new(M)), q)
	if err := countTx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []M
	err := r.applyFilters(r.scoped(ctx), q).
		Order(r.opts.Order).
		Scopes(func(db *gorm.DB) *gorm.DB {
			if q.PageSize <= 0 {
				return db
			}
			return db.Offset(q.offset()).Limit(q.PageSize)
		}).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *crudRepository[M]) FindByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	err := r.scoped(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *crudRepository[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *crudRepository[M]) Update(ctx context.Context, m *M) error {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Save(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row outright; foreign keys cascade to its dependants.
func (r *crudRepository[M]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Unscoped().Delete(new(M), "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *crudRepository[M]) Transaction(ctx context.Context, fn func(repo CrudRepository[M], tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&crudRepository[M]{db: tx, opts: r.opts}, tx)
	})
}
