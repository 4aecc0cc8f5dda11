package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
)

// ContentRepository serves the static storefront pages: team, blog,
// newsletter signups and contact messages.
type ContentRepository interface {
	ListTeam(ctx context.Context) ([]db_models.TeamMember, error)
	ListPosts(ctx context.Context, limit int) ([]db_models.BlogPost, error)
	FindPost(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error)

	CreateNewsletter(ctx context.Context, n *db_models.Newsletter) error
	NewsletterExists(ctx context.Context, email string) (bool, error)

	CreateContactMessage(ctx context.Context, m *db_models.ContactMessage) error
	FindContactMessage(ctx context.Context, id uuid.UUID) (*db_models.ContactMessage, error)
	MarkReplied(ctx context.Context, id uuid.UUID, at int64) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (c *contentRepository) ListTeam(ctx context.Context) ([]db_models.TeamMember, error) {
	var members []db_models.TeamMember
	err := c.db.WithContext(ctx).Order("created_at ASC").Find(&members).Error
	return members, err
}

func (c *contentRepository) ListPosts(ctx context.Context, limit int) ([]db_models.BlogPost, error) {
	var posts []db_models.BlogPost
	tx := c.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&posts).Error
	return posts, err
}

func (c *contentRepository) FindPost(ctx context.Context, id uuid.UUID) (*db_models.BlogPost, error) {
	var post db_models.BlogPost
	err := c.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (c *contentRepository) CreateNewsletter(ctx context.Context, n *db_models.Newsletter) error {
	return c.db.WithContext(ctx).Create(n).Error
}

func (c *contentRepository) NewsletterExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := c.db.WithContext(ctx).
		Unscoped().
		Model(&db_models.Newsletter{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&n).Error
	return n > 0, err
}

func (c *contentRepository) CreateContactMessage(ctx context.Context, m *db_models.ContactMessage) error {
	return c.db.WithContext(ctx).Create(m).Error
}

func (c *contentRepository) FindContactMessage(ctx context.Context, id uuid.UUID) (*db_models.ContactMessage, error) {
	var msg db_models.ContactMessage
	err := c.db.WithContext(ctx).First(&msg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

func (c *contentRepository) MarkReplied(ctx context.Context, id uuid.UUID, at int64) error {
	return c.db.WithContext(ctx).
		Model(&db_models.ContactMessage{}).
		Where("id = ?", id).
		Update("replied_at", at).Error
}
