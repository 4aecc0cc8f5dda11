package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
)

type ProductFilter struct {
	CategoryID *uuid.UUID
	Search     string
	Page       int
	PageSize   int
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]db_models.Product, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error)
	// Related returns other products of the same category.
	Related(ctx context.Context, product *db_models.Product, limit int) ([]db_models.Product, error)
	TopRated(ctx context.Context, limit int) ([]db_models.Product, error)

	ListReviews(ctx context.Context, productID uuid.UUID) ([]db_models.ProductReview, error)
	// AddReview stores the review and refreshes the product's average rating.
	AddReview(ctx context.Context, review *db_models.ProductReview) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) filtered(ctx context.Context, filter ProductFilter) *gorm.DB {
	tx := p.db.WithContext(ctx).Model(&db_models.Product{})
	if filter.CategoryID != nil {
		tx = tx.Where("category_id = ?", *filter.CategoryID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	return tx
}

func (p *productRepository) List(ctx context.Context, filter ProductFilter) ([]db_models.Product, int64, error) {
	var total int64
	if err := p.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []db_models.Product
	tx := p.filtered(ctx, filter).Preload("Category").Order("name ASC")
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		tx = tx.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := tx.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (p *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) Related(ctx context.Context, product *db_models.Product, limit int) ([]db_models.Product, error) {
	var products []db_models.Product
	err := p.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", product.CategoryID, product.ID).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) TopRated(ctx context.Context, limit int) ([]db_models.Product, error) {
	var products []db_models.Product
	err := p.db.WithContext(ctx).
		Order("rating DESC").
		Order("name ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) ListReviews(ctx context.Context, productID uuid.UUID) ([]db_models.ProductReview, error) {
	var reviews []db_models.ProductReview
	err := p.db.WithContext(ctx).
		Preload("Account").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (p *productRepository) AddReview(ctx context.Context, review *db_models.ProductReview) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Account", "Product").Create(review).Error; err != nil {
			return err
		}

		var avg float64
		err := tx.Model(&db_models.ProductReview{}).
			Select("COALESCE(AVG(rating), 0)").
			Where("product_id = ?", review.ProductID).
			Scan(&avg).Error
		if err != nil {
			return err
		}

		return tx.Model(&db_models.Product{}).
			Where("id = ?", review.ProductID).
			UpdateColumn("rating", avg).Error
	})
}
