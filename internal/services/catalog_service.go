package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	"gymfit/pkg/utils"
)

const (
	StorePageSize    = 12
	relatedLimit     = 2
	topRatedLimit    = 3
	maxStorePageSize = 100
)

type StoreQuery struct {
	Category string // category id or name
	Search   string
	Page     int
	PageSize int
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	Store(ctx context.Context, q StoreQuery) (*response_models.StoreResponse, error)
	ProductDetail(ctx context.Context, productID uuid.UUID) (*response_models.ProductDetailResponse, error)
	TopRated(ctx context.Context, limit int) ([]response_models.ProductResponse, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]response_models.ReviewResponse, error)
	AddReview(ctx context.Context, accountID, productID uuid.UUID, request request_models.ReviewRequest) (*response_models.ReviewResponse, error)
}

type catalogService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

func NewCatalogService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, response_models.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (s *catalogService) resolveCategory(ctx context.Context, ref string) (*uuid.UUID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.EqualFold(ref, "all") {
		return nil, nil
	}

	var category *db_models.Category
	var err error
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		category, err = s.categoryRepo.FindByID(ctx, id)
	} else {
		category, err = s.categoryRepo.FindByName(ctx, ref)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return &category.ID, nil
}

func (s *catalogService) Store(ctx context.Context, q StoreQuery) (*response_models.StoreResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = StorePageSize
	}
	if q.PageSize > maxStorePageSize {
		return nil, utils.ErrInvalidPageSize
	}

	categoryID, err := s.resolveCategory(ctx, q.Category)
	if err != nil {
		return nil, err
	}

	products, total, err := s.productRepo.List(ctx, repositories.ProductFilter{
		CategoryID: categoryID,
		Search:     q.Search,
		Page:       q.Page,
		PageSize:   q.PageSize,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.StoreResponse{
		Products:   response_models.NewPage(toProductResponses(products), total, q.Page, q.PageSize),
		Categories: categories,
	}, nil
}

func (s *catalogService) ProductDetail(ctx context.Context, productID uuid.UUID) (*response_models.ProductDetailResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	related, err := s.productRepo.Related(ctx, product, relatedLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	reviews, err := s.ListReviews(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &response_models.ProductDetailResponse{
		Product: toProductResponse(product),
		Related: toProductResponses(related),
		Reviews: reviews,
	}, nil
}

func (s *catalogService) TopRated(ctx context.Context, limit int) ([]response_models.ProductResponse, error) {
	if limit <= 0 {
		limit = topRatedLimit
	}
	products, err := s.productRepo.TopRated(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProductResponses(products), nil
}

func toReviewResponse(r *db_models.ProductReview) response_models.ReviewResponse {
	resp := response_models.ReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: utils.FormatDateTime(r.CreatedAt),
	}
	if r.Account != nil {
		resp.Username = r.Account.Username
	}
	return resp
}

func (s *catalogService) ListReviews(ctx context.Context, productID uuid.UUID) ([]response_models.ReviewResponse, error) {
	reviews, err := s.productRepo.ListReviews(ctx, productID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return out, nil
}

func (s *catalogService) AddReview(ctx context.Context, accountID, productID uuid.UUID, request request_models.ReviewRequest) (*response_models.ReviewResponse, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return nil, utils.ErrInvalidInput
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	review := &db_models.ProductReview{
		ProductID: productID,
		AccountID: accountID,
		Rating:    request.Rating,
		Comment:   strings.TrimSpace(request.Comment),
	}
	if err := s.productRepo.AddReview(ctx, review); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toReviewResponse(review)
	return &resp, nil
}
