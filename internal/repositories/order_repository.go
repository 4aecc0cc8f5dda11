package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/pkg/utils"
)

type OrderRepository interface {
	// CreateFromCart turns the account's cart into an order at current prices
	// and empties the cart. Stock is not touched.
	CreateFromCart(ctx context.Context, accountID uuid.UUID, method db_models.PaymentMethod) (*db_models.Order, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error)
	FindForAccount(ctx context.Context, accountID, orderID uuid.UUID) (*db_models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (o *orderRepository) CreateFromCart(ctx context.Context, accountID uuid.UUID, method db_models.PaymentMethod) (*db_models.Order, error) {
	var order *db_models.Order

	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart db_models.Cart
		err := tx.Where("account_id = ?", accountID).First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrEmptyCart
			}
			return err
		}

		var items []db_models.CartItem
		err = tx.Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
			Where("cart_id = ?", cart.ID).
			Order("created_at ASC").
			Find(&items).Error
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return utils.ErrEmptyCart
		}

		total := decimal.Zero
		orderItems := make([]db_models.OrderItem, 0, len(items))
		for _, item := range items {
			if item.Product == nil {
				return utils.ErrProductNotFound
			}
			line := db_models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			}
			total = total.Add(line.LineTotal())
			orderItems = append(orderItems, line)
		}

		order = &db_models.Order{
			AccountID:     accountID,
			Total:         total,
			PaymentMethod: method,
			Status:        db_models.OrderStatusCompleted,
			Items:         orderItems,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		return tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&db_models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (o *orderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (o *orderRepository) FindForAccount(ctx context.Context, accountID, orderID uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := o.db.WithContext(ctx).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("id = ? AND account_id = ?", orderID, accountID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
