package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/pkg/utils"
)

// CartItemChange is the outcome of a quantity update.
type CartItemChange struct {
	Item     *db_models.CartItem
	Quantity int
	Clamped  bool
	Removed  bool
}

// CartRepository keeps cart rows and product stock in step. Every mutation
// moves units between products.stock and cart_items.quantity inside one
// transaction, so their sum never changes.
type CartRepository interface {
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Cart, error)
	CountItems(ctx context.Context, accountID uuid.UUID) (int64, error)
	AddItem(ctx context.Context, accountID, productID uuid.UUID) (*db_models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, accountID, itemID uuid.UUID, quantity int) (*CartItemChange, error)
	RemoveItem(ctx context.Context, accountID, itemID uuid.UUID) (*db_models.CartItem, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Items.Product").
		Where("account_id = ?", accountID).
		First(&cart).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) CountItems(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("COALESCE(SUM(cart_items.quantity), 0)").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.account_id = ?", accountID).
		Scan(&n).Error
	return n, err
}

func (r *cartRepository) AddItem(ctx context.Context, accountID, productID uuid.UUID) (*db_models.CartItem, error) {
	var item db_models.CartItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product db_models.Product
		if err := tx.Select("id", "stock").First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrProductNotFound
			}
			return err
		}
		if product.Stock <= 0 {
			return utils.ErrOutOfStock
		}

		var cart db_models.Cart
		if err := tx.Where(db_models.Cart{AccountID: accountID}).FirstOrCreate(&cart).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).Limit(1).Find(&item).Error; err != nil {
			return err
		}
		exists := item.ID != uuid.Nil

		threshold := 0
		if exists {
			threshold = item.Quantity
		}
		res := tx.Model(&db_models.Product{}).
			Where("id = ? AND stock > ?", productID, threshold).
			UpdateColumn("stock", gorm.Expr("stock - ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if exists {
				return utils.ErrInsufficientStock
			}
			return utils.ErrOutOfStock
		}

		if exists {
			item.Quantity++
			return tx.Model(&item).UpdateColumn("quantity", item.Quantity).Error
		}
		item = db_models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: 1}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) ownedItem(tx *gorm.DB, accountID, itemID uuid.UUID) (*db_models.CartItem, error) {
	var item db_models.CartItem
	err := tx.Select("cart_items.*").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.account_id = ?", itemID, accountID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func restoreStock(tx *gorm.DB, productID uuid.UUID, quantity int) error {
	return tx.Model(&db_models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity)).Error
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, accountID, itemID uuid.UUID, quantity int) (*CartItemChange, error) {
	change := &CartItemChange{Quantity: quantity}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := r.ownedItem(tx, accountID, itemID)
		if err != nil {
			return err
		}
		change.Item = item

		if quantity <= 0 {
			if err := restoreStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			change.Removed = true
			change.Quantity = 0
			return tx.Unscoped().Delete(item).Error
		}

		var product db_models.Product
		if err := tx.Unscoped().Select("id", "stock").First(&product, "id = ?", item.ProductID).Error; err != nil {
			return err
		}

		delta := quantity - item.Quantity
		switch {
		case delta > 0:
			if delta > product.Stock {
				delta = product.Stock
				change.Quantity = item.Quantity + delta
				change.Clamped = true
			}
			if delta > 0 {
				res := tx.Model(&db_models.Product{}).
					Where("id = ? AND stock >= ?", item.ProductID, delta).
					UpdateColumn("stock", gorm.Expr("stock - ?", delta))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return utils.ErrInsufficientStock
				}
			}
		case delta < 0:
			if err := restoreStock(tx, item.ProductID, -delta); err != nil {
				return err
			}
		}

		item.Quantity = change.Quantity
		return tx.Model(item).UpdateColumn("quantity", item.Quantity).Error
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, accountID, itemID uuid.UUID) (*db_models.CartItem, error) {
	var removed *db_models.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := r.ownedItem(tx, accountID, itemID)
		if err != nil {
			return err
		}
		if err := restoreStock(tx, item.ProductID, item.Quantity); err != nil {
			return err
		}
		removed = item
		return tx.Unscoped().Delete(item).Error
	})
	return removed, err
}
