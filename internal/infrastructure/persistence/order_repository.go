package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/elir12131/agroflow/internal/domain/ordering"
	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/elir12131/agroflow/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds orders newest first, optionally filtered by customer
// name and status
func (r *GormOrderRepository) FindAll(ctx context.Context, filter ordering.OrderFilter) ([]ordering.Order, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&models.OrderModel{})
	if filter.CustomerName != "" {
		query = query.
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.name) LIKE LOWER(?)", "%"+filter.CustomerName+"%")
	}
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}

	var rows []models.OrderModel
	if err := query.
		Preload("Items").
		Order("orders.placed_at DESC").
		Limit(filter.PageSize).
		Offset(filter.Offset()).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]ordering.Order, len(rows))
	for i, row := range rows {
		orders[i] = *row.ToDomain()
	}
	return orders, nil
}

// FindByCustomerID finds a customer's orders newest first
func (r *GormOrderRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]ordering.Order, error) {
	var rows []models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("placed_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]ordering.Order, len(rows))
	for i, row := range rows {
		orders[i] = *row.ToDomain()
	}
	return orders, nil
}

// Save creates or updates an order and its items in one transaction
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	model := models.OrderModelFromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := model.Items
		model.Items = nil
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Save(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateFulfillment persists fulfillment results atomically: every item
// update plus the order's status and total commit together or not at
// all. The status guard makes concurrent fulfillments of the same order
// lose cleanly.
func (r *GormOrderRepository) UpdateFulfillment(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", order.ID, ordering.OrderStatusPendingVendor).
			Updates(map[string]interface{}{
				"status":     order.Status,
				"total":      order.Total,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("ORDER_NOT_PENDING", "Order is no longer pending fulfillment")
		}

		for _, item := range order.Items {
			if err := tx.Model(&models.OrderItemModel{}).
				Where("id = ? AND order_id = ?", item.ID, order.ID).
				Updates(map[string]interface{}{
					"price":        item.Price,
					"out_of_stock": item.OutOfStock,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountByStatus counts orders in the given status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status ordering.OrderStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsForCustomer reports whether the customer has any orders
func (r *GormOrderRepository) ExistsForCustomer(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
