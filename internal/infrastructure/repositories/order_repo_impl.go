package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/infrastructure/models"
)

// OrderRepository implements order book data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new sell order
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()

	m := &models.Order{
		ID:        order.ID,
		SellerID:  order.SellerID,
		Resource:  string(order.Resource),
		UnitPrice: order.UnitPrice,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toOrderEntity(&m), nil
}

// ListByResource lists the order book for one resource, cheapest first
func (r *OrderRepository) ListByResource(ctx context.Context, resource entities.Resource) ([]*entities.Order, error) {
	var orderModels []models.Order
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("resource = ?", resource).
		Order("unit_price ASC, created_at ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}
	return toOrderEntities(orderModels), nil
}

// ListBySeller lists all open orders owned by an account
func (r *OrderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Order, error) {
	var orderModels []models.Order
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}
	return toOrderEntities(orderModels), nil
}

// Delete removes an order
func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DecrementQuantity atomically subtracts quantity and returns the remainder.
// The guard on the current quantity is what prevents two concurrent buyers
// from jointly overselling the order.
func (r *OrderRepository) DecrementQuantity(ctx context.Context, id uuid.UUID, quantity int64) (int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Order{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := db.Model(&models.Order{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return 0, err
		}
		if exists == 0 {
			return 0, domainerrors.ErrNotFound
		}
		return 0, domainerrors.ErrOrderOversold
	}

	var m models.Order
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return 0, err
	}
	return m.Quantity, nil
}

// OpenCounts returns the number of open orders per resource
func (r *OrderRepository) OpenCounts(ctx context.Context) (map[entities.Resource]int64, error) {
	type row struct {
		Resource string
		Count    int64
	}
	var rows []row
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Select("resource, COUNT(*) AS count").
		Group("resource").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.Resource]int64, len(entities.Resources))
	for _, res := range entities.Resources {
		counts[res] = 0
	}
	for _, rw := range rows {
		counts[entities.Resource(rw.Resource)] = rw.Count
	}
	return counts, nil
}

// Count counts all open orders
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}

func toOrderEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:        m.ID,
		SellerID:  m.SellerID,
		Resource:  entities.Resource(m.Resource),
		UnitPrice: m.UnitPrice,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
	}
}

func toOrderEntities(ms []models.Order) []*entities.Order {
	var orders []*entities.Order
	for _, m := range ms {
		model := m
		orders = append(orders, toOrderEntity(&model))
	}
	return orders
}
