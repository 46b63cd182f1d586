package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/infrastructure/models"
)

// AccountRepository implements account data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	m := &models.Account{
		ID:             account.ID,
		ProviderKey:    account.ProviderKey,
		Email:          account.Email,
		Name:           account.Name,
		Role:           string(account.Role),
		Balance:        account.Balance,
		GameProfileURL: account.GameProfileURL,
		ContactHandle:  account.ContactHandle,
		Verified:       account.Verified,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an account by ID, including its inventory
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	inventory, err := r.loadInventory(ctx, id)
	if err != nil {
		return nil, err
	}

	account := toAccountEntity(&m)
	account.Inventory = inventory
	return account, nil
}

// GetByProviderKey gets an account by its external identity key
func (r *AccountRepository) GetByProviderKey(ctx context.Context, key string) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("provider_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	inventory, err := r.loadInventory(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	account := toAccountEntity(&m)
	account.Inventory = inventory
	return account, nil
}

// UpdateProfile updates the editable profile fields
func (r *AccountRepository) UpdateProfile(ctx context.Context, account *entities.Account) error {
	updates := map[string]interface{}{
		"name":             account.Name,
		"game_profile_url": account.GameProfileURL,
		"contact_handle":   account.ContactHandle,
		"updated_at":       time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).Where("id = ?", account.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists accounts with optional search filter
func (r *AccountRepository) List(ctx context.Context, search string) ([]*entities.Account, error) {
	var accountModels []models.Account
	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", searchTerm, searchTerm)
	}

	if err := query.Find(&accountModels).Error; err != nil {
		return nil, err
	}

	var accounts []*entities.Account
	for _, m := range accountModels {
		model := m
		accounts = append(accounts, toAccountEntity(&model))
	}
	return accounts, nil
}

// Count counts all accounts
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).Count(&count).Error
	return count, err
}

// Debit subtracts amount from the balance, conditional on sufficient funds
func (r *AccountRepository) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ? AND balance >= ?", id, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInsufficientFunds
	}
	return nil
}

// Credit adds amount to the balance
func (r *AccountRepository) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetBalance overwrites the balance (admin override)
func (r *AccountRepository) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddHolding adds quantity units of resource to the account inventory
func (r *AccountRepository) AddHolding(ctx context.Context, id uuid.UUID, resource entities.Resource, quantity int64) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Holding{}).
		Where("account_id = ? AND resource = ?", id, resource).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	return db.Create(&models.Holding{
		ID:        uuid.New(),
		AccountID: id,
		Resource:  string(resource),
		Quantity:  quantity,
		UpdatedAt: time.Now(),
	}).Error
}

// SetVerified updates the denormalized verification flag
func (r *AccountRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verified":   verified,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) loadInventory(ctx context.Context, id uuid.UUID) (map[entities.Resource]int64, error) {
	var holdings []models.Holding
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("account_id = ?", id).Find(&holdings).Error; err != nil {
		return nil, err
	}

	inventory := make(map[entities.Resource]int64, len(entities.Resources))
	for _, res := range entities.Resources {
		inventory[res] = 0
	}
	for _, h := range holdings {
		inventory[entities.Resource(h.Resource)] = h.Quantity
	}
	return inventory, nil
}

func toAccountEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:             m.ID,
		ProviderKey:    m.ProviderKey,
		Email:          m.Email,
		Name:           m.Name,
		Role:           entities.AccountRole(m.Role),
		Balance:        m.Balance,
		GameProfileURL: m.GameProfileURL,
		ContactHandle:  m.ContactHandle,
		Verified:       m.Verified,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
