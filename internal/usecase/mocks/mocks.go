package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	nextID       int64
	transactions map[int64]*domain.Transaction

	InsertFunc    func(ctx context.Context, tx *domain.Transaction) (int64, error)
	UpdateFunc    func(ctx context.Context, tx *domain.Transaction) (int64, error)
	DeleteFunc    func(ctx context.Context, userID, id int64) (int64, error)
	GetViewFunc   func(ctx context.Context, userID, id int64) (*domain.TransactionView, error)
	ListViewsFunc func(ctx context.Context, userID int64) ([]*domain.TransactionView, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[int64]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Insert(ctx context.Context, tx *domain.Transaction) (int64, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *tx
	stored.ID = m.nextID
	m.transactions[stored.ID] = &stored
	return stored.ID, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.transactions[tx.ID]
	if !ok || existing.UserID != tx.UserID {
		return 0, nil
	}
	stored := *tx
	m.transactions[tx.ID] = &stored
	return 1, nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, userID, id int64) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.transactions[id]
	if !ok || existing.UserID != userID {
		return 0, nil
	}
	delete(m.transactions, id)
	return 1, nil
}

func (m *MockTransactionRepository) GetView(ctx context.Context, userID, id int64) (*domain.TransactionView, error) {
	if m.GetViewFunc != nil {
		return m.GetViewFunc(ctx, userID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx, ok := m.transactions[id]
	if !ok || tx.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return viewOf(tx), nil
}

func (m *MockTransactionRepository) ListViews(ctx context.Context, userID int64) ([]*domain.TransactionView, error) {
	if m.ListViewsFunc != nil {
		return m.ListViewsFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var views []*domain.TransactionView
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			views = append(views, viewOf(tx))
		}
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Date != views[j].Date {
			return views[i].Date > views[j].Date
		}
		return views[i].ID > views[j].ID
	})
	return views, nil
}

// Stored returns the raw stored row, for assertions.
func (m *MockTransactionRepository) Stored(id int64) *domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.transactions[id]
}

func viewOf(tx *domain.Transaction) *domain.TransactionView {
	return &domain.TransactionView{
		ID:          tx.ID,
		Type:        tx.Type,
		Category:    "-",
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
		AccountID:   tx.AccountID,
		AccountName: "-",
	}
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account

	GetOwnedFunc   func(ctx context.Context, userID, id int64) (*domain.Account, error)
	FirstOwnedFunc func(ctx context.Context, userID int64) (*domain.Account, error)
	ListByUserFunc func(ctx context.Context, userID int64) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
	}
}

// Add seeds an account into the in-memory store.
func (m *MockAccountRepository) Add(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockAccountRepository) GetOwned(ctx context.Context, userID, id int64) (*domain.Account, error) {
	if m.GetOwnedFunc != nil {
		return m.GetOwnedFunc(ctx, userID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok && acc.UserID == userID {
		return acc, nil
	}
	return nil, domain.ErrInvalidAccount
}

func (m *MockAccountRepository) FirstOwned(ctx context.Context, userID int64) (*domain.Account, error) {
	if m.FirstOwnedFunc != nil {
		return m.FirstOwnedFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var first *domain.Account
	for _, acc := range m.accounts {
		if acc.UserID != userID {
			continue
		}
		if first == nil || acc.ID < first.ID {
			first = acc
		}
	}
	if first == nil {
		return nil, domain.ErrInvalidAccount
	}
	return first, nil
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Account, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.UserID == userID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})
	return accounts, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	nextID     int64
	categories map[int64]*domain.Category

	FindByKeyFunc func(ctx context.Context, userID int64, name string, txType domain.TransactionType) (*domain.Category, error)
	InsertFunc    func(ctx context.Context, category *domain.Category) (int64, error)
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[int64]*domain.Category),
	}
}

func (m *MockCategoryRepository) FindByKey(ctx context.Context, userID int64, name string, txType domain.TransactionType) (*domain.Category, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, userID, name, txType)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.UserID == userID && c.Name == name && c.Type == txType {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Insert(ctx context.Context, category *domain.Category) (int64, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *category
	stored.ID = m.nextID
	m.categories[stored.ID] = &stored
	return stored.ID, nil
}

// Count returns the number of stored categories, for race assertions.
func (m *MockCategoryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.categories)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*domain.User

	GetByIDFunc    func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[int64]*domain.User),
	}
}

// Add seeds a user into the in-memory store.
func (m *MockUserRepository) Add(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}
