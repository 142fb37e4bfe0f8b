package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"loyalty-storefront/shop-svc/internal/domain"
	"loyalty-storefront/shop-svc/internal/service"
)

// MemoryStore keeps all shop state in process. Transactions are serialised
// behind one mutex and work on a copy that replaces the live state only on
// success, so a failed transaction leaves nothing behind.
//
// Every transaction copies the whole state under the lock, so a write costs
// O(store size). It backs tests and STORAGE=memory development only.
type MemoryStore struct {
	mu    sync.Mutex
	state *memState
	now   func() time.Time
}

type memState struct {
	products    map[int64]domain.Product
	orders      map[int64]domain.Order
	accounts    map[int64]domain.PointsAccount
	rewards     map[int64]domain.Reward
	redemptions []domain.RedemptionRecord

	productSeq    int64
	orderSeq      int64
	rewardSeq     int64
	redemptionSeq int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: &memState{
			products: map[int64]domain.Product{},
			orders:   map[int64]domain.Order{},
			accounts: map[int64]domain.PointsAccount{},
			rewards:  map[int64]domain.Reward{},
		},
		now: time.Now,
	}
}

var (
	_ service.Store = (*MemoryStore)(nil)
	_ service.Tx    = (*memTx)(nil)
)

func (st *memState) clone() *memState {
	c := *st
	c.products = make(map[int64]domain.Product, len(st.products))
	for k, v := range st.products {
		c.products[k] = v
	}
	c.orders = make(map[int64]domain.Order, len(st.orders))
	for k, v := range st.orders {
		c.orders[k] = copyOrder(v)
	}
	c.accounts = make(map[int64]domain.PointsAccount, len(st.accounts))
	for k, v := range st.accounts {
		c.accounts[k] = v
	}
	c.rewards = make(map[int64]domain.Reward, len(st.rewards))
	for k, v := range st.rewards {
		c.rewards[k] = v
	}
	c.redemptions = append([]domain.RedemptionRecord(nil), st.redemptions...)
	return &c
}

func copyOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem{}, o.Items...)
	o.Total = o.ItemsTotal()
	return o
}

func (s *MemoryStore) InTx(ctx context.Context, fn func(tx service.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.state.clone()
	if err := fn(&memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]domain.Product, 0, len(s.state.products))
	for _, p := range s.state.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Category != products[j].Category {
			return products[i].Category < products[j].Category
		}
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func (s *MemoryStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.state.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	return &p, nil
}

func (s *MemoryStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.productSeq++
	p.ID = s.state.productSeq
	p.CreatedAt = s.now()
	s.state.products[p.ID] = *p
	return nil
}

func (s *MemoryStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.state.products[p.ID]
	if !ok {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, p.ID)
	}
	p.CreatedAt = existing.CreatedAt
	s.state.products[p.ID] = *p
	return nil
}

func (s *MemoryStore) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.products[id]; !ok {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	for _, o := range s.state.orders {
		for _, item := range o.Items {
			if item.ProductID != nil && *item.ProductID == id {
				return fmt.Errorf("%w: product %d", domain.ErrProductInUse, id)
			}
		}
	}
	delete(s.state.products, id)
	return nil
}

func (s *MemoryStore) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := []domain.Order{}
	for _, o := range s.state.orders {
		if filter.UserID != nil && !(o.UserID != nil && *o.UserID == *filter.UserID) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		orders = append(orders, copyOrder(o))
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (s *MemoryStore) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.state.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	order := copyOrder(o)
	return &order, nil
}

func (s *MemoryStore) GetPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.state.accounts[userID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *MemoryStore) ListRewards(ctx context.Context, activeOnly bool) ([]domain.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rewards := []domain.Reward{}
	for _, rw := range s.state.rewards {
		if activeOnly && !rw.Active {
			continue
		}
		rewards = append(rewards, rw)
	}
	sort.Slice(rewards, func(i, j int) bool {
		if rewards[i].PointsRequired != rewards[j].PointsRequired {
			return rewards[i].PointsRequired < rewards[j].PointsRequired
		}
		return rewards[i].ID < rewards[j].ID
	})
	return rewards, nil
}

func (s *MemoryStore) GetReward(ctx context.Context, id int64) (*domain.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rw, ok := s.state.rewards[id]
	if !ok {
		return nil, fmt.Errorf("%w: reward %d", domain.ErrNotFound, id)
	}
	return &rw, nil
}

func (s *MemoryStore) CreateReward(ctx context.Context, rw *domain.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.rewardSeq++
	rw.ID = s.state.rewardSeq
	rw.CreatedAt = s.now()
	s.state.rewards[rw.ID] = *rw
	return nil
}

func (s *MemoryStore) UpdateReward(ctx context.Context, rw *domain.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.state.rewards[rw.ID]
	if !ok {
		return fmt.Errorf("%w: reward %d", domain.ErrNotFound, rw.ID)
	}
	rw.CreatedAt = existing.CreatedAt
	s.state.rewards[rw.ID] = *rw
	return nil
}

func (s *MemoryStore) ListRedemptions(ctx context.Context, userID int64) ([]domain.RedemptionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []domain.RedemptionRecord{}
	for i := len(s.state.redemptions) - 1; i >= 0; i-- {
		if s.state.redemptions[i].UserID == userID {
			records = append(records, s.state.redemptions[i])
		}
	}
	return records, nil
}

type memTx struct {
	st *memState
}

func (t *memTx) ProductsByID(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products := make(map[int64]domain.Product, len(ids))
	for _, id := range ids {
		if p, ok := t.st.products[id]; ok {
			products[id] = p
		}
	}
	return products, nil
}

func (t *memTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	t.st.orderSeq++
	order.ID = t.st.orderSeq
	t.st.orders[order.ID] = copyOrder(*order)
	return nil
}

func (t *memTx) LockOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	o, ok := t.st.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	order := copyOrder(o)
	return &order, nil
}

func (t *memTx) SaveOrderStatus(ctx context.Context, order *domain.Order) error {
	existing, ok := t.st.orders[order.ID]
	if !ok {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, order.ID)
	}
	existing.Status = order.Status
	existing.PointsAccrued = order.PointsAccrued
	existing.UpdatedAt = order.UpdatedAt
	existing.CompletedAt = order.CompletedAt
	t.st.orders[order.ID] = existing
	return nil
}

func (t *memTx) LockPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error) {
	a, ok := t.st.accounts[userID]
	if !ok {
		a = domain.PointsAccount{UserID: userID}
		t.st.accounts[userID] = a
	}
	return &a, nil
}

func (t *memTx) SavePointsAccount(ctx context.Context, a *domain.PointsAccount) error {
	t.st.accounts[a.UserID] = *a
	return nil
}

func (t *memTx) LockReward(ctx context.Context, rewardID int64) (*domain.Reward, error) {
	rw, ok := t.st.rewards[rewardID]
	if !ok {
		return nil, fmt.Errorf("%w: reward %d", domain.ErrNotFound, rewardID)
	}
	return &rw, nil
}

func (t *memTx) SaveRewardStock(ctx context.Context, rewardID int64, stock int) error {
	rw, ok := t.st.rewards[rewardID]
	if !ok {
		return fmt.Errorf("%w: reward %d", domain.ErrNotFound, rewardID)
	}
	rw.Stock = stock
	t.st.rewards[rewardID] = rw
	return nil
}

func (t *memTx) InsertRedemption(ctx context.Context, rec *domain.RedemptionRecord) error {
	t.st.redemptionSeq++
	rec.ID = t.st.redemptionSeq
	t.st.redemptions = append(t.st.redemptions, *rec)
	return nil
}
