package service

import (
	"context"
	"time"

	"loyalty-storefront/shop-svc/internal/domain"
)

// Tx is one atomic, isolated unit of work. Lock* methods hold the row until
// the surrounding transaction ends.
type Tx interface {
	ProductsByID(ctx context.Context, ids []int64) (map[int64]domain.Product, error)

	InsertOrder(ctx context.Context, order *domain.Order) error
	LockOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	SaveOrderStatus(ctx context.Context, order *domain.Order) error

	LockPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error)
	SavePointsAccount(ctx context.Context, account *domain.PointsAccount) error

	LockReward(ctx context.Context, rewardID int64) (*domain.Reward, error)
	SaveRewardStock(ctx context.Context, rewardID int64, stock int) error
	InsertRedemption(ctx context.Context, record *domain.RedemptionRecord) error
}

type Transactor interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type OrderRepository interface {
	Transactor
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
}

type PointsRepository interface {
	GetPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error)
}

type RewardRepository interface {
	Transactor
	ListRewards(ctx context.Context, activeOnly bool) ([]domain.Reward, error)
	GetReward(ctx context.Context, id int64) (*domain.Reward, error)
	CreateReward(ctx context.Context, reward *domain.Reward) error
	UpdateReward(ctx context.Context, reward *domain.Reward) error
	ListRedemptions(ctx context.Context, userID int64) ([]domain.RedemptionRecord, error)
}

// Store is everything the shop needs from persistence.
type Store interface {
	CatalogRepository
	OrderRepository
	PointsRepository
	RewardRepository
}

type EventPublisher interface {
	Publish(ctx context.Context, msg domain.KafkaMessage) error
}

type Clock func() time.Time

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, principal domain.Principal, product *domain.Product) error
	Update(ctx context.Context, principal domain.Principal, product *domain.Product) error
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, principal domain.Principal, req domain.CheckoutRequest) (*domain.Order, error)
	Transition(ctx context.Context, principal domain.Principal, orderID int64, target domain.OrderStatus) (*domain.Order, error)
	Get(ctx context.Context, principal domain.Principal, orderID int64) (*domain.Order, error)
	ListByUser(ctx context.Context, principal domain.Principal) ([]domain.Order, error)
	ListAll(ctx context.Context, principal domain.Principal) ([]domain.Order, error)
	Board(ctx context.Context, principal domain.Principal) (*domain.OrderBoard, error)
	ReceiptQR(ctx context.Context, principal domain.Principal, orderID int64) ([]byte, error)
}

type PointsLedgerInterface interface {
	BalanceOf(ctx context.Context, userID int64) (domain.Balance, error)
}

type RewardServiceInterface interface {
	ListActive(ctx context.Context) ([]domain.Reward, error)
	Overview(ctx context.Context, principal domain.Principal) (*domain.RewardsOverview, error)
	Redeem(ctx context.Context, principal domain.Principal, rewardID int64) (*domain.RedemptionRecord, error)
	Redemptions(ctx context.Context, principal domain.Principal) ([]domain.RedemptionRecord, error)
	ListAll(ctx context.Context, principal domain.Principal) ([]domain.Reward, error)
	Create(ctx context.Context, principal domain.Principal, reward *domain.Reward) error
	Update(ctx context.Context, principal domain.Principal, reward *domain.Reward) error
}

func requireAdmin(principal domain.Principal) error {
	if !principal.Admin {
		return domain.ErrForbidden
	}
	return nil
}

func requireUser(principal domain.Principal) (int64, error) {
	if principal.UserID == nil {
		return 0, domain.ErrUnauthenticated
	}
	return *principal.UserID, nil
}
