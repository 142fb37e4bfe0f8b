package domain

import "time"

// OrderRow is one row of the orders LEFT JOIN order_items projection. Item
// columns are nil for orders without line items.
type OrderRow struct {
	OrderID       int64
	CustomerName  string
	Phone         string
	UserID        *int64
	Status        OrderStatus
	PointsAccrued int64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	CompletedAt   *time.Time

	ProductID   *int64
	ProductName *string
	Price       *int64
	Quantity    *int
}

// OrderAggregator folds joined rows into orders keyed by order id, keeping
// first-seen order. Each item row is appended and its subtotal added to the total.
type OrderAggregator struct {
	index  map[int64]int
	orders []Order
}

func NewOrderAggregator() *OrderAggregator {
	return &OrderAggregator{index: make(map[int64]int)}
}

func (a *OrderAggregator) Add(row OrderRow) {
	pos, ok := a.index[row.OrderID]
	if !ok {
		pos = len(a.orders)
		a.index[row.OrderID] = pos
		a.orders = append(a.orders, Order{
			ID:            row.OrderID,
			CustomerName:  row.CustomerName,
			Phone:         row.Phone,
			UserID:        row.UserID,
			Status:        row.Status,
			PointsAccrued: row.PointsAccrued,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
			CompletedAt:   row.CompletedAt,
			Items:         []OrderItem{},
		})
	}

	if row.ProductName == nil || row.Price == nil || row.Quantity == nil {
		return
	}
	item := OrderItem{
		ProductID:   row.ProductID,
		ProductName: *row.ProductName,
		Price:       *row.Price,
		Quantity:    *row.Quantity,
	}
	order := &a.orders[pos]
	order.Items = append(order.Items, item)
	order.Total += item.Subtotal()
}

func (a *OrderAggregator) Orders() []Order {
	if a.orders == nil {
		return []Order{}
	}
	return a.orders
}

// Board builds the admin view: orders plus counts per status and the revenue
// of completed orders only.
func Board(orders []Order) OrderBoard {
	board := OrderBoard{
		Orders:       orders,
		StatusCounts: make(map[OrderStatus]int, len(Statuses)),
	}
	for _, status := range Statuses {
		board.StatusCounts[status] = 0
	}
	for i := range orders {
		board.StatusCounts[orders[i].Status]++
		if orders[i].Status == StatusCompleted {
			board.Revenue += orders[i].ItemsTotal()
		}
	}
	return board
}
