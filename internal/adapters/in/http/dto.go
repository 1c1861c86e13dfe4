package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/store"
)

// Request bodies.
type (
	CartEntryRequest struct {
		StoreID     string `json:"storeId"`
		ProductID   string `json:"productId"`
		Name        string `json:"name"`
		Description string `json:"description"`
		PhotoRef    string `json:"photoRef"`
		Quantity    int    `json:"quantity"`
		UnitPrice   string `json:"unitPrice"`
		Discount    string `json:"discount"`
	}

	CheckoutRequest struct {
		PaymentMethod string `json:"paymentMethod"`
	}

	PaymentRequest struct {
		Amount           string `json:"amount"`
		PaymentMethod    string `json:"paymentMethod"`
		PaymentReference string `json:"paymentReference"`
	}

	AdvanceItemRequest struct {
		Target string `json:"target"`
	}

	JoinRequestRequest struct {
		JoinCode string `json:"joinCode"`
	}

	RoleRequest struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		ColorHex    string   `json:"colorHex"`
		Permissions []string `json:"permissions"`
	}

	AssignRoleRequest struct {
		// RoleID null unassigns the worker's role.
		RoleID *string `json:"roleId"`
	}
)

// Response bodies.
type (
	CartEntry struct {
		StoreID   string `json:"storeId"`
		ProductID string `json:"productId"`
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		UnitPrice string `json:"unitPrice"`
		Discount  string `json:"discount"`
		LineTotal string `json:"lineTotal"`
	}

	OrderItem struct {
		ProductID   string `json:"productId"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		PhotoRef    string `json:"photoRef,omitempty"`
		Quantity    int    `json:"quantity"`
		UnitPrice   string `json:"unitPrice"`
		Discount    string `json:"discount"`
		LineTotal   string `json:"lineTotal"`
		Status      string `json:"status"`
		StatusLabel string `json:"statusLabel"`
	}

	Order struct {
		ID               string      `json:"id"`
		ClientID         string      `json:"clientId"`
		StoreID          string      `json:"storeId"`
		StoreName        string      `json:"storeName,omitempty"`
		PaymentMethod    string      `json:"paymentMethod"`
		PaymentReference string      `json:"paymentReference,omitempty"`
		PurchasedAt      time.Time   `json:"purchasedAt"`
		Status           string      `json:"status"`
		Total            string      `json:"total"`
		Items            []OrderItem `json:"items"`
	}

	CheckoutResponse struct {
		Orders       []Order  `json:"orders"`
		FailedStores []string `json:"failedStores"`
		Error        string   `json:"error,omitempty"`
	}

	AuthorizedStages struct {
		StoreID   string   `json:"storeId"`
		StoreName string   `json:"storeName"`
		Stages    []string `json:"stages"`
		Pending   bool     `json:"pending"`
	}

	QueueItem struct {
		OrderID       string    `json:"orderId"`
		ClientID      string    `json:"clientId"`
		ProductID     string    `json:"productId"`
		Name          string    `json:"name"`
		Description   string    `json:"description,omitempty"`
		PhotoRef      string    `json:"photoRef,omitempty"`
		Quantity      int       `json:"quantity"`
		Status        string    `json:"status"`
		StatusLabel   string    `json:"statusLabel"`
		PaymentMethod string    `json:"paymentMethod"`
		PurchasedAt   time.Time `json:"purchasedAt"`
	}

	DailyReport struct {
		Date           string  `json:"date"`
		StoreName      string  `json:"storeName"`
		Orders         []Order `json:"orders"`
		DailyTotal     string  `json:"dailyTotal"`
		MonthlyAverage string  `json:"monthlyAverage"`
	}

	DailyRevenue struct {
		Date           string `json:"date"`
		DailyTotal     string `json:"dailyTotal"`
		MonthlyAverage string `json:"monthlyAverage"`
		FromRollup     bool   `json:"fromRollup"`
	}

	Role struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		ColorHex    string   `json:"colorHex"`
		Permissions []string `json:"permissions"`
	}

	Membership struct {
		StoreID  string    `json:"storeId"`
		UserID   string    `json:"userId"`
		RoleID   *string   `json:"roleId"`
		JoinedAt time.Time `json:"joinedAt"`
	}

	JoinRequest struct {
		StoreID     string    `json:"storeId"`
		UserID      string    `json:"userId"`
		RequestedAt time.Time `json:"requestedAt"`
	}
)

func cartEntryFrom(e *cart.Entry) CartEntry {
	d := e.Details()
	return CartEntry{
		StoreID:   e.StoreID().String(),
		ProductID: e.ProductID().String(),
		Name:      d.Name,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice.String(),
		Discount:  d.Discount.Decimal().String(),
		LineTotal: e.LineTotal().String(),
	}
}

func orderFrom(o *order.Order) Order {
	items := make([]OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItem{
			ProductID:   item.ProductID().String(),
			Name:        item.Name(),
			Description: item.Description(),
			PhotoRef:    item.PhotoRef(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
			Discount:    item.Discount().Decimal().String(),
			LineTotal:   item.LineTotal().String(),
			Status:      item.Status().Code(),
			StatusLabel: item.Status().String(),
		})
	}
	return Order{
		ID:               o.ID().String(),
		ClientID:         o.ClientID().String(),
		StoreID:          o.StoreID().String(),
		PaymentMethod:    o.PaymentMethod(),
		PaymentReference: o.PaymentReference(),
		PurchasedAt:      o.PurchasedAt(),
		Status:           o.Status().String(),
		Total:            o.Total().String(),
		Items:            items,
	}
}

func reportOrderFrom(e queries.DailyReportEntry) Order {
	items := make([]OrderItem, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID.String(),
			Name:        item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			Discount:    item.Discount.Decimal().String(),
			LineTotal:   item.LineTotal.String(),
			Status:      item.Status.Code(),
			StatusLabel: item.Status.String(),
		})
	}
	return Order{
		ID:               e.OrderID.String(),
		ClientID:         e.ClientID.String(),
		StoreName:        e.StoreName,
		PaymentMethod:    e.PaymentMethod,
		PaymentReference: e.PaymentReference,
		PurchasedAt:      e.PurchasedAt,
		Status:           e.Status.String(),
		Total:            e.Total.String(),
		Items:            items,
	}
}

func roleFrom(r *store.Role) Role {
	return Role{
		ID:          r.ID().String(),
		Name:        r.Name(),
		Description: r.Description(),
		ColorHex:    r.ColorHex(),
		Permissions: r.Permissions().Names(),
	}
}

func membershipFrom(m *store.Membership) Membership {
	return Membership{
		StoreID:  m.StoreID().String(),
		UserID:   m.UserID().String(),
		RoleID:   uuidString(m.RoleID()),
		JoinedAt: m.JoinedAt(),
	}
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func stageNames(stages []store.Stage) []string {
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.String())
	}
	return names
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
