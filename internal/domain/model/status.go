package model

// OrderStatus describes the kitchen/courier lifecycle of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusPickedUp  OrderStatus = "picked_up"
	OrderStatusOnTheWay  OrderStatus = "on_the_way"
	OrderStatusDelivered OrderStatus = "delivered"
)

// statusAliases maps legacy localized encodings to the canonical enum.
// Earlier dashboards stored Uzbek strings for the same states.
var statusAliases = map[string]OrderStatus{
	"yangi":          OrderStatusNew,
	"tayyorlanmoqda": OrderStatusPreparing,
	"tayyor":         OrderStatusReady,
	"olib ketildi":   OrderStatusPickedUp,
	"yolda":          OrderStatusOnTheWay,
	"yetkazildi":     OrderStatusDelivered,
}

// ParseStatus normalizes a stored status string to the canonical enum.
// Unknown values return false.
func ParseStatus(raw string) (OrderStatus, bool) {
	switch s := OrderStatus(raw); s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady,
		OrderStatusPickedUp, OrderStatusOnTheWay, OrderStatusDelivered:
		return s, true
	}
	if s, ok := statusAliases[raw]; ok {
		return s, true
	}
	return "", false
}

// Next returns the default forward transition for a status.
// The empty status marks a terminal state.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case OrderStatusNew:
		return OrderStatusPreparing
	case OrderStatusPreparing:
		return OrderStatusReady
	case OrderStatusReady:
		return OrderStatusDelivered
	case OrderStatusPickedUp:
		return OrderStatusOnTheWay
	case OrderStatusOnTheWay:
		return OrderStatusDelivered
	default:
		return ""
	}
}

// CanTransition reports whether from->to is a legal forward edge.
// Only "ready" has two successors: handing to a courier or direct delivery.
func CanTransition(from, to OrderStatus) bool {
	if to == "" {
		return false
	}
	if from == OrderStatusReady && to == OrderStatusPickedUp {
		return true
	}
	return from.Next() == to
}

// Terminal reports whether the status has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered
}
