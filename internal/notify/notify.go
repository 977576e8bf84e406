package notify

import (
	"encoding/json"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/ws"

	"github.com/sirupsen/logrus"
)

type Kind string

const (
	KindCreated  Kind = "created"
	KindUpdated  Kind = "updated"
	KindDeleted  Kind = "deleted"
	KindLowStock Kind = "low_stock"
)

// DefaultLowStockThreshold triggers an alert when stock <= threshold
const DefaultLowStockThreshold = 5

// Event is a structured notification emitted after a transaction commits
type Event struct {
	Kind    Kind                   `json:"kind"`
	Entity  string                 `json:"entity"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Notifier delivers events best-effort. Delivery failure is logged and
// never propagated to the caller.
type Notifier interface {
	Notify(event Event)
}

// HubNotifier broadcasts events as JSON over the websocket hub
type HubNotifier struct {
	hub *ws.Hub
	log *logrus.Logger
}

func NewHubNotifier(hub *ws.Hub, log *logrus.Logger) *HubNotifier {
	return &HubNotifier{hub: hub, log: log}
}

func (n *HubNotifier) Notify(event Event) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				n.log.WithField("event", event.Kind).Warnf("notification delivery panicked: %v", r)
			}
		}()

		msg, err := json.Marshal(event)
		if err != nil {
			n.log.WithField("event", event.Kind).Warnf("notification marshal failed: %v", err)
			return
		}
		n.hub.Broadcast <- msg
		n.log.WithFields(logrus.Fields{
			"event":  event.Kind,
			"entity": event.Entity,
		}).Debug("notification delivered")
	}()
}

// ProductEvent builds a product lifecycle event
func ProductEvent(kind Kind, product *model.Product, message string) Event {
	return Event{
		Kind:    kind,
		Entity:  "product",
		Message: message,
		Details: map[string]interface{}{
			"id":    product.ID,
			"name":  product.Name,
			"stock": product.Stock,
			"price": product.Price,
		},
	}
}

// LowStockEvent builds the alert emitted when stock falls to or below the threshold
func LowStockEvent(product *model.Product, threshold int) Event {
	status := "Low Stock"
	if product.Stock == 0 {
		status = "Out of Stock"
	}
	return Event{
		Kind:    KindLowStock,
		Entity:  "product",
		Message: fmt.Sprintf("%s alert: '%s' has %d units left", status, product.Name, product.Stock),
		Details: map[string]interface{}{
			"id":        product.ID,
			"name":      product.Name,
			"stock":     product.Stock,
			"threshold": threshold,
			"status":    status,
		},
	}
}

// CheckLowStock emits a low-stock alert when warranted. A nil threshold
// falls back to the default.
func CheckLowStock(n Notifier, product *model.Product, threshold *int) {
	limit := DefaultLowStockThreshold
	if threshold != nil {
		limit = *threshold
	}
	if product.Stock <= limit {
		n.Notify(LowStockEvent(product, limit))
	}
}
