// Package notify decouples event emission from delivery: the widget demo
// sends events here, and whatever hub is registered (the websocket hub in
// api/notifyhub) fans them out to connected clients.
package notify

import (
	"sync"

	"github.com/moyoez/uploadkit-go/types"
)

// Hub receives events for fan-out to connected demo clients.
type Hub interface {
	Broadcast(notification *types.Notification)
}

var (
	mu        sync.RWMutex
	activeHub Hub
	UseNotify = true
)

// SetUseNotify sets whether events are dispatched at all.
func SetUseNotify(use bool) {
	mu.Lock()
	defer mu.Unlock()
	UseNotify = use
}

// SetHub registers the hub events are dispatched to. Passing nil detaches.
func SetHub(h Hub) {
	mu.Lock()
	defer mu.Unlock()
	activeHub = h
}

// SendNotification dispatches one event to the registered hub. Safe to call
// with no hub registered: the event is silently dropped.
func SendNotification(notification *types.Notification) {
	mu.RLock()
	h := activeHub
	enabled := UseNotify
	mu.RUnlock()
	if !enabled || h == nil || notification == nil {
		return
	}
	h.Broadcast(notification)
}

// SendEvent is the convenience form used by the controllers.
func SendEvent(eventType, message string, data map[string]any) {
	SendNotification(&types.Notification{
		Type:    eventType,
		Message: message,
		Data:    data,
	})
}
