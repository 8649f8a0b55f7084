package ws

import (
	"encoding/json"
	"time"

	"directin/internal/usecase"
)

// RefreshCompletedEvent is pushed to overlay clients after every refresh
// run so badges update without polling.
type RefreshCompletedEvent struct {
	Type      string        `json:"type"`
	Badge     usecase.Badge `json:"badge"`
	Timestamp string        `json:"timestamp"`
}

// Notifier adapts the hub to the refresh usecase's notification hook.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyRefreshCompleted(badge usecase.Badge) {
	if n == nil || n.hub == nil {
		return
	}
	evt := RefreshCompletedEvent{
		Type:      "refresh_completed",
		Badge:     badge,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
