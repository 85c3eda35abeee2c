package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	EventApplicationSubmitted     = "application_submitted"
	EventApplicationStatusChanged = "application_status_changed"
)

type ApplicationEvent struct {
	Type          string    `json:"type"`
	ApplicationID uuid.UUID `json:"application_id"`
	JobID         uuid.UUID `json:"job_id"`
	Status        string    `json:"status"`
	Timestamp     string    `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyApplicationEvent broadcasts an application lifecycle event to every
// connected subscriber. A nil default hub makes this a no-op.
func NotifyApplicationEvent(evt ApplicationEvent) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	if evt.Timestamp == "" {
		evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
