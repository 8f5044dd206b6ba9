package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type NewApplicationEvent struct {
	Type      string `json:"type"`
	Posting   string `json:"posting"`
	Applicant string `json:"applicant"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyNewApplication pushes a toast to connected admin dashboards. Safe to
// call before any hub is set.
func NotifyNewApplication(postingTitle, applicant string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := NewApplicationEvent{
		Type:      "new_application",
		Posting:   postingTitle,
		Applicant: applicant,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
