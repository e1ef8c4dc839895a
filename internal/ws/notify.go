package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"skillswap/internal/domain/match"
)

// MatchCreatedEvent is the placeholder notification pushed to connected
// clients when a pairing is persisted.
type MatchCreatedEvent struct {
	Type      string  `json:"type"`
	MatchID   string  `json:"match_id"`
	UserAID   string  `json:"user_a_id"`
	UserBID   string  `json:"user_b_id"`
	Score     float64 `json:"score"`
	Timestamp string  `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyMatchCreated(m match.Match) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := MatchCreatedEvent{
		Type:      "match_created",
		MatchID:   m.ID.String(),
		UserAID:   m.UserAID.String(),
		UserBID:   m.UserBID.String(),
		Score:     m.Score,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
