// Package queue defines message payloads exchanged over the message broker.
package queue

// Item event actions carried in ItemEvent.Action.
const (
	ActionItemReported      = "REPORTED"
	ActionItemStatusChanged = "STATUS_CHANGED"
)

// ItemEvent is published when a listing is created or its status changes
// (e.g. a lost item is marked FOUND).  It carries enough information for
// downstream consumers to log, notify watchers, or feed analytics without
// querying the primary database.
type ItemEvent struct {
	Action     string `json:"action"`
	ItemID     uint64 `json:"item_id"`
	OwnerID    uint64 `json:"owner_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}
