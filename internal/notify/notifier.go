package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/pkg/logger"
)

// Channel is the redis pub/sub channel lifecycle events go out on.
// Delivery to humans (toasts, mails) is the subscriber's problem.
const Channel = "studioflow:events"

// Event types
const (
	EventApproved    = "record.approved"
	EventRejected    = "record.rejected"
	EventDissolved   = "record.dissolved"
	EventDisapproved = "record.disapproved"
	EventResubmitted = "record.resubmitted"
	EventStageMoved  = "record.stage_moved"
	EventAssigned    = "record.assigned"
)

// Event is the JSON payload published for every record lifecycle change.
type Event struct {
	Type        string        `json:"type"`
	RecordID    string        `json:"record_id"`
	Status      domain.Status `json:"status,omitempty"`
	Stage       domain.Stage  `json:"stage,omitempty"`
	ContentCode string        `json:"content_code,omitempty"`
	Role        domain.Role   `json:"role,omitempty"`
	AssigneeID  string        `json:"assignee_id,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// Notifier publishes record lifecycle events to redis. A nil Notifier is
// safe to call; publishing failures are logged, never propagated, since the
// workflow decision already committed.
type Notifier struct {
	client *redis.Client
}

// NewNotifier creates a new Notifier
func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

// Publish sends an event on the channel.
func (n *Notifier) Publish(event Event) {
	if n == nil || n.client == nil {
		return
	}
	event.OccurredAt = time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("marshal event %s for record %s: %v", event.Type, event.RecordID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := n.client.Publish(ctx, Channel, payload).Err(); err != nil {
		logger.Error("publish event %s for record %s: %v", event.Type, event.RecordID, err)
	}
}

// RecordEvent builds an Event snapshot from a record.
func RecordEvent(eventType string, rec *domain.ContentRecord) Event {
	e := Event{
		Type:     eventType,
		RecordID: rec.ID,
		Status:   rec.Status,
		Stage:    rec.Stage,
	}
	if rec.ContentCode != nil {
		e.ContentCode = *rec.ContentCode
	}
	return e
}
