package models

import (
	"fmt"
	"time"
)

// AlertKind enumerates derived alert categories.
type AlertKind string

const (
	AlertVaccineLate      AlertKind = "vaccine_late"
	AlertWeighingLate     AlertKind = "weighing_late"
	AlertWeightOutOfRange AlertKind = "weight_out_of_range"
)

// AlertPriority orders alerts for display and notification routing.
type AlertPriority string

const (
	PriorityLow      AlertPriority = "low"
	PriorityMedium   AlertPriority = "medium"
	PriorityHigh     AlertPriority = "high"
	PriorityCritical AlertPriority = "critical"
)

// Alert is a derived notification flagging a late event or an out-of-range
// weighing result. Alerts are regenerated per batch on each classification
// pass; ids are deterministic so a regenerated alert can be matched to its
// previous incarnation.
type Alert struct {
	ID           string        `bson:"_id" json:"id"`
	BatchID      string        `bson:"batch_id" json:"batch_id"`
	EventID      string        `bson:"event_id" json:"event_id"`
	Kind         AlertKind     `bson:"kind" json:"kind"`
	Priority     AlertPriority `bson:"priority" json:"priority"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	Acknowledged bool          `bson:"acknowledged" json:"acknowledged"`
}

// AlertID builds the deterministic id for an alert of the given kind on the
// given event.
func AlertID(eventID string, kind AlertKind) string {
	return fmt.Sprintf("%s:%s", eventID, kind)
}
