package domain

import "time"

// Notification kinds.
const (
	NotificationReviewReceived = "review_received"
	NotificationJobClosed      = "job_closed"
	NotificationPlanChanged    = "plan_changed"
)

// Notification is an in-app message for a user, produced by the dispatcher
// as a side effect of marketplace events.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Kind      string    `json:"kind" bson:"kind"`
	Subject   string    `json:"subject" bson:"subject"`
	Body      string    `json:"body,omitempty" bson:"body,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
