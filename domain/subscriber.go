package domain

import "time"

// Subscriber is one newsletter subscription. Email addresses are unique;
// subscribing twice is idempotent.
type Subscriber struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
