package domain

import "time"

// BroadcastRecord is one message as kept by a recording network.
type BroadcastRecord struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}
