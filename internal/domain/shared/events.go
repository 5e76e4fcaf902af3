package shared

import "time"

// DomainEvent represents an event that has occurred in the domain.
// Aggregates record events as they mutate; the application layer drains
// them with Events() and publishes each one after the write commits.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}
