package entities

import (
	"time"

	"github.com/google/uuid"
)

// ListingEventType represents what happened to a listing
type ListingEventType string

const (
	ListingEventRegistered ListingEventType = "registered"
	ListingEventApproved   ListingEventType = "approved"
	ListingEventRejected   ListingEventType = "rejected"
)

// ListingEvent is published when the registry changes a listing.
type ListingEvent struct {
	ID        string           `json:"id"`
	Kind      Kind             `json:"kind"`
	ListingID string           `json:"listing_id"`
	EventType ListingEventType `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewListingEvent creates a new listing event
func NewListingEvent(kind Kind, listingID string, eventType ListingEventType) *ListingEvent {
	return &ListingEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		ListingID: listingID,
		EventType: eventType,
		Timestamp: time.Now().UTC(),
	}
}
