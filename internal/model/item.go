package model

import "time"

// Item status values as stored in the `status` column. An item starts out
// LOST or FOUND depending on who reported it and moves to RETURNED once it
// is back with its owner.
const (
	ItemStatusLost     = "LOST"
	ItemStatusFound    = "FOUND"
	ItemStatusReturned = "RETURNED"
)

// Item represents a lost-and-found listing as stored in the `items` table.
// OwnerID is set to the reporting user's id at creation time and never
// changes afterwards; only the ownership check reads it.
//
// Fields:
//  ID          – primary key identifier of the item.
//  Title       – short title of the listing.
//  Description – free-form description.
//  Category    – category label (e.g. "Electronics").
//  Location    – where the item was lost or found.
//  Status      – one of the ItemStatus* constants.
//  OwnerID     – id of the user who created the listing (immutable).
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last update.
type Item struct {
	ID          uint64    `json:"id"`          // items.id
	Title       string    `json:"title"`       // items.title
	Description string    `json:"description"` // items.description
	Category    string    `json:"category"`    // items.category
	Location    string    `json:"location"`    // items.location
	Status      string    `json:"status"`      // items.status
	OwnerID     uint64    `json:"owner_id"`    // items.owner_id
	CreatedAt   time.Time `json:"created_at"`  // items.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // items.updated_at
}
