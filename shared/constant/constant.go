package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

const (
	UserTypeCustomer = "Customer"
	UserTypeManager  = "Manager"
)

const (
	// NearbyRadius is the Euclidean distance, in raw coordinate units, within which a hotel is listed.
	NearbyRadius = 30.0
	// RecentLimit caps the "recent" and "top" listings.
	RecentLimit = 5
)

const (
	RoomFieldPrice    = "price"
	RoomFieldImageURL = "image url"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = time.DateTime
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	Null = "null"
	Tab  = "\t"
)
