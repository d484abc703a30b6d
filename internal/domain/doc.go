// Package domain holds the marketplace's entities and value objects: users
// with roles and credentials, rentable spaces, bookings over date ranges,
// and reviews. Invariants are enforced at construction; nothing here knows
// about storage or HTTP.
package domain
