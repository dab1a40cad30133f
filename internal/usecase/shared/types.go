package shared

import (
	"github.com/google/uuid"
)

// PropertySnapshot is the write side's view of a catalog listing.
type PropertySnapshot struct {
	ID           uuid.UUID
	Title        string
	Address      string
	City         string
	Price        int64
	RentalPeriod string
	Available    bool
}
