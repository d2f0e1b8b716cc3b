package shared

import "time"

// Lounge carries facts about the venue that every usecase needs.
type Lounge struct {
	Location          *time.Location
	LowStockThreshold int
}
