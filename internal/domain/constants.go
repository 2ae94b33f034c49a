package domain

// Service durations
const (
	// DineInDurationMinutes is the fixed table occupation for every
	// dine-in request regardless of party size
	DineInDurationMinutes = 90

	// TakeawayDurationMinutes is the standard takeaway prep window
	TakeawayDurationMinutes = 30

	// StatusProbeMinutes is the probe interval for point-in-time
	// table status snapshots
	StatusProbeMinutes = 1
)

// Allocation policy constants
const (
	// ManagerPartyThreshold: parties of this size or larger are never
	// auto-booked and always escalate to the manager
	ManagerPartyThreshold = 10

	// SingleTableSlackSeats is the capacity window slack: a table
	// qualifies for a party only if minCapacity <= partySize + slack
	SingleTableSlackSeats = 1

	// CombinationScorePenalty makes merging two tables strictly worse
	// than an equally wasteful single table
	CombinationScorePenalty = 1.5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
