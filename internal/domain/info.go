package domain

// RestaurantInfo is the static guest-facing information set,
// loaded once at startup and immutable thereafter
type RestaurantInfo struct {
	Location LocationInfo
	Hours    HoursInfo
	Services ServicesInfo
	Policies PoliciesInfo
}

// LocationInfo describes where the restaurant is and how to park
type LocationInfo struct {
	Address     string
	Description string
	Parking     string
}

// HoursInfo describes the opening windows
type HoursInfo struct {
	Weekdays string
	Weekends string
	Closed   string
	Notes    string
}

// ServicesInfo describes booking integrations and takeaway service
type ServicesInfo struct {
	Integrations string
	Takeaway     string
}

// PoliciesInfo describes house policies
type PoliciesInfo struct {
	Allergies string
	Events    string
	Corkage   string
}
