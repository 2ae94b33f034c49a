package domain

import "fmt"

// The dining room runs two fixed shifts with a hard vacate time at the
// end of the first. The changeover gap between them must never be booked
// at the literal requested time.
const (
	Shift1StartHour   = 19
	Shift1StartMinute = 30

	Shift1EndHour   = 21
	Shift1EndMinute = 15

	Shift2StartHour   = 21
	Shift2StartMinute = 30
)

// GuidanceReason classifies why a requested time needs re-timing advice
type GuidanceReason string

const (
	GuidanceShiftChangeover GuidanceReason = "shift_changeover"
	GuidanceBeforeOpening   GuidanceReason = "before_opening"
)

// TimeGuidance is advisory: it accompanies the raw availability result
// and tells the caller what time to propose instead of the requested one
type TimeGuidance struct {
	Reason          GuidanceReason
	SuggestedHour   int
	SuggestedMinute int
}

// SuggestedTime returns the advised time as HH:MM
func (g *TimeGuidance) SuggestedTime() string {
	return fmt.Sprintf("%02d:%02d", g.SuggestedHour, g.SuggestedMinute)
}

// ClassifyRequestTime applies the shift-boundary policy to a requested
// wall-clock time. It returns nil for ordinary in-shift times.
//
// A request at 21:00-21:29 falls in the shift changeover gap: available
// tables may exist, but the caller must steer the guest to 21:30.
// A request before opening steers the guest to 19:30.
func ClassifyRequestTime(hour, minute int) *TimeGuidance {
	if hour == Shift2StartHour && minute < Shift2StartMinute {
		return &TimeGuidance{
			Reason:          GuidanceShiftChangeover,
			SuggestedHour:   Shift2StartHour,
			SuggestedMinute: Shift2StartMinute,
		}
	}

	if hour < Shift1StartHour || (hour == Shift1StartHour && minute < Shift1StartMinute) {
		return &TimeGuidance{
			Reason:          GuidanceBeforeOpening,
			SuggestedHour:   Shift1StartHour,
			SuggestedMinute: Shift1StartMinute,
		}
	}

	return nil
}
