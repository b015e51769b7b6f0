package models

import "time"

// MembershipTier defines the type for membership tiers.
type MembershipTier string

const (
	TierBasic   MembershipTier = "basic"
	TierPremium MembershipTier = "premium"
	TierVIP     MembershipTier = "vip"
)

// IsValidMembershipTier checks if the provided tier string is a valid MembershipTier.
func IsValidMembershipTier(tier string) bool {
	switch MembershipTier(tier) {
	case TierBasic, TierPremium, TierVIP:
		return true
	default:
		return false
	}
}

// Membership is a time-bounded, tiered subscription attached to a Vehicle.
// A Vehicle holds at most one Membership at a time; registering a new one
// replaces the previous one, and renewal extends or restarts the window.
// Tariff is the fixed charge in minor currency units, never negative.
type Membership struct {
	Tier      MembershipTier `json:"tier" db:"tier"`
	StartDate time.Time      `json:"start_date" db:"start_date"`
	EndDate   time.Time      `json:"end_date" db:"end_date"`
	Tariff    int64          `json:"tariff" db:"tariff"`
}

// Covers reports whether ref falls within [StartDate, EndDate], boundaries
// inclusive. Only the calendar date of ref matters.
func (m *Membership) Covers(ref time.Time) bool {
	day := Midnight(ref)
	return !day.Before(Midnight(m.StartDate)) && !day.After(Midnight(m.EndDate))
}

// Midnight truncates t to UTC midnight so that calendar-date comparisons
// ignore the time-of-day component.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
