package nationalid

import "time"

// Issuance policy constants. The validity window changed in 2021 from five
// years to seven; the branch is on the issue year, not the birth or current
// year.
const (
	issuanceAge = 16
	adultAge    = 18

	validityPolicyYear  = 2021
	validityYearsBefore = 5
	validityYearsAfter  = 7

	expiringSoonHorizon = 1
)

// Every temporal derivation below has an ...At(now) form taking the reference
// day explicitly, and a zero-argument form that evaluates against the current
// UTC day. Nothing is cached on the value: two calls on different calendar
// days answer for their own day.

// truncate collapses t to a UTC midnight so comparisons are date-granular.
func truncate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func today() time.Time {
	return truncate(time.Now())
}

// wholeYears counts complete years from one date to a later one: the largest
// n with from.AddDate(n, 0, 0) not after to. AddDate carries Feb 29
// anniversaries to Mar 1 in common years, which is the behavior the age rules
// want. Negative when to precedes from's first anniversary year boundary.
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}

// AgeAt returns the person's age in complete years on the given day.
func (id Identifier) AgeAt(now time.Time) int {
	return wholeYears(id.birthDate, truncate(now))
}

// Age returns the person's age in complete years today.
func (id Identifier) Age() int {
	return id.AgeAt(today())
}

// IsAdultAt reports whether the person is 18 or older on the given day.
func (id Identifier) IsAdultAt(now time.Time) bool {
	return id.AgeAt(now) >= adultAge
}

// IsAdult reports whether the person is 18 or older today.
func (id Identifier) IsAdult() bool {
	return id.IsAdultAt(today())
}

// IsEligibleForNationalIDAt reports whether the person has reached the
// issuance age of 16 on the given day.
func (id Identifier) IsEligibleForNationalIDAt(now time.Time) bool {
	return id.AgeAt(now) >= issuanceAge
}

// IsEligibleForNationalID reports whether the person has reached the issuance
// age of 16 today.
func (id Identifier) IsEligibleForNationalID() bool {
	return id.IsEligibleForNationalIDAt(today())
}

// EstimatedIssueDate estimates the first card's issue date as the sixteenth
// birthday. Clock-independent.
func (id Identifier) EstimatedIssueDate() time.Time {
	return id.birthDate.AddDate(issuanceAge, 0, 0)
}

// EstimatedExpiryDate estimates the card's expiry: five years after issue for
// cards issued before 2021, seven from 2021 onward. Clock-independent.
func (id Identifier) EstimatedExpiryDate() time.Time {
	issue := id.EstimatedIssueDate()
	validity := validityYearsBefore
	if issue.Year() >= validityPolicyYear {
		validity = validityYearsAfter
	}
	return issue.AddDate(validity, 0, 0)
}

// YearsSinceIssueAt returns complete years elapsed since the estimated issue
// date on the given day, floored at zero for people younger than the
// issuance age.
func (id Identifier) YearsSinceIssueAt(now time.Time) int {
	years := wholeYears(id.EstimatedIssueDate(), truncate(now))
	if years < 0 {
		return 0
	}
	return years
}

// YearsSinceIssue returns complete years elapsed since the estimated issue
// date as of today.
func (id Identifier) YearsSinceIssue() int {
	return id.YearsSinceIssueAt(today())
}

// IsLikelyExpiredAt reports whether the given day is strictly after the
// estimated expiry date.
func (id Identifier) IsLikelyExpiredAt(now time.Time) bool {
	return truncate(now).After(id.EstimatedExpiryDate())
}

// IsLikelyExpired reports whether today is strictly after the estimated
// expiry date.
func (id Identifier) IsLikelyExpired() bool {
	return id.IsLikelyExpiredAt(today())
}

// YearsUntilExpiryAt returns the signed distance in complete years between
// the given day and the estimated expiry date: zero or positive while the
// card is still within its window (zero exactly on the expiry date), negative
// once expired, counting full years since expiry.
func (id Identifier) YearsUntilExpiryAt(now time.Time) int {
	day := truncate(now)
	expiry := id.EstimatedExpiryDate()
	if day.After(expiry) {
		return -wholeYears(expiry, day)
	}
	return wholeYears(day, expiry)
}

// YearsUntilExpiry returns the signed years-to-expiry as of today.
func (id Identifier) YearsUntilExpiry() int {
	return id.YearsUntilExpiryAt(today())
}

// IsExpiringSoonAt reports whether the card expires within one year of the
// given day (and has not already expired).
func (id Identifier) IsExpiringSoonAt(now time.Time) bool {
	years := id.YearsUntilExpiryAt(now)
	return years >= 0 && years <= expiringSoonHorizon
}

// IsExpiringSoon reports whether the card expires within one year of today.
func (id Identifier) IsExpiringSoon() bool {
	return id.IsExpiringSoonAt(today())
}
