package domain

import "slices"

// Daily Double wager bounds
const (
	MinDailyDoubleWager        = 5
	DefaultMaxDailyDoubleWager = 1000
)

// forbiddenWagers lists amounts the host console refuses regardless of score
var forbiddenWagers = [...]int{69, 420, 666, 1488}

// ForbiddenWagers returns a copy of the wager blocklist
func ForbiddenWagers() []int {
	return slices.Clone(forbiddenWagers[:])
}

// IsForbiddenWager reports whether amount is on the blocklist
func IsForbiddenWager(amount int) bool {
	return slices.Contains(forbiddenWagers[:], amount)
}

// MaxDailyDoubleWager returns the largest Daily Double wager for a score:
// the whole score, or DefaultMaxDailyDoubleWager if that is larger.
func MaxDailyDoubleWager(score int) int {
	return max(score, DefaultMaxDailyDoubleWager)
}

// ValidateDailyDoubleWager checks amount against the blocklist and the
// 5..max(score, 1000) range.
func ValidateDailyDoubleWager(amount, score int) error {
	return validateWager(amount, MinDailyDoubleWager, MaxDailyDoubleWager(score))
}

// ValidateFinalWager checks amount against the blocklist and the 0..score range
func ValidateFinalWager(amount, score int) error {
	return validateWager(amount, 0, score)
}

func validateWager(amount, minWager, maxWager int) error {
	if IsForbiddenWager(amount) {
		return &WagerError{Kind: WagerForbidden, Amount: amount, Min: minWager, Max: maxWager}
	}
	if amount < minWager || amount > maxWager {
		return &WagerError{Kind: WagerOutOfRange, Amount: amount, Min: minWager, Max: maxWager}
	}
	return nil
}
