package expiry

import "time"

// Status of a food relative to its expiry date. Never persisted;
// recomputed against wall-clock time on every read.
type Status string

const (
	StatusFresh         Status = "Fresh"
	StatusNearlyExpired Status = "NearlyExpired"
	StatusExpired       Status = "Expired"
)

// DefaultWindow is the nearly-expired horizon.
const DefaultWindow = 5 * 24 * time.Hour

func Classify(now, expiryDate time.Time) Status {
	return ClassifyWindow(now, expiryDate, DefaultWindow)
}

// ClassifyWindow treats both window bounds as inclusive: a food
// expiring exactly now, or exactly at now+window, is NearlyExpired.
func ClassifyWindow(now, expiryDate time.Time, window time.Duration) Status {
	if expiryDate.Before(now) {
		return StatusExpired
	}
	if !expiryDate.After(now.Add(window)) {
		return StatusNearlyExpired
	}
	return StatusFresh
}
