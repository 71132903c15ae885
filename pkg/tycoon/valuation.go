package tycoon

import "time"

// UsefulLifeYears is the fixed straight-line depreciation period applied
// to every asset.
const UsefulLifeYears = 5

// yearApprox is the calendar approximation used for asset age. Leap years
// are deliberately ignored.
const yearApprox = 365 * 24 * time.Hour

// AgeYears returns the age of an asset in fractional years at the given
// instant. Negative ages (purchase date in the future) clamp to 0.
func AgeYears(purchaseDate, now time.Time) float64 {
	age := now.Sub(purchaseDate).Hours() / yearApprox.Hours()
	if age < 0 {
		return 0
	}
	return age
}

// CurrentValue returns the straight-line depreciated value of an asset:
// cost minus cost/UsefulLifeYears per year of age, clamped at 0 once the
// asset is fully depreciated. Recomputed on every read, never persisted.
func CurrentValue(cost float64, purchaseDate, now time.Time) float64 {
	yearly := cost / UsefulLifeYears
	value := cost - yearly*AgeYears(purchaseDate, now)
	if value < 0 {
		return 0
	}
	return value
}
