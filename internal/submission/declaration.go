package submission

import "time"

// DeclarationText is the legal declaration shown at the final step. It must
// match HMRC's wording byte for byte.
const DeclarationText = "I declare that the information I have given on this tax return and any supplementary pages is correct and complete to the best of my knowledge and belief. I understand that I may have to pay financial penalties and face prosecution if I give false information."

// Declaration records the legally binding confirmation. Confirmed is true
// exactly when ConfirmedAt is set.
type Declaration struct {
	Confirmed   bool
	ConfirmedAt *time.Time
}

// setConfirmed applies the confirmation invariant: confirming (re)stamps
// now, un-confirming clears the timestamp.
func (d *Declaration) setConfirmed(confirmed bool, now time.Time) {
	d.Confirmed = confirmed
	if confirmed {
		stamped := now.UTC()
		d.ConfirmedAt = &stamped
	} else {
		d.ConfirmedAt = nil
	}
}

// TimestampISO renders the confirmation time as ISO-8601 UTC ("...Z"),
// or "" when unconfirmed.
func (d Declaration) TimestampISO() string {
	if d.ConfirmedAt == nil {
		return ""
	}
	return d.ConfirmedAt.UTC().Format(time.RFC3339)
}
