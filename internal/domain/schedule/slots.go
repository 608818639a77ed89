package schedule

// ExpandSlots walks each open range and emits a candidate start every
// stepMinutes as long as the full service duration still fits before the
// range closes. Candidates are concatenated in range order; a service longer
// than every range simply yields nothing.
func ExpandSlots(ranges []Range, stepMinutes, serviceMinutes int) []Minute {
	if stepMinutes <= 0 || serviceMinutes <= 0 {
		return nil
	}
	var slots []Minute
	for _, r := range ranges {
		for t := r.Start; int(t)+serviceMinutes <= int(r.End); t += Minute(stepMinutes) {
			slots = append(slots, t)
		}
	}
	return slots
}

// RemoveConflicts drops candidates whose [start, start+serviceMinutes)
// interval overlaps any booked range under the half-open test, so a booking
// ending exactly when another starts never conflicts.
func RemoveConflicts(slots []Minute, serviceMinutes int, booked []Range) []Minute {
	if len(booked) == 0 {
		return slots
	}
	keep := make([]Minute, 0, len(slots))
	for _, s := range slots {
		candidate := Range{Start: s, End: s + Minute(serviceMinutes)}
		conflict := false
		for _, b := range booked {
			if candidate.Overlaps(b) {
				conflict = true
				break
			}
		}
		if !conflict {
			keep = append(keep, s)
		}
	}
	return keep
}
