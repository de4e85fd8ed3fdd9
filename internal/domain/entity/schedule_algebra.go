package entity

import "sort"

// Squash folds a set of entries into one contiguous time range. The
// entries are sorted by start and merged pairwise under strict
// adjacency: each range must end exactly where the next one starts.
// Any gap, any overlap, or an empty input yields (zero, false).
func Squash(entries []Entry) (TimeRange, bool) {
	if len(entries) == 0 {
		return TimeRange{}, false
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.From.Before(sorted[j].Range.From)
	})

	total := sorted[0].Range

	for _, entry := range sorted[1:] {
		if !total.Adjacent(entry.Range) {
			return TimeRange{}, false
		}

		total.To = entry.Range.To
	}

	return total, true
}

// Unsquash splits total around visit: the visit itself plus an on-call
// fragment on each side where the total extends past the visit.
// Zero-length fragments are omitted rather than emitted as degenerate
// entries. Fragments inherit the visit's doctor and room and carry no
// patient.
func Unsquash(total TimeRange, visit Entry) []Entry {
	result := []Entry{visit}

	if total.From.Before(visit.Range.From) {
		before := visit
		before.Patient = Patient{}
		before.Range = TimeRange{From: total.From, To: visit.Range.From}

		result = append(result, before)
	}

	if visit.Range.To.Before(total.To) {
		after := visit
		after.Patient = Patient{}
		after.Range = TimeRange{From: visit.Range.To, To: total.To}

		result = append(result, after)
	}

	return result
}

// ImmerseInto inserts the visit into a run of on-call entries,
// splitting the run around it. The candidates must all be on-call
// blocks of the visit's doctor, in the visit's room, overlapping the
// visit, and together they must form one contiguous gap-free run that
// contains the visit's range.
//
// When any condition fails the candidates come back untouched with
// false. Rejection is an expected outcome ("this visit does not fit
// here"), not an error.
func (visit Entry) ImmerseInto(candidates []Entry) ([]Entry, bool) {
	if !visit.IsVisit() {
		return candidates, false
	}

	for _, candidate := range candidates {
		if !candidate.InterferesWith(visit) || candidate.Doctor != visit.Doctor {
			return candidates, false
		}

		if candidate.IsVisit() {
			return candidates, false
		}
	}

	total, ok := Squash(candidates)
	if !ok {
		return candidates, false
	}

	if !total.Contains(visit.Range.From) {
		return candidates, false
	}

	// The visit may end flush with the run, so the upper bound is
	// inclusive here.
	if visit.Range.To.After(total.To) {
		return candidates, false
	}

	return Unsquash(total, visit), true
}
