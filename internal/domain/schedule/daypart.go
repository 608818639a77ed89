package schedule

import "strings"

// Daypart is a named fixed window used to narrow slot offers from phrases
// like "tomorrow afternoon".
type Daypart struct {
	Name   string
	Window Range
}

var dayparts = []Daypart{
	{Name: "morning", Window: Range{Start: 0, End: 11*60 + 59}},
	{Name: "afternoon", Window: Range{Start: 12 * 60, End: 16*60 + 59}},
	{Name: "evening", Window: Range{Start: 17 * 60, End: 20*60 + 59}},
	{Name: "night", Window: Range{Start: 21 * 60, End: 23*60 + 59}},
}

func DaypartByName(name string) (Daypart, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, dp := range dayparts {
		if dp.Name == name {
			return dp, true
		}
	}
	return Daypart{}, false
}

// ExtractDaypart peels an embedded daypart keyword off a date phrase,
// returning the cleaned phrase and the matched window, if any.
func ExtractDaypart(phrase string) (string, *Daypart) {
	s := strings.ToLower(strings.TrimSpace(phrase))
	for _, dp := range dayparts {
		if strings.Contains(s, dp.Name) {
			cleaned := strings.TrimSpace(strings.ReplaceAll(s, dp.Name, ""))
			found := dp
			return cleaned, &found
		}
	}
	return s, nil
}

// Contains reports whether a booking of serviceMinutes starting at start
// fits entirely inside the daypart window.
func (d Daypart) Contains(start Minute, serviceMinutes int) bool {
	return start >= d.Window.Start && int(start)+serviceMinutes <= int(d.Window.End)
}
