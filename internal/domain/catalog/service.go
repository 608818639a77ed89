package catalog

import "strings"

// DefaultDurationMinutes applies when a booking names no service or an
// unknown one.
const DefaultDurationMinutes = 30

// Service is a bookable offering. Names are unique case-insensitively; the
// scheduling engine only ever reads the duration.
type Service struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
}

// Minutes returns the service duration, defaulting for nil or non-positive
// entries so a misconfigured catalog can never produce zero-length slots.
func (s *Service) Minutes() int {
	if s == nil || s.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return s.DurationMinutes
}

// MatchName compares service names the way the catalog keys them.
func MatchName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// BusinessInfo is the free-form business document (name, address, policies,
// announcements) served to the chat layer by key. The engine never
// interprets it.
type BusinessInfo map[string]any

// Lookup splits the requested keys into present, non-empty values and
// missing ones.
func (b BusinessInfo) Lookup(keys []string) (found map[string]any, missing []string) {
	found = make(map[string]any)
	for _, k := range keys {
		v, ok := b[k]
		if !ok || isEmptyValue(v) {
			missing = append(missing, k)
			continue
		}
		found[k] = v
	}
	return found, missing
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	default:
		return false
	}
}
