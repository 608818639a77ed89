package conversation

// State holds the dialog slots one chat session has collected so far. The
// scheduling engine itself is stateless; this exists so the chat layer can
// park partial answers between turns.
type State struct {
	Service   string `json:"service,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Confirmed bool   `json:"confirmed"`
}

// SlotNames are the only keys a state patch may touch.
var SlotNames = []string{"service", "date", "time", "name", "phone", "email", "confirmed"}

func IsSlotName(name string) bool {
	for _, s := range SlotNames {
		if s == name {
			return true
		}
	}
	return false
}
