package response

import (
	"salon-scheduler/internal/domain/conversation"
)

type SessionStateResponse struct {
	Service   string `json:"service,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Confirmed bool   `json:"confirmed"`
}

func FromSessionState(st *conversation.State) *SessionStateResponse {
	return &SessionStateResponse{
		Service:   st.Service,
		Date:      st.Date,
		Time:      st.Time,
		Name:      st.Name,
		Phone:     st.Phone,
		Email:     st.Email,
		Confirmed: st.Confirmed,
	}
}
