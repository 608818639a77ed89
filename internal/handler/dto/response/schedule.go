package response

import (
	"salon-scheduler/internal/usecase/queries"
)

type AvailabilityResponse struct {
	Date            string   `json:"date"`
	Weekday         string   `json:"weekday"`
	Service         string   `json:"service,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Available       []string `json:"available"`
	TotalAvailable  int      `json:"totalAvailable"`
	Closed          bool     `json:"closed"`
}

type HoursResponse struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Ranges  []string `json:"ranges"`
	Opening string   `json:"opening,omitempty"`
	Closing string   `json:"closing,omitempty"`
	Closed  bool     `json:"closed"`
}

type NowResponse struct {
	Timezone string `json:"timezone"`
	ISO      string `json:"iso"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Weekday  string `json:"weekday"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:            v.Date,
		Weekday:         v.Weekday,
		Service:         v.Service,
		DurationMinutes: v.DurationMinutes,
		Available:       v.Available,
		TotalAvailable:  v.TotalAvailable,
		Closed:          v.Closed,
	}
}

func FromHoursView(v *queries.HoursView) *HoursResponse {
	return &HoursResponse{
		Date:    v.Date,
		Weekday: v.Weekday,
		Ranges:  v.Ranges,
		Opening: v.Opening,
		Closing: v.Closing,
		Closed:  v.Closed,
	}
}

func FromNowView(v *queries.NowView) *NowResponse {
	return &NowResponse{
		Timezone: v.Timezone,
		ISO:      v.ISO,
		Date:     v.Date,
		Time:     v.Time,
		Weekday:  v.Weekday,
	}
}
