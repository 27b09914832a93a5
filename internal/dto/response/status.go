package response

// StatusView is the projected, possibly synthesized live-tracking view for
// a train. Synthesized indicates the degrade-gracefully fallback produced
// when no telemetry row exists.
type StatusView struct {
	Train           TrainDetails `json:"train"`
	CurrentStation  string       `json:"current_station"`
	Status          string       `json:"status"`
	DelayMinutes    int          `json:"delay_minutes"`
	ExpectedArrival string       `json:"expected_arrival,omitempty"`
	ActualArrival   string       `json:"actual_arrival,omitempty"`
	ProgressPercent int          `json:"progress_percent"`
	LastUpdated     string       `json:"last_updated,omitempty"`
	Synthesized     bool         `json:"synthesized"`
}
