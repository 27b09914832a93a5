package request

// SearchTrainsRequest matches trains by free-text substring on source and
// destination independently; either field may be blank to match everything.
// Date does not filter results -- it is carried through for display and for
// stamping the eventual booking.
type SearchTrainsRequest struct {
	Source      string `json:"source" validate:"max=100"`
	Destination string `json:"destination" validate:"max=100"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
