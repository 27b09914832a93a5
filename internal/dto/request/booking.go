package request

// CreateBookingRequest carries the passenger form plus the chosen train,
// date and class. Age bounds are inclusive: 1 and 120 are valid.
type CreateBookingRequest struct {
	TrainID         string `json:"train_id" validate:"required,uuid4"`
	PassengerName   string `json:"passenger_name" validate:"required,min=1,max=100"`
	PassengerAge    int    `json:"passenger_age" validate:"required,min=1,max=120"`
	PassengerGender string `json:"passenger_gender" validate:"required,oneof=male female other"`
	TravelDate      string `json:"travel_date" validate:"required,datetime=2006-01-02"`
	Class           string `json:"class" validate:"required,oneof=sleeper 3ac 2ac 1ac"`
}
