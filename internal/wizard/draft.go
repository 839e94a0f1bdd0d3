// Package wizard owns the booking flow: a short-lived draft accumulated
// across three steps (tour selection, passenger info, confirm & pay) and the
// controller that drives it against the upstream backend. Drafts live only
// in memory and are explicitly invalidated on completion or abandonment.
package wizard

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kushal272003/tourbooking/internal/domain"
	"github.com/kushal272003/tourbooking/internal/utils"
)

type State string

const (
	StateTourSelected            State = "TOUR_SELECTED"
	StatePassengerInfoCollected  State = "PASSENGER_INFO_COLLECTED"
	StateConfirmedPendingPayment State = "CONFIRMED_PENDING_PAYMENT"
	StatePaymentSucceeded        State = "PAYMENT_SUCCEEDED"
	StatePaymentFailed           State = "PAYMENT_FAILED"
	StatePaymentCancelled        State = "PAYMENT_CANCELLED"
)

type ContactDetails struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PassengerForm struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	IDProof string `json:"idProof"`
}

// PassengerInfo is the second wizard step's submission.
type PassengerInfo struct {
	Contact    ContactDetails  `json:"contactDetails"`
	Primary    PassengerForm   `json:"primaryPassenger"`
	Additional []PassengerForm `json:"additionalPassengers"`
}

// Draft is the not-yet-submitted booking accumulated across wizard steps.
// OwnerID binds the draft to the session that opened it; other users cannot
// read or advance it.
type Draft struct {
	ID         string          `json:"id"`
	OwnerID    int64           `json:"-"`
	State      State           `json:"state"`
	Tour       domain.Tour     `json:"tour"`
	Seats      int             `json:"numberOfSeats"`
	TotalPrice float64         `json:"totalPrice"`
	Contact    ContactDetails  `json:"contactDetails"`
	Primary    PassengerForm   `json:"primaryPassenger"`
	Additional []PassengerForm `json:"additionalPassengers"`
	BookingID  int64           `json:"bookingId,omitempty"`
	CreatedAt  time.Time       `json:"-"`
}

// NewDraft starts the flow from a tour detail view. Seat count is bounded by
// the tour's available seats; the total is exact (price × seats).
func NewDraft(tour domain.Tour, seats int) (*Draft, error) {
	if tour.ID <= 0 {
		return nil, domain.ValidationError{Field: "tour", Msg: "tour is required"}
	}
	if seats < 1 || seats > tour.AvailableSeats {
		return nil, domain.ValidationError{
			Field: "numberOfSeats",
			Msg:   fmt.Sprintf("select between 1 and %d seats", tour.AvailableSeats),
		}
	}
	return &Draft{
		ID:         uuid.NewString(),
		State:      StateTourSelected,
		Tour:       tour,
		Seats:      seats,
		TotalPrice: tour.Price * float64(seats),
		CreatedAt:  time.Now(),
	}, nil
}

// AdditionalSlots is the number of additional-passenger forms the passenger
// step presents: one per seat beyond the primary.
func (d *Draft) AdditionalSlots() int {
	return d.Seats - 1
}

// FieldErrors keys validation messages by field path, mirroring the form's
// error keys ("contact-email", "primary-age", "additional-0-name").
type FieldErrors map[string]string

// ValidatePassengerInfo applies the passenger step's synchronous, field-
// scoped validation. Gender and ID proof are required only for the primary
// passenger.
func ValidatePassengerInfo(info PassengerInfo, seats int) FieldErrors {
	errs := FieldErrors{}

	email := utils.TrimOrEmpty(info.Contact.Email)
	switch {
	case email == "":
		errs["contact-email"] = "Email is required"
	case !utils.IsEmail(email):
		errs["contact-email"] = "Invalid email format"
	}

	phone := utils.TrimOrEmpty(info.Contact.Phone)
	switch {
	case phone == "":
		errs["contact-phone"] = "Phone is required"
	case !utils.IsPhone(phone):
		errs["contact-phone"] = "Invalid phone number (10 digits)"
	}

	validateName(errs, "primary-name", info.Primary.Name)
	validateAge(errs, "primary-age", info.Primary.Age)
	if utils.TrimOrEmpty(info.Primary.Gender) == "" {
		errs["primary-gender"] = "Gender is required"
	}
	idProof := utils.TrimOrEmpty(info.Primary.IDProof)
	switch {
	case idProof == "":
		errs["primary-idProof"] = "ID proof is required for primary passenger"
	case len(idProof) < 6:
		errs["primary-idProof"] = "ID proof must be valid (min 6 characters)"
	}

	if len(info.Additional) != seats-1 {
		errs["additionalPassengers"] = fmt.Sprintf("expected %d additional passengers", seats-1)
		return errs
	}
	for i, p := range info.Additional {
		validateName(errs, fmt.Sprintf("additional-%d-name", i), p.Name)
		validateAge(errs, fmt.Sprintf("additional-%d-age", i), p.Age)
	}
	return errs
}

func validateName(errs FieldErrors, key, name string) {
	name = utils.TrimOrEmpty(name)
	switch {
	case name == "":
		errs[key] = "Name is required"
	case len(name) < 3:
		errs[key] = "Name must be at least 3 characters"
	}
}

func validateAge(errs FieldErrors, key string, age int) {
	switch {
	case age == 0:
		errs[key] = "Age is required"
	case age < 1 || age > 120:
		errs[key] = "Invalid age"
	}
}
