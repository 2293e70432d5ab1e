package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yasinhessnawi1/BizCards_Backend/internal/constants"
)

// Name is a person's name split into its parts.
type Name struct {
	First  string `json:"first" validate:"required,min=2"`
	Middle string `json:"middle"`
	Last   string `json:"last" validate:"required,min=1"`
}

// Address is the postal address of a user.
type Address struct {
	State       string        `json:"state" validate:"omitempty,min=2"`
	Country     string        `json:"country" validate:"required,min=2"`
	City        string        `json:"city" validate:"required,min=2"`
	Street      string        `json:"street" validate:"required,min=2"`
	HouseNumber *int          `json:"houseNumber" validate:"required"`
	Zip         NumericString `json:"zip" validate:"required,numeric"`
}

// CardAddress is the postal address printed on a card. State and zip fall
// back to sentinels when omitted.
type CardAddress struct {
	State       string        `json:"state"`
	Country     string        `json:"country" validate:"required,min=2"`
	City        string        `json:"city" validate:"required,min=2"`
	Street      string        `json:"street" validate:"required,min=2"`
	HouseNumber *int          `json:"houseNumber" validate:"required"`
	Zip         NumericString `json:"zip" validate:"omitempty,numeric"`
}

// ApplyDefaults fills the state and zip sentinels.
func (a *CardAddress) ApplyDefaults() {
	if a.State == "" {
		a.State = constants.DefaultCardState
	}
	if a.Zip == "" {
		a.Zip = constants.DefaultCardZip
	}
}

// Image is an optional profile picture.
type Image struct {
	URL string `json:"url" validate:"omitempty,uri"`
	Alt string `json:"alt"`
}

// ApplyDefaults sets the placeholder picture and its alt text.
func (i *Image) ApplyDefaults() {
	if i.URL == "" {
		i.URL = constants.DefaultUserImageURL
	}
	if i.Alt == "" {
		i.Alt = constants.DefaultUserImageAlt
	}
}

// CardImage is the mandatory picture of a card.
type CardImage struct {
	URL string `json:"url" validate:"required,uri"`
	Alt string `json:"alt" validate:"required"`
}

// NumericString holds a number that clients may send either as a JSON number
// or as a string, such as a zip code.
type NumericString string

// UnmarshalJSON accepts a JSON string, number or null.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("zip must be a number")
	}
	*n = NumericString(num.String())
	return nil
}

// String returns the raw value.
func (n NumericString) String() string {
	return string(n)
}

// FormatTimestamp renders t the way createdAt and updatedAt are stored.
func FormatTimestamp(t time.Time) string {
	return t.Format(constants.TimestampLayout)
}

// Now returns the current time as a stored timestamp.
func Now() string {
	return FormatTimestamp(time.Now())
}
