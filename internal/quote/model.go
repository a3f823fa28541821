package quote

import "time"

// Request is a custom fabrication quote submitted from the storefront form.
// Board geometry fields are free text the way the form collects them; sales
// staff read them, nothing computes on them.
type Request struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Company            string    `json:"company,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	BoardType          string    `json:"boardType"`
	Quantity           string    `json:"quantity"`
	Layers             string    `json:"layers,omitempty"`
	Dimensions         string    `json:"dimensions,omitempty"`
	Specifications     string    `json:"specifications,omitempty"`
	Timeline           string    `json:"timeline,omitempty"`
	Budget             string    `json:"budget,omitempty"`
	AdditionalServices []string  `json:"additionalServices,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Validate checks the fields the form marks as required.
func (r *Request) Validate() error {
	switch {
	case r.Name == "":
		return fieldError("name")
	case r.Email == "":
		return fieldError("email")
	case r.BoardType == "":
		return fieldError("boardType")
	case r.Quantity == "":
		return fieldError("quantity")
	}
	return nil
}

type fieldError string

func (e fieldError) Error() string { return "missing required field " + string(e) }
