package models

// AddressInput carries the client-supplied address fields.
type AddressInput struct {
	City    string `json:"city" validate:"notblank,min=1,max=100,street_city" example:"Quezon City"`
	Country string `json:"country" validate:"notblank,min=1,max=100,country" example:"Philippines"`
	Street  string `json:"street" validate:"notblank,min=1,max=100,street_city" example:"Narra street"`
	Postal  string `json:"postal" validate:"omitempty,max=10,postal" example:"12345"`
}

// Formatted returns the geocoder input for the submitted address.
func (a AddressInput) Formatted() string {
	return FormatAddress(a.Street, a.City, a.Postal, a.Country)
}

// PersonCreate is the body of POST /create_address.
type PersonCreate struct {
	Name    string       `json:"name" validate:"notblank,min=1,max=100,name" example:"John doe"`
	Email   string       `json:"email" validate:"notblank,min=1,max=100,email_format" example:"example@email.com"`
	Phone   string       `json:"phone" validate:"notblank,min=1,max=15,phone" example:"09123456789"`
	Address AddressInput `json:"address"`
}

// AddressUpdate carries optional address changes. An empty field is left untouched.
type AddressUpdate struct {
	City    string `json:"city,omitempty" validate:"omitempty,max=100,street_city"`
	Country string `json:"country,omitempty" validate:"omitempty,max=100,country"`
	Street  string `json:"street,omitempty" validate:"omitempty,max=100,street_city"`
	Postal  string `json:"postal,omitempty" validate:"omitempty,max=10,postal"`
}

// IsEmpty reports whether no address field was supplied.
func (a *AddressUpdate) IsEmpty() bool {
	return a == nil || (a.City == "" && a.Country == "" && a.Street == "" && a.Postal == "")
}

// PersonUpdate is the body of PUT /update_address/{id}.
type PersonUpdate struct {
	Name    string         `json:"name,omitempty" validate:"omitempty,max=100,name"`
	Email   string         `json:"email,omitempty" validate:"omitempty,max=100,email_format"`
	Phone   string         `json:"phone,omitempty" validate:"omitempty,max=15,phone"`
	Address *AddressUpdate `json:"address,omitempty"`
}

// MutationResult is returned by create and update.
type MutationResult struct {
	Message   string `json:"message"`
	PersonID  int64  `json:"person_id"`
	AddressID int64  `json:"address_id"`
}
