package order

import (
	"ecom/internal/pkg/errs"
)

// Address is the shipping destination of an order. Each order owns exactly
// one address; it is created and deleted together with its order.
type Address struct {
	id          int64
	building    string
	apartmentNo string
	houseNo     string
	street      string
	city        string
	country     string
}

// NewAddress creates a shipping address. Street, city and country are
// required; building and unit numbers are optional.
func NewAddress(building, apartmentNo, houseNo, street, city, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if country == "" {
		return Address{}, errs.NewValueIsRequiredError("country")
	}

	return Address{
		building:    building,
		apartmentNo: apartmentNo,
		houseNo:     houseNo,
		street:      street,
		city:        city,
		country:     country,
	}, nil
}

// RestoreAddress rebuilds an address from persistence, including its row id.
func RestoreAddress(id int64, building, apartmentNo, houseNo, street, city, country string) (Address, error) {
	address, err := NewAddress(building, apartmentNo, houseNo, street, city, country)
	if err != nil {
		return Address{}, err
	}

	address.id = id
	return address, nil
}

// ID returns the persistence identifier, zero until stored.
func (a Address) ID() int64 { return a.id }

// Building returns the building name or number.
func (a Address) Building() string { return a.building }

// ApartmentNo returns the apartment number.
func (a Address) ApartmentNo() string { return a.apartmentNo }

// HouseNo returns the house number.
func (a Address) HouseNo() string { return a.houseNo }

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// Country returns the country.
func (a Address) Country() string { return a.country }
