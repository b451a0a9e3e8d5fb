package models

// BackendAddress is the address shape the server stores inside the user
// aggregate. Soft-deleted entries stay in the array as tombstones and must be
// filtered out before anything UI-facing sees the list.
type BackendAddress struct {
	Label       string      `json:"label"`
	HouseNumber string      `json:"houseNumber"`
	Street      string      `json:"street"`
	Area        string      `json:"area"`
	Landmark    string      `json:"landmark,omitempty"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Zipcode     string      `json:"zipcode"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	IsDeleted   bool        `json:"isDeleted,omitempty"`
	DeletedAt   string      `json:"deletedAt,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FrontendAddress is the UI-facing view derived from a BackendAddress plus
// profile context. ID is the stringified position in the filtered list;
// FullName and Phone are not persisted per address and come from the profile.
type FrontendAddress struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
	Landmark     string `json:"landmark,omitempty"`
	IsDefault    bool   `json:"isDefault"`
}
