package models

import "time"

// UserProfile is the server-owned user aggregate. The client holds it as a
// cache only: every successful mutation response replaces it wholesale.
type UserProfile struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Account     Account          `json:"account"`
	Addresses   []BackendAddress `json:"addresses"`
	Activity    ActivitySummary  `json:"activity"`
	Preferences UserPreferences  `json:"preferences"`
	Status      AccountStatus    `json:"status"`
	Security    AccountSecurity  `json:"security"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type Account struct {
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type ActivitySummary struct {
	MemberSince   time.Time `json:"memberSince"`
	Favorites     []string  `json:"favorites"`
	Cart          []string  `json:"cart"`
	OrderIDs      []string  `json:"orderIds"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
}

type AccountStatus struct {
	Banned   bool `json:"banned"`
	Verified bool `json:"verified"`
	Active   bool `json:"active"`
	Deleted  bool `json:"deleted"`
}

type AccountSecurity struct {
	Role string `json:"role"`
}
