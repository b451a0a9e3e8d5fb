package models

// UserPreferences is embedded in the profile aggregate but mutated through
// its own endpoints. The backend replaces nested objects wholesale, so a
// partial patch must be merged against the current snapshot before sending.
type UserPreferences struct {
	Meals          MealPreferences         `json:"meals"`
	Notifications  NotificationPreferences `json:"notifications"`
	PaymentMethods []string                `json:"paymentMethod"`
}

type MealPreferences struct {
	Type         string `json:"type"`
	Spice        string `json:"spice"`
	Restrictions string `json:"restrictions"`
	Message      string `json:"message"`
}

type NotificationPreferences struct {
	Order      bool `json:"order"`
	Reminders  bool `json:"reminders"`
	Menu       bool `json:"menu"`
	Promotions bool `json:"promotions"`
}
