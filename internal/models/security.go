package models

import "time"

type SecuritySettings struct {
	TwoFactor          bool `json:"twoFactor"`
	LoginNotifications bool `json:"loginNotifications"`
	SessionTimeout     bool `json:"sessionTimeout"`
	DeviceTracking     bool `json:"deviceTracking"`
	PasswordExpiry     bool `json:"passwordExpiry"`
}

// Session is one authenticated device/browser known to the server.
type Session struct {
	ID         string    `json:"id"`
	Device     string    `json:"device"`
	Location   string    `json:"location"`
	LastActive time.Time `json:"lastActive"`
	Current    bool      `json:"current"`
	IP         string    `json:"ip"`
}

// ActivityEntry is one row of the append-only account activity log.
type ActivityEntry struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Device      string    `json:"device,omitempty"`
	IP          string    `json:"ip,omitempty"`
}

type ActivityFeed struct {
	Activities []ActivityEntry `json:"activities"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Total      int             `json:"total"`
}
