package entity

import "time"

// DeviceType classifies the client that registered a push token.
type DeviceType string

const (
	DeviceTypeWeb     DeviceType = "web"
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeDesktop DeviceType = "desktop"
)

// DeviceToken represents one FCM registration token stored inside an
// account document. Uniqueness is by token value: an account never holds
// two entries with the same token.
type DeviceToken struct {
	Token       string     `json:"token" bson:"token"`               // The FCM registration token.
	DeviceType  DeviceType `json:"device_type" bson:"device_type"`   // The client platform that registered the token.
	UserAgent   string     `json:"user_agent" bson:"user_agent"`     // The client user agent at registration time.
	IsActive    bool       `json:"is_active" bson:"is_active"`       // Whether the token is eligible for push dispatch.
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`     // Timestamp of first registration.
	LastUpdated time.Time  `json:"last_updated" bson:"last_updated"` // Timestamp of the most recent registration or refresh.
}
