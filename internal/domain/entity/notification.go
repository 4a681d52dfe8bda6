// Package entity contains the core business objects of the project.
package entity

import "time"

// Notification represents a durable in-app notification record.
//
// Lifecycle: a record is created unread, may be marked read exactly once,
// and may be deleted from either state. There are no other transitions.
type Notification struct {
	ID           string    `json:"id" bson:"_id"`                                          // Collision-resistant identifier, NOTIF-{accountId}-{6 alphanumerics}.
	AccountID    string    `json:"account_id" bson:"account_id"`                           // The account this notification belongs to.
	Message      string    `json:"message" bson:"message"`                                 // Human-readable notification body.
	Category     Category  `json:"category" bson:"category"`                               // The semantic event category that produced this record.
	Read         bool      `json:"read" bson:"read"`                                       // Whether the account has read this notification.
	Icon         Icon      `json:"icon,omitempty" bson:"icon,omitempty"`                   // Static decoration token from the category table, if any.
	ProfileImage string    `json:"profile_image,omitempty" bson:"profile_image,omitempty"` // Fallback decoration for categories without a fixed icon.
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`                           // Timestamp of when this record was created.
}

// Decorate attaches the static icon for the notification's category, or
// falls back to the account's profile image when the category has none.
func (n *Notification) Decorate(profileImage string) {
	if icon, ok := IconFor(n.Category); ok {
		n.Icon = icon
		return
	}
	n.ProfileImage = profileImage
}
