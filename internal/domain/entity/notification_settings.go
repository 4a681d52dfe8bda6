package entity

import "time"

// NotificationSettings is the optional per-account preference record.
// Absence is a valid, common state: defaults are resolved by the settings
// service, not stored here.
type NotificationSettings struct {
	AccountID            string    `json:"account_id" bson:"_id"`                                        // The account these settings belong to.
	NotificationsEnabled bool      `json:"notifications_enabled" bson:"notifications_enabled"`           // Master switch for every channel.
	PushEnabled          bool      `json:"push_notifications_enabled" bson:"push_notifications_enabled"` // Gates the push channel.
	EmailEnabled         bool      `json:"email_notifications" bson:"email_notifications"`               // Gates the email channel.
	InAppEnabled         bool      `json:"in_app_notifications" bson:"in_app_notifications"`             // Gates durable in-app records.
	DefectAlerts         bool      `json:"defect_alerts" bson:"defect_alerts"`                           // Opt-in for defect telemetry categories.
	MachineAlerts        bool      `json:"machine_alerts" bson:"machine_alerts"`                         // Opt-in for machine telemetry categories.
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`                                 // Timestamp of record creation.
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`                                 // Timestamp of the last modification.
}
