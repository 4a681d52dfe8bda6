package entity

import "time"

// Account represents the slice of a user account this service cares about:
// delivery addresses and the embedded push-token registry.
type Account struct {
	ID              string        `json:"id" bson:"_id"`                                                  // The account identifier, e.g. "MEGG-679622".
	Email           string        `json:"email,omitempty" bson:"email,omitempty"`                         // Email delivery address; may be absent.
	DisplayName     string        `json:"display_name,omitempty" bson:"display_name,omitempty"`           // Name used in email salutations.
	ProfileImageURL string        `json:"profile_image_url,omitempty" bson:"profile_image_url,omitempty"` // Fallback notification decoration.
	FCMTokens       []DeviceToken `json:"fcm_tokens" bson:"fcm_tokens"`                                   // Registered push tokens, unique by token value.
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`                                   // Timestamp of account creation.
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`                                   // Timestamp of the last modification.
}

// ActiveTokens returns the token values currently eligible for push dispatch.
func (a *Account) ActiveTokens() []string {
	tokens := make([]string, 0, len(a.FCMTokens))
	for _, t := range a.FCMTokens {
		if t.IsActive {
			tokens = append(tokens, t.Token)
		}
	}
	return tokens
}

// HasActiveToken reports whether the given token value is registered and active.
func (a *Account) HasActiveToken(token string) bool {
	for _, t := range a.FCMTokens {
		if t.Token == token && t.IsActive {
			return true
		}
	}
	return false
}
