// Package util provides small shared helpers.
package util

import (
	"crypto/rand"
	"fmt"
)

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomAlphanumeric returns an uppercase alphanumeric string of length n.
func RandomAlphanumeric(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("util: read random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = idCharset[int(b)%len(idCharset)]
	}
	return string(buf)
}

// NotificationID builds a notification identifier scoped to an account,
// in the form NOTIF-{accountID}-{6 random alphanumerics}.
func NotificationID(accountID string) string {
	return fmt.Sprintf("NOTIF-%s-%s", accountID, RandomAlphanumeric(6))
}
