package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAlphanumeric(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[A-Z0-9]+$`)

	for _, n := range []int{1, 6, 32} {
		s := RandomAlphanumeric(n)
		assert.Len(t, s, n)
		assert.Regexp(t, pattern, s)
	}

	seen := make(map[string]struct{})
	for range 100 {
		seen[RandomAlphanumeric(6)] = struct{}{}
	}
	assert.Greater(t, len(seen), 90, "expected near-unique identifiers")
}

func TestNotificationID(t *testing.T) {
	t.Parallel()

	id := NotificationID("ACC123")
	require.Regexp(t, `^NOTIF-ACC123-[A-Z0-9]{6}$`, id)

	other := NotificationID("ACC123")
	assert.NotEqual(t, id, other)
}
