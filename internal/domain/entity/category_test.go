package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		category Category
		icon     Icon
	}{
		{CategoryLogin, IconLogin},
		{CategoryLogout, IconLogout},
		{CategoryPasswordChange, IconLock},
		{CategorySettingsChange, IconSettings},
		{CategorySecuritySessionRevoked, IconShield},
		{CategoryFarmNameUpdated, IconFarm},
		{CategoryFarmPrimaryChanged, IconBuilding},
		{CategoryProfileImageUpdated, IconImage},
		{CategoryEmailUpdated, IconMail},
		{CategoryBirthdayUpdated, IconCalendar},
		{CategoryInventoryRefreshFail, IconAlert},
		{CategoryBatchListExported, IconDownload},
		{CategoryBatchStatusUpdated, IconCheck},
	}

	for _, tc := range cases {
		icon, ok := IconFor(tc.category)
		assert.True(t, ok, "category %s should have a fixed icon", tc.category)
		assert.Equal(t, tc.icon, icon)
	}

	_, ok := IconFor(Category("support_ticket_replied"))
	assert.False(t, ok, "unmapped categories take the fallback decoration")
}

func TestCategoryGatingSets(t *testing.T) {
	t.Parallel()

	for _, c := range []Category{
		CategoryLogin,
		CategoryLogout,
		CategoryPasswordChange,
		CategorySettingsChange,
		CategorySecuritySessionRevoked,
		CategoryFarmAddressUpdated,
		CategoryNameUpdated,
		CategoryGenderUpdated,
	} {
		assert.True(t, c.IsAlwaysAllowed(), "category %s must bypass settings", c)
		assert.False(t, c.DeniedByDefault())
	}

	for _, c := range []Category{CategoryDefectAlert, CategoryMachineAlert, CategoryMachineLinked} {
		assert.False(t, c.IsAlwaysAllowed())
		assert.True(t, c.DeniedByDefault(), "category %s is opt-in telemetry", c)
	}

	// Everything else defaults to allowed without being settings-proof.
	inv := CategoryInventoryRefreshed
	assert.False(t, inv.IsAlwaysAllowed())
	assert.False(t, inv.DeniedByDefault())
}

func TestNotificationDecorate(t *testing.T) {
	t.Parallel()

	n := &Notification{Category: CategoryLogin}
	n.Decorate("https://cdn.example.com/avatar.png")
	assert.Equal(t, IconLogin, n.Icon)
	assert.Empty(t, n.ProfileImage)

	m := &Notification{Category: Category("support_ticket_replied")}
	m.Decorate("https://cdn.example.com/avatar.png")
	assert.Empty(t, m.Icon)
	assert.Equal(t, "https://cdn.example.com/avatar.png", m.ProfileImage)
}

func TestAccountActiveTokens(t *testing.T) {
	t.Parallel()

	acc := &Account{
		ID: "MEGG-679622",
		FCMTokens: []DeviceToken{
			{Token: "tok-a", IsActive: true},
			{Token: "tok-b", IsActive: false},
			{Token: "tok-c", IsActive: true},
		},
	}

	assert.Equal(t, []string{"tok-a", "tok-c"}, acc.ActiveTokens())
	assert.True(t, acc.HasActiveToken("tok-a"))
	assert.False(t, acc.HasActiveToken("tok-b"))
	assert.False(t, acc.HasActiveToken("tok-unknown"))
}
