package entity

// Category classifies a notification's origin. The set is closed: values
// outside the declared constants are treated as unknown and take the
// profile-image decoration fallback.
type Category string

const (
	// Authentication and security events.
	CategoryLogin                  Category = "login"
	CategoryLogout                 Category = "logout"
	CategoryPasswordChange         Category = "password_change"
	CategorySettingsChange         Category = "settings_change"
	CategorySecuritySessionRevoked Category = "security_session_revoked"

	// Farm events.
	CategoryFarmInfoUpdated    Category = "farm_info_updated"
	CategoryFarmNameUpdated    Category = "farm_name_updated"
	CategoryFarmAddressUpdated Category = "farm_address_updated"
	CategoryFarmPrimaryChanged Category = "farm_primary_changed"

	// Profile field events.
	CategoryProfileImageAdded   Category = "profile_image_added"
	CategoryProfileImageRemoved Category = "profile_image_removed"
	CategoryProfileImageUpdated Category = "profile_image_updated"
	CategoryNameUpdated         Category = "name_updated"
	CategoryEmailUpdated        Category = "email_updated"
	CategoryPhoneUpdated        Category = "phone_updated"
	CategoryAddressUpdated      Category = "address_updated"
	CategoryBirthdayUpdated     Category = "birthday_updated"
	CategoryAgeUpdated          Category = "age_updated"
	CategoryGenderUpdated       Category = "gender_updated"

	// Inventory events.
	CategoryInventoryDataFiltered Category = "inventory_data_filtered"
	CategoryInventoryRefreshed    Category = "inventory_refreshed"
	CategoryInventoryRefreshFail  Category = "inventory_refresh_failed"
	CategoryInventoryLoadFail     Category = "inventory_load_failed"

	// Batch and export events.
	CategoryBatchStatusUpdated   Category = "batch_status_updated"
	CategoryBatchStatusFail      Category = "batch_status_update_failed"
	CategoryBatchListExported    Category = "batch_list_exported"
	CategoryBatchDetailsExported Category = "batch_details_exported"
	CategoryBatchExportFail      Category = "batch_export_failed"

	// Device telemetry events. Noisy; denied unless settings opt in.
	CategoryDefectAlert     Category = "defect_alert"
	CategoryMachineAlert    Category = "machine_alert"
	CategoryMachineLinked   Category = "machine_linked"
	CategoryMachineUpdated  Category = "machine_updated"
	CategoryMachineUnlinked Category = "machine_unlinked"
)

// Icon is the fixed decoration token attached to a notification record.
type Icon string

const (
	IconLogin    Icon = "login"
	IconLogout   Icon = "logout"
	IconLock     Icon = "lock"
	IconSettings Icon = "settings"
	IconFarm     Icon = "farm"
	IconBuilding Icon = "building"
	IconImage    Icon = "image"
	IconUser     Icon = "user"
	IconMail     Icon = "mail"
	IconPhone    Icon = "phone"
	IconMap      Icon = "map"
	IconCalendar Icon = "calendar"
	IconFilter   Icon = "filter"
	IconRefresh  Icon = "refresh"
	IconAlert    Icon = "alert"
	IconCheck    Icon = "check"
	IconDownload Icon = "download"
	IconShield   Icon = "shield"
)

// categoryIcons is the static category decoration table. Categories absent
// here fall back to the account's profile image, resolved at creation time.
var categoryIcons = map[Category]Icon{
	CategoryLogin:                  IconLogin,
	CategoryLogout:                 IconLogout,
	CategoryPasswordChange:         IconLock,
	CategorySettingsChange:         IconSettings,
	CategorySecuritySessionRevoked: IconShield,

	CategoryFarmInfoUpdated:    IconFarm,
	CategoryFarmNameUpdated:    IconFarm,
	CategoryFarmAddressUpdated: IconFarm,
	CategoryFarmPrimaryChanged: IconBuilding,

	CategoryProfileImageAdded:   IconImage,
	CategoryProfileImageRemoved: IconImage,
	CategoryProfileImageUpdated: IconImage,
	CategoryNameUpdated:         IconUser,
	CategoryEmailUpdated:        IconMail,
	CategoryPhoneUpdated:        IconPhone,
	CategoryAddressUpdated:      IconMap,
	CategoryBirthdayUpdated:     IconCalendar,
	CategoryAgeUpdated:          IconCalendar,
	CategoryGenderUpdated:       IconUser,

	CategoryInventoryDataFiltered: IconFilter,
	CategoryInventoryRefreshed:    IconRefresh,
	CategoryInventoryRefreshFail:  IconAlert,
	CategoryInventoryLoadFail:     IconAlert,

	CategoryBatchStatusUpdated:   IconCheck,
	CategoryBatchStatusFail:      IconAlert,
	CategoryBatchListExported:    IconDownload,
	CategoryBatchDetailsExported: IconDownload,
	CategoryBatchExportFail:      IconAlert,
}

// IconFor resolves the static decoration for a category. The second return
// reports whether the category has a fixed icon; callers decide the fallback.
func IconFor(category Category) (Icon, bool) {
	icon, ok := categoryIcons[category]
	return icon, ok
}

// alwaysAllowed lists safety and audit critical categories that bypass
// stored settings entirely. These must never be silenced, even when the
// settings document is absent or unreadable.
var alwaysAllowed = map[Category]struct{}{
	CategoryLogin:                  {},
	CategoryLogout:                 {},
	CategoryPasswordChange:         {},
	CategorySettingsChange:         {},
	CategorySecuritySessionRevoked: {},

	CategoryFarmInfoUpdated:    {},
	CategoryFarmNameUpdated:    {},
	CategoryFarmAddressUpdated: {},
	CategoryFarmPrimaryChanged: {},

	CategoryProfileImageAdded:   {},
	CategoryProfileImageRemoved: {},
	CategoryProfileImageUpdated: {},
	CategoryNameUpdated:         {},
	CategoryEmailUpdated:        {},
	CategoryPhoneUpdated:        {},
	CategoryAddressUpdated:      {},
	CategoryBirthdayUpdated:     {},
	CategoryAgeUpdated:          {},
	CategoryGenderUpdated:       {},
}

// IsAlwaysAllowed reports whether the category bypasses stored settings.
func (c Category) IsAlwaysAllowed() bool {
	_, ok := alwaysAllowed[c]
	return ok
}

// IsDefectRelated reports whether the category is gated by the
// defect-alerts settings flag.
func (c Category) IsDefectRelated() bool {
	return c == CategoryDefectAlert
}

// IsMachineRelated reports whether the category is gated by the
// machine-alerts settings flag.
func (c Category) IsMachineRelated() bool {
	switch c {
	case CategoryMachineAlert, CategoryMachineLinked, CategoryMachineUpdated, CategoryMachineUnlinked:
		return true
	default:
		return false
	}
}

// DeniedByDefault reports whether the category resolves to Denied when the
// account has no settings document. High-frequency device telemetry is
// opt-in; everything else defaults to allowed.
func (c Category) DeniedByDefault() bool {
	return c.IsDefectRelated() || c.IsMachineRelated()
}
