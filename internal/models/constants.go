package models

// Category tags. The fixed vocabulary of the chat classifier plus the
// "outros" fallback. Corrections may introduce free-form tags beyond these.
const (
	CategoryFood      = "alimentação"
	CategoryTransport = "transporte"
	CategoryLeisure   = "lazer"
	CategoryIncome    = "renda"
	CategoryHousing   = "moradia"
	CategoryOther     = "outros"
)

// File permissions
const (
	PermissionStateFile  = 0600
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
