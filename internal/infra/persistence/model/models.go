// Package model holds the GORM persistence models.
package model

// All lists every model migrated on startup when listings.autoMigrate is set.
func All() []any {
	return []any{
		&OperatorModel{},
		&CredentialModel{},
		&SessionModel{},
		&ListingModel{},
	}
}
