package migrations

import "embed"

// FS holds the ad-budget schema: brands, dayparting schedules, campaigns,
// the append-only spend ledger and the campaign status history. It is read
// by golang-migrate through the iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service migrates to on startup.
const Version = 1
