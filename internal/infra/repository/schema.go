package repository

import _ "embed"

// Schema creates the postgres driver's tables. It is idempotent and applied
// by deploy tooling and the integration tests.
//
//go:embed schema.sql
var Schema string
