package migrations

import "embed"

// FS содержит SQL миграции схемы бронирований
//
//go:embed *.sql
var FS embed.FS
