package data

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/grihom/grihom-api/internal/models"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var InitdbMariaDBPrivileges string

//go:embed catalog.json
var catalogJSON []byte

var (
	catalogOnce sync.Once
	catalog     []models.Improvement
)

// Catalog returns the embedded static improvement catalog in its fixed order.
// The returned slice is a copy; callers may reorder or filter it freely.
func Catalog() []models.Improvement {
	catalogOnce.Do(func() {
		if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
			// The catalog is compiled into the binary; a parse failure is a build defect.
			panic("data: invalid embedded catalog: " + err.Error())
		}
	})
	out := make([]models.Improvement, len(catalog))
	copy(out, catalog)
	return out
}
