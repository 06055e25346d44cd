package schema

// CatalogItemTable describes the shared column layout of the catalog tables
// ('catalog.character', 'catalog.swimsuit', 'catalog.skill').
type CatalogItemTable struct {
	Table        string
	ID           string
	Name         string
	Translations string
	Type         string
	Rarity       string
	Stats        string
	Extra        string
	SortOrder    string
}

func catalogTable(name string) CatalogItemTable {
	return CatalogItemTable{
		Table:        name,
		ID:           "id",
		Name:         "name",
		Translations: "translations",
		Type:         "type",
		Rarity:       "rarity",
		Stats:        "stats",
		Extra:        "extra",
		SortOrder:    "sortorder",
	}
}

// CatalogCharacter is the schema definition for catalog.character
var CatalogCharacter = catalogTable("catalog.character")

// CatalogSwimsuit is the schema definition for catalog.swimsuit
var CatalogSwimsuit = catalogTable("catalog.swimsuit")

// CatalogSkill is the schema definition for catalog.skill
var CatalogSkill = catalogTable("catalog.skill")

// Columns returns the select list in scan order.
func (t CatalogItemTable) Columns() []string {
	return []string{t.ID, t.Name, t.Translations, t.Type, t.Rarity, t.Stats, t.Extra}
}
