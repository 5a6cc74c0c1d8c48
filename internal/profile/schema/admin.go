package schema

// AdminConfig drives a browsable record editor: which columns are listed,
// filtered, searched, shown read-only, and which one labels a row. It is
// derived from the generated schema, not from the entity, and is consumed
// by an external admin UI.
type AdminConfig struct {
	ListDisplay    []string `json:"list_display"`
	ListFilter     []string `json:"list_filter"`
	SearchFields   []string `json:"search_fields"`
	ReadonlyFields []string `json:"readonly_fields"`
	LabelField     string   `json:"label_field"`
}

// Store-managed columns shown read-only when present.
var readonlyCandidates = []string{"created_at", "updated_at", "last_activity"}

const maxListDisplay = 8

// GenerateAdminConfig derives an AdminConfig from a generated schema.
// Non-empty fields of custom override the derived values wholesale.
func GenerateAdminConfig(ts *TableSchema, custom *AdminConfig) AdminConfig {
	var cfg AdminConfig

	for _, col := range ts.Columns {
		if col.Name != "id" && len(cfg.ListDisplay) < maxListDisplay {
			cfg.ListDisplay = append(cfg.ListDisplay, col.Name)
		}
		switch col.Type {
		case TypeBoolean, TypeTimestamp:
			cfg.ListFilter = append(cfg.ListFilter, col.Name)
		case TypeString:
			cfg.SearchFields = append(cfg.SearchFields, col.Name)
		}
	}

	for _, name := range readonlyCandidates {
		if ts.Column(name) != nil {
			cfg.ReadonlyFields = append(cfg.ReadonlyFields, name)
		}
	}

	cfg.LabelField = labelFor(ts)

	if custom != nil {
		if len(custom.ListDisplay) > 0 {
			cfg.ListDisplay = custom.ListDisplay
		}
		if len(custom.ListFilter) > 0 {
			cfg.ListFilter = custom.ListFilter
		}
		if len(custom.SearchFields) > 0 {
			cfg.SearchFields = custom.SearchFields
		}
		if len(custom.ReadonlyFields) > 0 {
			cfg.ReadonlyFields = custom.ReadonlyFields
		}
		if custom.LabelField != "" {
			cfg.LabelField = custom.LabelField
		}
	}

	return cfg
}

// labelFor picks the human-readable row label: the curated "name" column
// when present, otherwise the first bounded-string column, otherwise the id.
func labelFor(ts *TableSchema) string {
	if ts.Column("name") != nil {
		return "name"
	}
	for _, col := range ts.Columns {
		if col.Type == TypeString {
			return col.Name
		}
	}
	return "id"
}
