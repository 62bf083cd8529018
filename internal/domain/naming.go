package domain

// TablePrefix is prepended to every physical table name. It must match the
// TablePrefix configured on the gorm NamingStrategy so raw-SQL helpers and
// parsed schema metadata agree on physical names.
const TablePrefix = "app_"

func tableName(name string) string {
	return TablePrefix + name
}
