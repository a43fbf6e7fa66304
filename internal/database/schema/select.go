package schema

import "strings"

// Selection helpers let each migration pull the statements for exactly the
// tables it introduces, so the DDL lives once in this package instead of
// being duplicated per migration.

// TableDefinitionsFor returns the CREATE TABLE statements of the named
// entity tables, in creation order.
func TableDefinitionsFor(names ...string) []string {
	want := toSet(names)
	var statements []string
	for _, ddl := range TableDefinitions {
		if want[tableNameOf(ddl)] {
			statements = append(statements, ddl)
		}
	}
	return statements
}

// LookupTableDefinitionsFor returns the CREATE TABLE statements of the named
// lookup tables.
func LookupTableDefinitionsFor(names ...string) []string {
	want := toSet(names)
	var statements []string
	for _, name := range LookupTableNames {
		if want[name] {
			statements = append(statements, "CREATE TABLE IF NOT EXISTS "+name+lookupTableDDL)
		}
	}
	return statements
}

// ForeignKeysFor returns every relation declared on the named tables,
// audit envelope first.
func ForeignKeysFor(tables ...string) []ForeignKey {
	want := toSet(tables)
	var fks []ForeignKey
	for _, fk := range AuditForeignKeys() {
		if want[fk.Table] {
			fks = append(fks, fk)
		}
	}
	for _, fk := range DomainForeignKeys {
		if want[fk.Table] {
			fks = append(fks, fk)
		}
	}
	return fks
}

// SeedStatementsFor returns the seed statements of the named lookup tables.
func SeedStatementsFor(names ...string) []string {
	want := toSet(names)
	var statements []string
	for _, stmt := range SeedStatements() {
		if want[seedTableOf(stmt)] {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// DropTableStatements returns DROP TABLE statements for the named tables in
// reverse order, so dependents go before their parents.
func DropTableStatements(names ...string) []string {
	statements := make([]string, 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		statements = append(statements, "DROP TABLE IF EXISTS "+names[i]+" CASCADE")
	}
	return statements
}

func tableNameOf(ddl string) string {
	const prefix = "CREATE TABLE IF NOT EXISTS "
	rest := strings.TrimPrefix(strings.TrimSpace(ddl), prefix)
	if idx := strings.IndexAny(rest, " (\n\t"); idx > 0 {
		return rest[:idx]
	}
	return rest
}

func seedTableOf(stmt string) string {
	const prefix = "INSERT INTO "
	rest := strings.TrimPrefix(stmt, prefix)
	if idx := strings.IndexAny(rest, " ("); idx > 0 {
		return rest[:idx]
	}
	return rest
}
