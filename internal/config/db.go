package config

// Supported GORM engines.
const (
	// GormEngineSQLite stores data in a local sqlite file (the default for a
	// single-owner site).
	GormEngineSQLite = "sqlite"
	// GormEngineMySQL stores data in a MySQL/MariaDB server.
	GormEngineMySQL = "mysql"
	// GormEnginePostgres stores data in a PostgreSQL server.
	GormEnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string
}
