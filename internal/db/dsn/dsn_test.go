package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoFolio/GoFolio/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "mysql",
			cfg: config.Config{DB: config.DB{
				GormEngine: config.GormEngineMySQL,
				User:       "gofolio", Password: "secret",
				Host: "127.0.0.1", Port: 3306,
				Name: "gofolio", Extras: "parseTime=True",
			}},
			want: "gofolio:secret@tcp(127.0.0.1:3306)/gofolio?parseTime=True",
		},
		{
			name: "postgres",
			cfg: config.Config{DB: config.DB{
				GormEngine: config.GormEnginePostgres,
				User:       "gofolio", Password: "secret",
				Host: "127.0.0.1", Port: 5432,
				Name: "gofolio", Extras: "sslmode=disable",
			}},
			want: "host=127.0.0.1 user=gofolio password=secret dbname=gofolio port=5432 sslmode=disable",
		},
		{
			name: "sqlite uses the file path",
			cfg: config.Config{DB: config.DB{
				GormEngine: config.GormEngineSQLite,
				Name:       "gofolio.db",
			}},
			want: "gofolio.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Create(&tt.cfg))
		})
	}
}

func TestDialector(t *testing.T) {
	cfg := config.Config{DB: config.DB{GormEngine: config.GormEngineSQLite, Name: ":memory:"}}
	assert.Equal(t, "sqlite", Dialector(&cfg).Name())

	cfg.DB.GormEngine = config.GormEngineMySQL
	assert.Equal(t, "mysql", Dialector(&cfg).Name())

	cfg.DB.GormEngine = config.GormEnginePostgres
	assert.Equal(t, "postgres", Dialector(&cfg).Name())
}
