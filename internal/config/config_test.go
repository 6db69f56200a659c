package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestReadConfig(t *testing.T) {
	var (
		err         error
		projectRoot string
	)

	// Get the project root by going up from internal/config
	projectRoot, err = filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	var cfg Config

	cfg, err = ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	// Test DB config
	if cfg.DB.GormEngine == "" {
		t.Error("DB.GormEngine should not be empty")
	}

	// Media defaults are filled during validation
	if cfg.Media.Root == "" {
		t.Error("Media.Root should be defaulted when missing")
	}

	if cfg.Media.MaxUploadSize == 0 {
		t.Error("Media.MaxUploadSize should be defaulted when missing")
	}
}

func TestConfigValidation(t *testing.T) {
	valid := Config{
		Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
		DB:        DB{GormEngine: GormEngineSQLite},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(_ *Config) {}, ""},
		{"zero port", func(c *Config) { c.Webserver.Port = 0 }, ErrWebServerPortCanNotBeZero.Error()},
		{"empty url", func(c *Config) { c.Webserver.URL = "" }, ErrEmptyURL.Error()},
		{"empty engine", func(c *Config) { c.DB.GormEngine = "" }, ErrEmptyGormEngine.Error()},
		{"unknown engine", func(c *Config) { c.DB.GormEngine = "oracle" }, ErrUnknownGormEngine.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := validate(&cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSetsDefaults(t *testing.T) {
	cfg := Config{
		Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
		DB:        DB{GormEngine: GormEngineSQLite},
	}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("ShutDownTime = %d, want default 5", cfg.Webserver.ShutDownTime)
	}

	if cfg.Media.Root != "./media" {
		t.Errorf("Media.Root = %q, want default ./media", cfg.Media.Root)
	}

	if cfg.Media.MaxUploadSize != 16<<20 {
		t.Errorf("Media.MaxUploadSize = %d, want default 16 MiB", cfg.Media.MaxUploadSize)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{Title: "GoFolio"}

	out, err := DumpConfig(cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(out, "GoFolio") {
		t.Errorf("DumpConfig() output does not contain title: %s", out)
	}

	jsonOut, err := DumpConfigJSON(cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonOut, `"Title": "GoFolio"`) {
		t.Errorf("DumpConfigJSON() output does not contain title: %s", jsonOut)
	}
}
