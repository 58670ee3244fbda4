package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := Default()
	cfg.Token = "tok"
	return cfg
}

func TestDefault(t *testing.T) {
	t.Setenv(TokenEnvVar, "  my-token \n")

	cfg := Default()
	if cfg.Token != "my-token" {
		t.Errorf("Token = %q, want trimmed value", cfg.Token)
	}
	if cfg.UsersPerPage != 100 || cfg.ReposPerPage != 100 {
		t.Errorf("page sizes = %d/%d, want 100/100", cfg.UsersPerPage, cfg.ReposPerPage)
	}
	if cfg.MaxUserPages != 10 {
		t.Errorf("MaxUserPages = %d, want 10", cfg.MaxUserPages)
	}
	if cfg.MaxReposPerUser != 500 {
		t.Errorf("MaxReposPerUser = %d, want 500", cfg.MaxReposPerUser)
	}
	if cfg.UsersFile != "users.csv" || cfg.ReposFile != "repositories.csv" {
		t.Errorf("filenames = %q/%q", cfg.UsersFile, cfg.ReposFile)
	}
}

func TestValidate_MissingTokenIsFatal(t *testing.T) {
	cfg := validConfig()
	cfg.Token = ""

	err := cfg.Validate()
	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("Validate() = %v, want ErrMissingToken", err)
	}
}

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"page size too large", func(c *Config) { c.UsersPerPage = 101 }, false},
		{"page size zero", func(c *Config) { c.ReposPerPage = 0 }, false},
		{"no pages", func(c *Config) { c.MaxUserPages = 0 }, false},
		{"negative repo cap", func(c *Config) { c.MaxReposPerUser = -1 }, false},
		{"negative delay", func(c *Config) { c.PageDelay = -1 }, false},
		{"zero delay ok", func(c *Config) { c.PageDelay = 0 }, true},
		{"empty location", func(c *Config) { c.Location = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	cfg := validConfig()
	cfg.OutputDir = "/tmp/census"

	if got := cfg.UsersPath(); got != filepath.Join("/tmp/census", "users.csv") {
		t.Errorf("UsersPath() = %q", got)
	}
	if got := cfg.ReposPath(); got != filepath.Join("/tmp/census", "repositories.csv") {
		t.Errorf("ReposPath() = %q", got)
	}

	cfg.OutputDir = "."
	if got := cfg.UsersPath(); got != "users.csv" {
		t.Errorf("UsersPath() with dot dir = %q", got)
	}
}
