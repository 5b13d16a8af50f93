// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.DatabaseURL != DefaultDBFile {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, DefaultDBFile)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.ClubName != "Badminton Week Sheet" {
		t.Errorf("ClubName = %q, want default", cfg.ClubName)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want admin", cfg.AdminUsername)
	}
	if cfg.AdminPassword != "" {
		t.Errorf("AdminPassword = %q, want empty", cfg.AdminPassword)
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("DATABASE_URL", "club.db")
	os.Setenv("CLUB_NAME", "Tuesday Club")
	os.Setenv("ADMIN_USERNAME", "chair")
	os.Setenv("ADMIN_PASSWORD", "hunter2")
	os.Setenv("SESSION_SECRET", "env-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "club.db" {
		t.Errorf("DatabaseURL = %q, want club.db", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.ClubName != "Tuesday Club" {
		t.Errorf("ClubName = %q, want Tuesday Club", cfg.ClubName)
	}
	if cfg.AdminUsername != "chair" {
		t.Errorf("AdminUsername = %q, want chair", cfg.AdminUsername)
	}
	if cfg.AdminPassword != "hunter2" {
		t.Errorf("AdminPassword = %q, want hunter2", cfg.AdminPassword)
	}
	if cfg.SessionSecret != "env-secret" {
		t.Errorf("SessionSecret = %q, want env-secret", cfg.SessionSecret)
	}
}

func TestParseFlagsCLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("DATABASE_URL", "env.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "9000", "-d", "cli.db"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.DatabaseURL != "cli.db" {
		t.Errorf("DatabaseURL = %q, want cli.db", cfg.DatabaseURL)
	}
}

func TestParseFlagsInfersPostgres(t *testing.T) {
	os.Clearenv()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"postgres scheme", "postgres://u:p@localhost/weeksheet", "postgres"},
		{"postgresql scheme", "postgresql://u:p@localhost/weeksheet", "postgres"},
		{"file path", "weeksheet.db", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags([]string{"-d", tt.url})
			if err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}
			if cfg.DatabaseType != tt.want {
				t.Errorf("DatabaseType = %q, want %q", cfg.DatabaseType, tt.want)
			}
		})
	}
}

func TestParseFlagsExplicitTypeWins(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "postgres://u:p@localhost/weeksheet", "-t", "postgres"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
	}
}

func TestParseFlagsInvalidType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("ParseFlags() accepted unsupported database type")
	}
}

func TestParseFlagsInvalidPortEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("ParseFlags() accepted non-numeric PORT")
	}
}
