package config

import (
	"os"
	"testing"
)

func TestLoader_ParseEnvironment(t *testing.T) {

	t.Run("applies defaults when variables are missing", func(t *testing.T) {
		unset := []string{
			"DASHBOARD_HTTP_PORT",
			"DASHBOARD_SQLITE_DSN",
			"DASHBOARD_LESSON_BLOCK_SIZE",
			"DASHBOARD_LESSON_BLOCK_AMOUNT",
			"DASHBOARD_MONTHLY_FEE",
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Fatalf("failed to unset %s: %v", key, err)
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 8080 {
			t.Fatalf("expected default HTTP port 8080, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file:dashboard.db?_pragma=busy_timeout(5000)" {
			t.Fatalf("unexpected default DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.LessonBlockSize != 8 {
			t.Fatalf("expected default lesson block size 8, got %d", cfg.LessonBlockSize)
		}
		if cfg.LessonBlockAmount != 5000 {
			t.Fatalf("expected default block amount 5000, got %v", cfg.LessonBlockAmount)
		}
		if cfg.MonthlyFee != 8000 {
			t.Fatalf("expected default monthly fee 8000, got %v", cfg.MonthlyFee)
		}
	})

	t.Run("accepts overrides from the environment", func(t *testing.T) {
		t.Setenv("DASHBOARD_HTTP_PORT", "9090")
		t.Setenv("DASHBOARD_SQLITE_DSN", "file::memory:?cache=shared")
		t.Setenv("DASHBOARD_LESSON_BLOCK_SIZE", "4")
		t.Setenv("DASHBOARD_LESSON_BLOCK_AMOUNT", "1500.50")
		t.Setenv("DASHBOARD_MONTHLY_FEE", "12000")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}

		if cfg.HTTPPort != 9090 {
			t.Fatalf("expected HTTP port 9090, got %d", cfg.HTTPPort)
		}
		if cfg.SQLiteDSN != "file::memory:?cache=shared" {
			t.Fatalf("unexpected DSN: %q", cfg.SQLiteDSN)
		}
		if cfg.LessonBlockSize != 4 {
			t.Fatalf("expected lesson block size 4, got %d", cfg.LessonBlockSize)
		}
		if cfg.LessonBlockAmount != 1500.50 {
			t.Fatalf("expected block amount 1500.50, got %v", cfg.LessonBlockAmount)
		}
		if cfg.MonthlyFee != 12000 {
			t.Fatalf("expected monthly fee 12000, got %v", cfg.MonthlyFee)
		}
	})

	t.Run("reports invalid values together", func(t *testing.T) {
		t.Setenv("DASHBOARD_HTTP_PORT", "not-a-port")
		t.Setenv("DASHBOARD_LESSON_BLOCK_SIZE", "-2")

		_, err := Load()
		if err == nil {
			t.Fatalf("expected error for invalid values")
		}
		expected := "invalid environment variable values: DASHBOARD_HTTP_PORT, DASHBOARD_LESSON_BLOCK_SIZE"
		if err.Error() != expected {
			t.Fatalf("unexpected error message: %q", err.Error())
		}
	})
}
