package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/school-dashboard/internal/domain"
)

// Config captures environment driven configuration values for the dashboard
// service.
type Config struct {
	HTTPPort          int
	SQLiteDSN         string
	LessonBlockSize   int
	LessonBlockAmount float64
	MonthlyFee        float64
}

// Load parses configuration values from the current process environment.
//
// Every field has a sensible default, so an empty environment yields a
// working configuration; values that are present but unparseable are
// reported together.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:          8080,
		SQLiteDSN:         "file:dashboard.db?_pragma=busy_timeout(5000)",
		LessonBlockSize:   domain.DefaultPaymentPeriod,
		LessonBlockAmount: 5000,
		MonthlyFee:        8000,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("DASHBOARD_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "DASHBOARD_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("DASHBOARD_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if sizeValue := strings.TrimSpace(os.Getenv("DASHBOARD_LESSON_BLOCK_SIZE")); sizeValue != "" {
		size, err := strconv.Atoi(sizeValue)
		if err != nil || size <= 0 {
			invalid = append(invalid, "DASHBOARD_LESSON_BLOCK_SIZE")
		} else {
			cfg.LessonBlockSize = size
		}
	}

	if amountValue := strings.TrimSpace(os.Getenv("DASHBOARD_LESSON_BLOCK_AMOUNT")); amountValue != "" {
		amount, err := strconv.ParseFloat(amountValue, 64)
		if err != nil || amount < 0 {
			invalid = append(invalid, "DASHBOARD_LESSON_BLOCK_AMOUNT")
		} else {
			cfg.LessonBlockAmount = amount
		}
	}

	if feeValue := strings.TrimSpace(os.Getenv("DASHBOARD_MONTHLY_FEE")); feeValue != "" {
		fee, err := strconv.ParseFloat(feeValue, 64)
		if err != nil || fee < 0 {
			invalid = append(invalid, "DASHBOARD_MONTHLY_FEE")
		} else {
			cfg.MonthlyFee = fee
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
