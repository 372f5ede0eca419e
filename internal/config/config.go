package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	NATSURL string

	IdempTTLSecs int

	// Escalation sweep: how often the in-process ticker runs and how long
	// a step may sit PENDING before it is flagged.
	SweepInterval       time.Duration
	EscalationThreshold time.Duration

	// Extra banking holidays (YYYY-MM-DD, comma separated) on top of the
	// built-in Canadian table.
	ExtraHolidays []string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "payables"),
		MySQLUser: getenv("MYSQL_USER", "payables"),
		MySQLPass: getenv("MYSQL_PASS", "payables"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		NATSURL:   getenv("NATS_URL", ""),

		IdempTTLSecs:        300,
		SweepInterval:       time.Hour,
		EscalationThreshold: 24 * time.Hour,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SweepInterval = d
		}
	}
	if v := os.Getenv("ESCALATION_THRESHOLD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.EscalationThreshold = d
		}
	}
	if v := os.Getenv("BANKING_HOLIDAYS"); v != "" {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.ExtraHolidays = append(c.ExtraHolidays, s)
			}
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	for _, h := range c.ExtraHolidays {
		if _, err := time.Parse("2006-01-02", h); err != nil {
			return fmt.Errorf("invalid BANKING_HOLIDAYS entry %q: %w", h, err)
		}
	}
	if c.EscalationThreshold <= 0 {
		return errors.New("ESCALATION_THRESHOLD must be positive")
	}
	return nil
}

// ExtraHolidayDates parses the configured extra holidays. Call Validate
// first; bad entries are skipped here.
func (c *Config) ExtraHolidayDates() []time.Time {
	out := make([]time.Time, 0, len(c.ExtraHolidays))
	for _, h := range c.ExtraHolidays {
		if t, err := time.Parse("2006-01-02", h); err == nil {
			out = append(out, t.UTC())
		}
	}
	return out
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
