package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
)

type Config struct {
	Addr              string
	SessionKey        []byte
	SessionSecure     bool
	CSRFKey           []byte
	LoginDelay        time.Duration
	RegisterDelay     time.Duration
	CountdownInterval time.Duration
	PastEventsLimit   int
	RequestTimeout    time.Duration
	Location          *time.Location
	AllowedOrigins    []string
	OpenRoutes        bool
	// FixturesAsOf pins the day fixture dates are shifted to. Zero means
	// the day the server starts.
	FixturesAsOf time.Time
}

// Load reads the process environment. Every bad value is reported at once.
func Load() (Config, error) {
	var errs []string

	cfg := Config{
		Addr:              getEnv("ADDR", ":8080"),
		SessionSecure:     getEnvBool("SESSION_SECURE", false, &errs),
		LoginDelay:        getEnvDuration("LOGIN_DELAY", time.Second, &errs),
		RegisterDelay:     getEnvDuration("REGISTER_DELAY", 1500*time.Millisecond, &errs),
		CountdownInterval: getEnvDuration("COUNTDOWN_INTERVAL", time.Minute, &errs),
		PastEventsLimit:   getEnvInt("PAST_EVENTS_LIMIT", 7, &errs),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 10*time.Second, &errs),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "*")),
		OpenRoutes:        getEnvBool("OPEN_ROUTES", false, &errs),
	}

	cfg.SessionKey = getEnvKey("SESSION_KEY", &errs)
	if cfg.SessionKey == nil {
		// sessions die with the process, which is fine for a demo
		cfg.SessionKey = securecookie.GenerateRandomKey(32)
	}
	cfg.CSRFKey = getEnvKey("CSRF_KEY", &errs)
	if cfg.CSRFKey == nil {
		cfg.CSRFKey = securecookie.GenerateRandomKey(32)
	}

	loc, err := loadLocation(getEnv("TIMEZONE", "Asia/Karachi"))
	if err != nil {
		errs = append(errs, err.Error())
	}
	cfg.Location = loc
	cfg.FixturesAsOf = getEnvDate("FIXTURES_AS_OF", loc, &errs)

	if cfg.PastEventsLimit < 0 {
		errs = append(errs, fmt.Sprintf("PAST_EVENTS_LIMIT must not be negative, got %d", cfg.PastEventsLimit))
	}
	if cfg.CountdownInterval <= 0 {
		errs = append(errs, "COUNTDOWN_INTERVAL must be positive")
	}

	if len(errs) > 0 {
		return cfg, errors.New("config: " + strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]string) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got %q", key, raw))
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool, errs *[]string) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected boolean, got %q", key, raw))
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration, got %q", key, raw))
		return defaultValue
	}
	return d
}

func getEnvDate(key string, loc *time.Location, errs *[]string) time.Time {
	raw := getEnv(key, "")
	if raw == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected yyyy-mm-dd, got %q", key, raw))
		return time.Time{}
	}
	return t
}

// getEnvKey accepts a hex string or raw text of at least 32 bytes.
func getEnvKey(key string, errs *[]string) []byte {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	if b, err := hex.DecodeString(raw); err == nil && len(b) >= 32 {
		return b
	}
	if len(raw) < 32 {
		*errs = append(*errs, fmt.Sprintf("%s must be at least 32 bytes", key))
		return nil
	}
	return []byte(raw)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if name == "Asia/Karachi" {
		// hosts without tzdata
		return time.FixedZone("PKT", 5*60*60), nil
	}
	return time.UTC, fmt.Errorf("invalid value for TIMEZONE: %v", err)
}
