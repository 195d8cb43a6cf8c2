// Package config loads the household configuration from the environment.
//
// The participant list, their monthly targets and the category enumeration
// are fixed configuration, they are never persisted or changed at runtime.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrNoParticipants = errors.New("the PARTICIPANTS environment variable must be set to a comma separated list of NAME:MONTHLY_TARGET pairs")

// DefaultCategories is used when CATEGORIES is not set. The enumeration is
// advisory: historical records may carry labels outside of it.
var DefaultCategories = []string{"food", "groceries", "cafe", "transport", "leisure", "household", "other"}

type Config struct {
	Port       string
	DBPath     string
	Timezone   *time.Location
	Targets    map[string]decimal.Decimal
	Categories []string
}

var current *Config

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	targets, err := parseTargets(getEnv("PARTICIPANTS", ""))
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(getEnv("TZ_NAME", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TZ_NAME: %w", err)
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "data/gorm.db"),
		Timezone:   loc,
		Targets:    targets,
		Categories: parseCategories(getEnv("CATEGORIES", "")),
	}

	current = cfg
	return cfg, nil
}

// Get returns the configuration loaded by Load.
func Get() *Config {
	return current
}

// Users returns the configured participant names, sorted.
func (c *Config) Users() []string {
	users := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		users = append(users, name)
	}

	slices.Sort(users)
	return users
}

// parseTargets parses a "NAME:AMOUNT,NAME:AMOUNT" list.
func parseTargets(s string) (map[string]decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrNoParticipants
	}

	targets := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(s, ",") {
		name, amount, found := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid participant entry %q, expected NAME:MONTHLY_TARGET", pair)
		}

		target, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("invalid monthly target for %q: %w", name, err)
		}

		if target.IsNegative() {
			return nil, fmt.Errorf("monthly target for %q must not be negative", name)
		}

		targets[name] = target
	}

	return targets, nil
}

func parseCategories(s string) []string {
	if strings.TrimSpace(s) == "" {
		return DefaultCategories
	}

	var categories []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}

	return categories
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
