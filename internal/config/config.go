package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/nashbilliard/billsplit/internal/allocation"
	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/i18n"
	"github.com/nashbilliard/billsplit/internal/timeclock"
)

// EnvPrefix prefixes every environment override, e.g. BILLSPLIT_DB_URL
const EnvPrefix = "BILLSPLIT_"

// DefaultPath is read when BILLSPLIT_CONFIG is not set
const DefaultPath = "billsplit.yaml"

// Config holds all application configuration
type Config struct {
	Port       string        `koanf:"port"`
	Database   Database      `koanf:"db"`
	Log        Log           `koanf:"log"`
	Allocation Allocation    `koanf:"allocation"`
	Display    Display       `koanf:"display"`
	Roster     []string      `koanf:"roster"`
	Catalog    []CatalogItem `koanf:"catalog"`
}

type Database struct {
	URL string `koanf:"url"`
}

type Log struct {
	Level string `koanf:"level"`
}

type Allocation struct {
	Policy    string `koanf:"policy"`
	Overnight string `koanf:"overnight"`
}

type Display struct {
	Locale   string `koanf:"locale"`
	DarkMode bool   `koanf:"darkmode"`
}

// CatalogItem is a consumable offered on a fresh bill. Cost is in thousands.
type CatalogItem struct {
	Name string  `koanf:"name"`
	Cost float64 `koanf:"cost"`
}

// DefaultRoster is the group that plays together
var DefaultRoster = []string{"Nam", "Chung", "Huy", "Tinh", "Hieu", "Tuan"}

// DefaultCatalog lists what the venue sells. Prices are typed in per session.
var DefaultCatalog = []CatalogItem{
	{Name: "Coke"},
	{Name: "Bread"},
	{Name: "Water"},
	{Name: "Noodle"},
}

func defaults() Config {
	return Config{
		Port:     getEnv("PORT", "8080"),
		Database: Database{URL: getEnv("DATABASE_URL", "data/billsplit.db")},
		Log:      Log{Level: getEnv("LOG_LEVEL", "info")},
		Allocation: Allocation{
			Policy:    string(allocation.PolicyOwned),
			Overnight: string(timeclock.OvernightWrap),
		},
		Display: Display{Locale: "en"},
		Roster:  DefaultRoster,
	}
}

// Path returns the YAML config location from BILLSPLIT_CONFIG
func Path() string {
	return getEnv(EnvPrefix+"CONFIG", DefaultPath)
}

// Load layers built-in defaults, the optional YAML file at path, and
// BILLSPLIT_* environment variables, in that order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
			slog.Debug("Config file not found, using defaults and environment", "path", path)
		} else {
			slog.Debug("Loaded config file", "path", path)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// transformEnv maps BILLSPLIT_DB_URL to db.url and splits the
// comma-separated roster.
func transformEnv(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "config" {
		return "", nil
	}
	key = strings.ReplaceAll(key, "_", ".")
	if key == "roster" {
		var names []string
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		return key, names
	}
	return key, value
}

// Validate checks the values that have a fixed vocabulary
func (c *Config) Validate() error {
	if _, err := allocation.NewPolicyFactory().CreateFromString(c.Allocation.Policy); err != nil {
		return fmt.Errorf("invalid allocation.policy: %w", err)
	}
	if _, err := timeclock.ParseOvernightPolicy(c.Allocation.Overnight); err != nil {
		return fmt.Errorf("invalid allocation.overnight: %w", err)
	}
	if _, err := i18n.ParseTag(c.Display.Locale); err != nil {
		return fmt.Errorf("invalid display.locale: %w", err)
	}
	if len(c.Roster) == 0 {
		return errors.New("roster must name at least one player")
	}
	return nil
}

// PolicyType returns the configured default allocation policy
func (c *Config) PolicyType() allocation.PolicyType {
	policy, err := allocation.NewPolicyFactory().CreateFromString(c.Allocation.Policy)
	if err != nil {
		return allocation.PolicyOwned
	}
	return policy.Type()
}

// OvernightPolicy returns the configured handling of end times before start times
func (c *Config) OvernightPolicy() timeclock.OvernightPolicy {
	policy, err := timeclock.ParseOvernightPolicy(c.Allocation.Overnight)
	if err != nil {
		return timeclock.OvernightWrap
	}
	return policy
}

// Locale returns the default display language
func (c *Config) Locale() language.Tag {
	tag, err := i18n.ParseTag(c.Display.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// CatalogEntries converts the configured catalog for new bills.
// Negative costs become 0.
func (c *Config) CatalogEntries() []bill.CatalogEntry {
	entries := make([]bill.CatalogEntry, 0, len(c.Catalog))
	for _, item := range c.Catalog {
		cost := decimal.NewFromFloat(item.Cost)
		if cost.IsNegative() {
			cost = decimal.Zero
		}
		entries = append(entries, bill.CatalogEntry{Name: item.Name, CostPerUnit: cost})
	}
	return entries
}

// BillOptions builds the bill service options from the config
func (c *Config) BillOptions() bill.Options {
	return bill.Options{
		DefaultPolicy: c.PolicyType(),
		Overnight:     c.OvernightPolicy(),
		Roster:        c.Roster,
		Catalog:       c.CatalogEntries(),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
