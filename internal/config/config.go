package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"
	"github.com/yossyi0323/App/internal/utils"
)

type Config struct {
	AppName            string
	AppPort            string
	AppUrl             string
	DBUrl              string
	BusinessLocation   *time.Location
	RegularClosingDays []time.Weekday

	LDFlag_CORSHighSecurity       bool
	LDFlag_SeedDbWithTestData     bool
	LDFlag_NightlyPrepareEnabled  bool
	LDFlag_SkipClosedBusinessDays bool
}

const (
	LDConnectionTimeout     = 5 * time.Second
	DefaultAppUrl           = "http://localhost:3000"
	DefaultBusinessTimezone = "Asia/Tokyo"
)

// Overridable with -ldflags "-X".
var (
	AppName             = "operations-prepare"
	LDServerContextKey  = "operations-prepare-server"
	LDServerContextKind = "service"
)

const (
	flagCORSHighSecurity       = "cors_high_security"
	flagSeedDbWithTestData     = "seed_db_with_test_data"
	flagNightlyPrepareEnabled  = "nightly_prepare_enabled"
	flagSkipClosedBusinessDays = "skip_closed_business_days"
)

// flagSource resolves boolean feature flags.
type flagSource interface {
	BoolVariation(key string, defaultVal bool) (bool, error)
	Close() error
}

type ldFlagSource struct {
	client *ld.LDClient
	ctx    ldcontext.Context
}

func (s *ldFlagSource) BoolVariation(key string, defaultVal bool) (bool, error) {
	return s.client.BoolVariation(key, s.ctx, defaultVal)
}

func (s *ldFlagSource) Close() error { return s.client.Close() }

// envFlagSource reads FLAG_<KEY> when no LaunchDarkly key is configured.
type envFlagSource struct {
	getenv func(string) string
}

func (s envFlagSource) BoolVariation(key string, defaultVal bool) (bool, error) {
	name := "FLAG_" + strings.ToUpper(key)
	raw := s.getenv(name)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultVal, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func (envFlagSource) Close() error { return nil }

// LoadConfig reads the process environment and exits on any problem.
func LoadConfig() *Config {
	if AppName == "" {
		utils.Logger.Fatal("AppName ldflag missing")
	}
	utils.Logger.Info("Loading config for app: ", AppName)

	cfg, err := Load(os.Getenv)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load config")
	}
	return cfg
}

// Load builds a Config from getenv.
func Load(getenv func(string) string) (*Config, error) {
	appPort := getenv("APP_PORT")
	if appPort == "" {
		return nil, fmt.Errorf("APP_PORT env var is missing")
	}
	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL env var is missing")
	}
	appUrl := getenv("APP_URL_FROM_ANYWHERE")
	if appUrl == "" {
		appUrl = DefaultAppUrl
	}

	tz := getenv("BUSINESS_TIMEZONE")
	if tz == "" {
		tz = DefaultBusinessTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("BUSINESS_TIMEZONE %q: %w", tz, err)
	}

	closingDays, err := ParseWeekdays(getenv("REGULAR_CLOSING_DAYS"))
	if err != nil {
		return nil, fmt.Errorf("REGULAR_CLOSING_DAYS: %w", err)
	}

	flags, err := newFlagSource(getenv)
	if err != nil {
		return nil, err
	}
	defer flags.Close()

	cfg := &Config{
		AppName:            AppName,
		AppPort:            appPort,
		AppUrl:             appUrl,
		DBUrl:              dbURL,
		BusinessLocation:   loc,
		RegularClosingDays: closingDays,
	}

	for _, f := range []struct {
		key string
		def bool
		dst *bool
	}{
		{flagCORSHighSecurity, false, &cfg.LDFlag_CORSHighSecurity},
		{flagSeedDbWithTestData, false, &cfg.LDFlag_SeedDbWithTestData},
		{flagNightlyPrepareEnabled, true, &cfg.LDFlag_NightlyPrepareEnabled},
		{flagSkipClosedBusinessDays, false, &cfg.LDFlag_SkipClosedBusinessDays},
	} {
		v, err := flags.BoolVariation(f.key, f.def)
		if err != nil {
			return nil, fmt.Errorf("error retrieving %s flag: %w", f.key, err)
		}
		utils.Logger.Debugf("%s flag: %t", f.key, v)
		*f.dst = v
	}

	return cfg, nil
}

func newFlagSource(getenv func(string) string) (flagSource, error) {
	sdkKey := getenv("LD_SDK_KEY")
	if sdkKey == "" {
		utils.Logger.Info("LD_SDK_KEY not set; reading feature flags from FLAG_* env vars")
		return envFlagSource{getenv: getenv}, nil
	}
	client, err := ld.MakeClient(sdkKey, LDConnectionTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create LaunchDarkly client: %w", err)
	}
	ctx := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)
	return &ldFlagSource{client: client, ctx: ctx}, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWeekdays accepts a comma-separated list such as "wed" or "Sun,Mon".
// Full names work too; only the first three letters are read.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if len(part) > 3 {
			part = part[:3]
		}
		d, ok := weekdayNames[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		out = append(out, d)
	}
	return out, nil
}
