package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultBcryptCost          = 12
	defaultAccessTTL           = 15 * time.Minute
	defaultRefreshTTL          = 7 * 24 * time.Hour
	defaultResetTTL            = 10 * time.Minute
	defaultCodeTTL             = 15 * time.Minute
	defaultUnverifiedRetention = 24 * time.Hour
	defaultSweepSchedule       = "@every 1h"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// TrustedProxies lists the CIDRs allowed to report the client address in
		// X-Forwarded-For. Empty means the TCP peer is the client.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrate applies embedded schema migrations on start.
	Migrate bool `json:"migrate" yaml:"migrate"`

	SecretKey struct {
		Signing string `json:"signing" yaml:"signing"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordPolicy *PasswordPolicyConfig `json:"passwordPolicy" yaml:"passwordPolicy"`

	// Revocation selects where logged-out tokens are remembered.
	Revocation *RevocationConfig `json:"revocation" yaml:"revocation"`

	// Mail configures outbound delivery of confirmation codes.
	Mail *MailConfig `json:"mail" yaml:"mail"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost          int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTTL           time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL          time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	ResetTTL            time.Duration `json:"resetTTL" yaml:"resetTTL"`
	CodeTTL             time.Duration `json:"codeTTL" yaml:"codeTTL"`
	UnverifiedRetention time.Duration `json:"unverifiedRetention" yaml:"unverifiedRetention"`
	SweepSchedule       string        `json:"sweepSchedule" yaml:"sweepSchedule"`
	Admin               AdminConfig   `json:"admin" yaml:"admin"`
}

// AdminConfig is the administrator account seeded on start. Empty email disables seeding.
type AdminConfig struct {
	Email     string `json:"email" yaml:"email"`
	Password  string `json:"password" yaml:"password"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
}

// PasswordPolicyConfig defines password strength requirements
type PasswordPolicyConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
}

// RevocationConfig selects the revocation registry backend.
type RevocationConfig struct {
	// Backend is "memory" for a process-local map or "redis" for a shared store.
	Backend string `json:"backend" yaml:"backend"`

	// PurgeInterval is how often the memory backend drops lapsed entries.
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`

	Redis RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// MailConfig configures the email dispatcher. An empty host logs messages instead of sending them.
type MailConfig struct {
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"password" yaml:"password"`
	From      string `json:"from" yaml:"from"`
	TLSPolicy string `json:"tlsPolicy" yaml:"tlsPolicy"`
}

// RateLimitConfig throttles login attempts per client IP.
type RateLimitConfig struct {
	LoginRequestsPerSecond int `json:"loginRequestsPerSecond" yaml:"loginRequestsPerSecond"`
	LoginBurst             int `json:"loginBurst" yaml:"loginBurst"`
	MaxClients             int `json:"maxClients" yaml:"maxClients"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.SecretKey.Signing) == "" {
		return nil, errors.New("secretKey.signing must be provided")
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see a nil section.
func (cfg *Config) applyDefaults() {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTTL == 0 {
		cfg.Auth.AccessTTL = defaultAccessTTL
	}
	if cfg.Auth.RefreshTTL == 0 {
		cfg.Auth.RefreshTTL = defaultRefreshTTL
	}
	if cfg.Auth.ResetTTL == 0 {
		cfg.Auth.ResetTTL = defaultResetTTL
	}
	if cfg.Auth.CodeTTL == 0 {
		cfg.Auth.CodeTTL = defaultCodeTTL
	}
	if cfg.Auth.UnverifiedRetention == 0 {
		cfg.Auth.UnverifiedRetention = defaultUnverifiedRetention
	}
	if cfg.Auth.SweepSchedule == "" {
		cfg.Auth.SweepSchedule = defaultSweepSchedule
	}

	if cfg.PasswordPolicy == nil {
		cfg.PasswordPolicy = &PasswordPolicyConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		}
	}

	if cfg.Revocation == nil {
		cfg.Revocation = &RevocationConfig{}
	}
	if cfg.Revocation.Backend == "" {
		cfg.Revocation.Backend = "memory"
	}
	if cfg.Revocation.PurgeInterval == 0 {
		cfg.Revocation.PurgeInterval = time.Minute
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.LoginRequestsPerSecond == 0 {
		cfg.RateLimit.LoginRequestsPerSecond = 1
	}
	if cfg.RateLimit.LoginBurst == 0 {
		cfg.RateLimit.LoginBurst = 5
	}
	if cfg.RateLimit.MaxClients == 0 {
		cfg.RateLimit.MaxClients = 10000
	}
}

// canonicalizeEnvKey maps AUTH_ACCESSTTL onto the key already loaded from
// YAML (auth.accessTTL). Segments with no loaded counterpart stay lowercase.
func canonicalizeEnvKey(rawKey string, loaded map[string]any) string {
	path := make([]string, 0, strings.Count(rawKey, "_")+1)
	level := loaded

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey finds segment among the keys of level ignoring case and punctuation.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	want := foldKey(segment)
	for key, value := range level {
		if foldKey(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
