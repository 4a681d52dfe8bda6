package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Mongo configuration for the backing document store
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// SMTP configuration for the email channel
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// Dispatch configuration for channel fan-out behavior
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Verify configuration for the token verify-then-retry step
	Verify *VerifyConfig `json:"verify" yaml:"verify"`

	// PubSub configuration for account event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig defines connection settings for the document store
type MongoConfig struct {
	URI             string        `json:"uri" yaml:"uri"`
	Database        string        `json:"database" yaml:"database"`
	ConnectTimeout  time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	MaxPoolSize     uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
	MinPoolSize     uint64        `json:"minPoolSize" yaml:"minPoolSize"`
	MaxConnIdleTime time.Duration `json:"maxConnIdleTime" yaml:"maxConnIdleTime"`
	RetryAttempts   int           `json:"retryAttempts" yaml:"retryAttempts"`
	RetryInterval   time.Duration `json:"retryInterval" yaml:"retryInterval"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SMTPConfig defines the mail transport settings
type SMTPConfig struct {
	Host       string        `json:"host" yaml:"host"`
	Port       int           `json:"port" yaml:"port"`
	Username   string        `json:"username" yaml:"username"`
	Password   string        `json:"password" yaml:"password"`
	SenderName string        `json:"senderName" yaml:"senderName"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// DispatchConfig defines channel fan-out behavior
type DispatchConfig struct {
	// Per-call deadline for one multicast batch against the push transport
	PushTimeout time.Duration `json:"pushTimeout" yaml:"pushTimeout"`

	// Per-call deadline for the email handshake and send
	EmailTimeout time.Duration `json:"emailTimeout" yaml:"emailTimeout"`

	// Number of multicast batches in flight at once
	PushParallelism int `json:"pushParallelism" yaml:"pushParallelism"`

	// Default page size for notification listings
	ListLimit int `json:"listLimit" yaml:"listLimit"`
}

// VerifyConfig defines the verify-then-retry delays for scheduled pushes.
// The delays are tunable heuristics for the store's write-propagation lag,
// not derived from a documented consistency guarantee.
type VerifyConfig struct {
	Delay      time.Duration `json:"delay" yaml:"delay"`
	RetryDelay time.Duration `json:"retryDelay" yaml:"retryDelay"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// Defaults applied when the YAML leaves dispatch/verify sections out.
const (
	defaultPushTimeout     = 10 * time.Second
	defaultEmailTimeout    = 15 * time.Second
	defaultPushParallelism = 4
	defaultListLimit       = 10
	defaultVerifyDelay     = 5 * time.Second
	defaultVerifyRetry     = time.Second

	defaultMongoConnectTimeout = 10 * time.Second
	defaultMongoRetryAttempts  = 3
	defaultMongoRetryInterval  = 2 * time.Second
)

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
			// Example: SMTP_SENDERNAME -> smtp.senderName (not smtp.sendername)
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

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.PushTimeout <= 0 {
		cfg.Dispatch.PushTimeout = defaultPushTimeout
	}
	if cfg.Dispatch.EmailTimeout <= 0 {
		cfg.Dispatch.EmailTimeout = defaultEmailTimeout
	}
	if cfg.Dispatch.PushParallelism <= 0 {
		cfg.Dispatch.PushParallelism = defaultPushParallelism
	}
	if cfg.Dispatch.ListLimit <= 0 {
		cfg.Dispatch.ListLimit = defaultListLimit
	}

	if cfg.Verify == nil {
		cfg.Verify = &VerifyConfig{}
	}
	if cfg.Verify.Delay <= 0 {
		cfg.Verify.Delay = defaultVerifyDelay
	}
	if cfg.Verify.RetryDelay <= 0 {
		cfg.Verify.RetryDelay = defaultVerifyRetry
	}

	if cfg.Mongo != nil {
		if cfg.Mongo.ConnectTimeout <= 0 {
			cfg.Mongo.ConnectTimeout = defaultMongoConnectTimeout
		}
		if cfg.Mongo.RetryAttempts <= 0 {
			cfg.Mongo.RetryAttempts = defaultMongoRetryAttempts
		}
		if cfg.Mongo.RetryInterval <= 0 {
			cfg.Mongo.RetryInterval = defaultMongoRetryInterval
		}
	}

	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = "info"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
