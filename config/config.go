package config

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/QuangTung97/loyalty/model"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the root configuration of every command
type Config struct {
	Env          string             `mapstructure:"env"`
	Server       ServerConfig       `mapstructure:"server"`
	Log          LogConfig          `mapstructure:"log"`
	MySQL        MySQLConfig        `mapstructure:"mysql"`
	Memcache     MemcacheConfig     `mapstructure:"memcache"`
	Jaeger       JaegerConfig       `mapstructure:"jaeger"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Notification NotificationConfig `mapstructure:"notification"`
	Loyalty      LoyaltyConfig      `mapstructure:"loyalty"`
	Cache        CacheConfig        `mapstructure:"cache"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP Listen `mapstructure:"http"`
}

// Listen ...
type Listen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenString for net.Listen
func (l Listen) ListenString() string {
	return fmt.Sprintf(":%d", l.Port)
}

// String ...
func (l Listen) String() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	URL         string  `mapstructure:"url"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// CacheConfig sizes of the local caches
type CacheConfig struct {
	IdentitySizeMB int  `mapstructure:"identity_size_mb"`
	IdentityTTL    int  `mapstructure:"identity_ttl_seconds"`
	RemoteEnabled  bool `mapstructure:"remote_enabled"`
}

// LoyaltyConfig contains settings of the points program
type LoyaltyConfig struct {
	PointsDaysActive      int      `mapstructure:"points_days_active"`
	AllTimeActive         bool     `mapstructure:"all_time_active"`
	DeliverySKUs          []string `mapstructure:"delivery_skus"`
	LevelExcludedSKUs     []string `mapstructure:"level_excluded_skus"`
	LevelExcludedLabels   []string `mapstructure:"level_excluded_labels"`
	SpendingStatuses      []string `mapstructure:"spending_statuses"`
	ExpireIntervalSeconds int      `mapstructure:"expire_interval_seconds"`
}

// PointsRounding number of decimal places of every points amount
const PointsRounding int32 = 2

// RoundPoints rounds half away from zero
func RoundPoints(d decimal.Decimal) decimal.Decimal {
	return d.Round(PointsRounding)
}

func loadConfigFile(v *viper.Viper, filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}
	v.SetConfigType("yml")
	err = v.ReadConfig(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("loyalty")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) Config {
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory, .env values override it
func Load() Config {
	_ = godotenv.Load()

	v := newViper()
	loadConfigFile(v, "config.yml")
	return unmarshal(v)
}

// LoadTestConfig reads config.test.yml under rootDir
func LoadTestConfig(rootDir string) Config {
	_ = godotenv.Load(path.Join(rootDir, ".env.test"))

	v := newViper()
	loadConfigFile(v, path.Join(rootDir, "config.test.yml"))
	return unmarshal(v)
}

// ExcludedLabels parses the "key:value" entries of level_excluded_labels
func (c LoyaltyConfig) ExcludedLabels() model.Labels {
	result := make(model.Labels, 0, len(c.LevelExcludedLabels))
	for _, entry := range c.LevelExcludedLabels {
		key, value, _ := strings.Cut(entry, ":")
		result = append(result, model.Label{Key: key, Value: value})
	}
	return result
}
