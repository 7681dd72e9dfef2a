package config

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	APIBaseUrl               string `mapstructure:"api_base_url"                validate:"required"`
	APITimeout               int    `mapstructure:"api_timeout"`
	APIRetryMaxAttempts      uint   `mapstructure:"api_retry_max_attempts"`
	APIRetryMinBackoff       int    `mapstructure:"api_retry_min_backoff"`
	APIRetryMaxBackoff       int    `mapstructure:"api_retry_max_backoff"`
	APIIntervalCB            uint32 `mapstructure:"api_interval_cb"`
	APIConsecutiveFailuresCB uint32 `mapstructure:"api_consecutive_failures_cb"`

	// When true the services never attempt the remote store and operate
	// entirely on the bundled sample dataset.
	UseSampleData bool `mapstructure:"use_sample_data"`

	PageSize           int    `mapstructure:"page_size"`
	NotesSaveDelayMs   int    `mapstructure:"notes_save_delay_ms"`
	RefreshIntervalSec int    `mapstructure:"refresh_interval_sec"`
	DailyStatsDays     int    `mapstructure:"daily_stats_days"`
	SymptomStatsLimit  int    `mapstructure:"symptom_stats_limit"`
	ExportDir          string `mapstructure:"export_dir"`

	PoolSize int `mapstructure:"pool_size"`

	LogLevel    string `mapstructure:"log_level"`
	LogFilePath string `mapstructure:"log_file_path"`

	PrometheusPort    string `mapstructure:"prometheus_port"`
	PrometheusTimeout int    `mapstructure:"prometheus_timeout"`
}

var Conf Config

func init() {
	err := loadEnvConfig(&Conf)
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.String("error", err.Error()))
	}
}

func loadEnvConfig(cfg *Config) error {
	viper.AutomaticEnv()
	viper.AllowEmptyEnv(true)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setupDefaults()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError

		ok := errors.As(err, &configFileNotFoundError)
		if !ok {
			return err
		}
	}

	err = viper.Unmarshal(cfg)
	if err != nil {
		return err
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return err
	}

	return nil
}

func setupDefaults() {
	confType := reflect.TypeOf(Conf)
	for i := range confType.NumField() {
		field := confType.Field(i)
		viper.SetDefault(field.Tag.Get("mapstructure"), "")
	}

	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("API_TIMEOUT", "30")
	viper.SetDefault("API_RETRY_MAX_ATTEMPTS", "3")
	viper.SetDefault("API_RETRY_MIN_BACKOFF", "1")
	viper.SetDefault("API_RETRY_MAX_BACKOFF", "10")
	viper.SetDefault("API_INTERVAL_CB", "30")
	viper.SetDefault("API_CONSECUTIVE_FAILURES_CB", "3")
	viper.SetDefault("USE_SAMPLE_DATA", "false")
	viper.SetDefault("PAGE_SIZE", "10")
	viper.SetDefault("NOTES_SAVE_DELAY_MS", "1000")
	viper.SetDefault("REFRESH_INTERVAL_SEC", "30")
	viper.SetDefault("DAILY_STATS_DAYS", "7")
	viper.SetDefault("SYMPTOM_STATS_LIMIT", "10")
	viper.SetDefault("EXPORT_DIR", ".")
	viper.SetDefault("POOL_SIZE", "4")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FILE_PATH", "./access.log")
	viper.SetDefault("PROMETHEUS_PORT", "2112")
	viper.SetDefault("PROMETHEUS_TIMEOUT", "60")
}
