package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultPath 未指定 -config 时的配置文件路径
const DefaultPath = "./config/shipzone.yaml"

// DefaultSourceURL 公开的希腊邮编数据集
const DefaultSourceURL = "https://raw.githubusercontent.com/MentatInnovations/grpostcodes/master/data/postcode_lat_long_output_file.csv"

// Config 全局配置
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Output OutputConfig `mapstructure:"output"`
	Source SourceConfig `mapstructure:"source"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Lmstfy LmstfyConfig `mapstructure:"lmstfy"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// OutputConfig 输出配置，Dir 为空时使用可执行文件所在目录
type OutputConfig struct {
	Dir       string `mapstructure:"dir"`
	RatesFile string `mapstructure:"rates_file" validate:"required"`
	ZonesFile string `mapstructure:"zones_file" validate:"required"`
}

// SourceConfig 上游邮编数据集配置
type SourceConfig struct {
	URL              string        `mapstructure:"url" validate:"required,url"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gt=0"`
	ColumnAliases    []string      `mapstructure:"column_aliases" validate:"min=1,dive,required"`
	ProgressInterval int           `mapstructure:"progress_interval" validate:"gt=0"`
}

// MySQLConfig 设置 DSN 后启用入库
type MySQLConfig struct {
	DSN       string `mapstructure:"dsn"`
	BatchSize int    `mapstructure:"batch_size" validate:"gt=0"`
}

// RedisConfig 设置 Addr 后启用广播
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel" validate:"required_with=Addr"`
}

// LmstfyConfig 设置 Host 后启用重载任务
type LmstfyConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port" validate:"required_with=Host"`
	Namespace string `mapstructure:"namespace" validate:"required_with=Host"`
	Token     string `mapstructure:"token" validate:"required_with=Host"`
	Queue     string `mapstructure:"queue" validate:"required_with=Host"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "shipzone")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("output.dir", "")
	v.SetDefault("output.rates_file", "default_shipping_rates.csv")
	v.SetDefault("output.zones_file", "postal_codes_to_zones.csv")

	v.SetDefault("source.url", DefaultSourceURL)
	v.SetDefault("source.timeout", 30*time.Second)
	v.SetDefault("source.column_aliases", []string{"POSTAL CODE", "TK", "POSTALCODE", "postal_code", "tk"})
	v.SetDefault("source.progress_interval", 1000)

	v.SetDefault("mysql.dsn", "")
	v.SetDefault("mysql.batch_size", 500)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "shipping_tables_generated")

	v.SetDefault("lmstfy.host", "")
	v.SetDefault("lmstfy.port", 7777)
	v.SetDefault("lmstfy.namespace", "")
	v.SetDefault("lmstfy.token", "")
	v.SetDefault("lmstfy.queue", "shipping_tables_reload")
}

// Load 加载配置：配置文件、SHIPZONE_* 环境变量、内置默认值，文件不存在不报错
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SHIPZONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	return &cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// OutputDir 输出目录，未配置时为可执行文件所在目录
func (c *Config) OutputDir() (string, error) {
	if c.Output.Dir != "" {
		return c.Output.Dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable path failed: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path failed: %w", err)
	}
	return filepath.Dir(exe), nil
}

// RatesPath 运费表完整路径
func (c *Config) RatesPath(dir string) string {
	return filepath.Join(dir, c.Output.RatesFile)
}

// ZonesPath 邮编分区表完整路径
func (c *Config) ZonesPath(dir string) string {
	return filepath.Join(dir, c.Output.ZonesFile)
}
