package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Shift    ShiftConfig    `mapstructure:"shift"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port      int             `mapstructure:"port"`
	BodyLimit int64           `mapstructure:"body_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RateLimitConfig 扫码接口限流（依赖 Redis，未启用 Redis 时放行）
type RateLimitConfig struct {
	Limit         int `mapstructure:"limit"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// 存储驱动
const (
	StorageJSON     = "json"
	StoragePostgres = "postgres"
)

// StorageConfig 花名册与角色分配的存储配置
type StorageConfig struct {
	Driver         string `mapstructure:"driver"`
	RosterFile     string `mapstructure:"roster_file"`
	AssignmentFile string `mapstructure:"assignment_file"`
}

// DatabaseConfig PostgreSQL 数据库配置（仅 storage.driver=postgres 时使用）
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN 生成 PostgreSQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PA 标记模式
const (
	PAFlagAny   = "any"
	PAFlagFirst = "first"
)

// ShiftConfig 班次业务开关
type ShiftConfig struct {
	// PAFlagMode any: 只要有 PA 在岗即为 true；first: 只跟踪第一个到岗的 PA
	PAFlagMode string `mapstructure:"pa_flag_mode"`
	// StrictRoles 为 true 时拒绝角色表以外的角色名
	StrictRoles bool `mapstructure:"strict_roles"`
	// EnforceHeadcountCap 为 true 时分配人数超过目标人数直接拒绝
	EnforceHeadcountCap bool `mapstructure:"enforce_headcount_cap"`
	VolumePerAssociate  int  `mapstructure:"volume_per_associate"`
	TransPerAssociate   int  `mapstructure:"trans_per_associate"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.body_limit", 8<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.rate_limit.limit", 30)
	v.SetDefault("server.rate_limit.window_seconds", 10)

	v.SetDefault("storage.driver", StorageJSON)
	v.SetDefault("storage.roster_file", "names.json")
	v.SetDefault("storage.assignment_file", "assigned_roles.json")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "shift_checkin")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("shift.pa_flag_mode", PAFlagAny)
	v.SetDefault("shift.strict_roles", true)
	v.SetDefault("shift.enforce_headcount_cap", false)
	v.SetDefault("shift.volume_per_associate", 550)
	v.SetDefault("shift.trans_per_associate", 1000)

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("CHECKIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	switch c.Storage.Driver {
	case StorageJSON:
		if c.Storage.RosterFile == "" || c.Storage.AssignmentFile == "" {
			return fmt.Errorf("配置校验失败: storage.roster_file 与 storage.assignment_file 不能为空")
		}
	case StoragePostgres:
	default:
		return fmt.Errorf("配置校验失败: 未知的 storage.driver %q", c.Storage.Driver)
	}
	if c.Shift.PAFlagMode != PAFlagAny && c.Shift.PAFlagMode != PAFlagFirst {
		return fmt.Errorf("配置校验失败: shift.pa_flag_mode 只能是 any 或 first")
	}
	if c.Shift.VolumePerAssociate <= 0 || c.Shift.TransPerAssociate <= 0 {
		return fmt.Errorf("配置校验失败: shift.volume_per_associate 与 shift.trans_per_associate 必须大于 0")
	}
	return nil
}
