package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 是一个全局变量，用于存储所有应用程序的配置
var Cfg *Config

// Config 结构体定义了应用程序的所有配置项
// 它与 config.yaml 文件的结构完全对应
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Horoscope HoroscopeConfig `mapstructure:"horoscope"`
}

// ServerConfig 定义了服务器相关的配置
type ServerConfig struct {
	Address     string     `mapstructure:"address"`
	FrontendURL string     `mapstructure:"frontendUrl"`
	Cors        CorsConfig `mapstructure:"cors"`
}

// CorsConfig 定义了CORS相关的配置
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig 定义了数据库相关的配置
type DatabaseConfig struct {
	Sqlite SqliteConfig `mapstructure:"sqlite"`
}

// SqliteConfig 定义了SQLite数据库文件的配置
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// TelegramConfig 定义了Telegram Bot相关的配置
// BotToken 是密钥，只能通过环境变量注入，
// 绝不能写入配置文件或硬编码在源码中。
type TelegramConfig struct {
	BotToken string `mapstructure:"botToken"`
}

// HoroscopeConfig 定义了外部星座运势数据源的配置
// APIKey 为空时使用内置的本地模板池。
type HoroscopeConfig struct {
	APIKey string `mapstructure:"apiKey"`
}

// LoadConfig 函数负责查找、加载和解析配置文件
// 它会在指定的路径中查找名为 config.yaml 的文件
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. 设置配置文件名和类型
	v.SetConfigName("config") // 文件名 (不带扩展名)
	v.SetConfigType("yaml")   // 文件类型

	// 2. 添加配置文件搜索路径
	// 可以添加多个路径，Viper会按顺序查找
	v.AddConfigPath("./config") // `config/config.yaml`
	v.AddConfigPath(".")        // `./config.yaml` (如果在根目录)

	// 3. 设置环境变量支持
	// 允许通过环境变量覆盖配置，例如 SERVER_ADDRESS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. 设置默认值
	v.SetDefault("server.address", ":8000")
	v.SetDefault("database.sqlite.path", "database.db")

	// 5. 读取配置文件
	// 配置文件缺失不是致命错误，全部配置均可由环境变量提供
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// AutomaticEnv不会为配置文件中未出现的键主动绑定环境变量，
	// 密钥类配置在这里显式绑定。
	_ = v.BindEnv("telegram.botToken", "BOT_TOKEN")
	_ = v.BindEnv("horoscope.apiKey", "API_KEY_HOROSCOPE")
	_ = v.BindEnv("server.frontendUrl", "FRONTEND_URL")

	// 6. 将配置反序列化到结构体中
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 7. 将加载的配置赋值给全局变量
	Cfg = &cfg

	return Cfg, nil
}
