package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Auth        AuthConfig       `mapstructure:"auth"`
	Categories  CategoriesConfig `mapstructure:"categories"`
	Pagination  PaginationConfig `mapstructure:"pagination"`
	Chart       ChartConfig      `mapstructure:"chart"`
	Sheets      SheetsConfig     `mapstructure:"sheets"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // file path for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
	SQL   bool   `mapstructure:"sql"`
}

// AuthConfig contains token and password hashing settings
type AuthConfig struct {
	JWTSecret    string        `mapstructure:"jwtSecret"`
	TokenTTL     time.Duration `mapstructure:"tokenTTL"` // minutes
	CookieName   string        `mapstructure:"cookieName"`
	CookieSecure bool          `mapstructure:"cookieSecure"`
	BcryptCost   int           `mapstructure:"bcryptCost"`
}

// CategoriesConfig contains category settings
type CategoriesConfig struct {
	DefaultName string `mapstructure:"defaultName"`
}

// PaginationConfig contains list paging settings
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"defaultPageSize"`
	MaxPageSize     int `mapstructure:"maxPageSize"`
}

// ChartConfig contains the chart worker RPC settings
type ChartConfig struct {
	AmqpURL  string        `mapstructure:"amqpURL"`
	Queue    string        `mapstructure:"queue"`
	Timeout  time.Duration `mapstructure:"timeout"` // seconds
	Prefetch int           `mapstructure:"prefetch"`
	Width    int           `mapstructure:"width"`
	Height   int           `mapstructure:"height"`
}

// SheetsConfig contains the optional Google Sheets export settings
type SheetsConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	SpreadsheetID   string `mapstructure:"spreadsheetId"`
	CredentialsFile string `mapstructure:"credentialsFile"`
}
