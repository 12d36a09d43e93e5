package types

// ConfigManager defines the interface for configuration management
type ConfigManager interface {
	GetServerConfig() ServerConfig
	GetAuthConfig() AuthConfig
	GetDatabaseConfig() DatabaseConfig
	GetRedisDSN() string
	GetCORSConfig() CORSConfig
	GetLogConfig() LogConfig
	GetPerformanceConfig() PerformanceConfig
	GetCacheConfig() CacheConfig
	IsProduction() bool
	Validate() error
	DisplayServerConfig()
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host                    string `json:"host"`
	Port                    int    `json:"port"`
	ReadTimeout             int    `json:"read_timeout"`
	WriteTimeout            int    `json:"write_timeout"`
	IdleTimeout             int    `json:"idle_timeout"`
	GracefulShutdownTimeout int    `json:"graceful_shutdown_timeout"`
}

// AuthConfig represents admin authentication configuration
type AuthConfig struct {
	// JWTSecret signs admin session tokens.
	JWTSecret string `json:"-"`
	// SessionTTLHours is the validity window of a session token.
	SessionTTLHours int `json:"session_ttl_hours"`
	// AdminUsername and AdminPassword seed the first admin user on an
	// empty database. They are never used for login after that.
	AdminUsername string `json:"admin_username"`
	AdminPassword string `json:"-"`
	// CookieSecure marks the session cookie Secure (enabled in production).
	CookieSecure bool `json:"cookie_secure"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	DSN string `json:"dsn"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	EnableFile bool   `json:"enable_file"`
	FilePath   string `json:"file_path"`
}

// PerformanceConfig represents performance configuration
type PerformanceConfig struct {
	MaxConcurrentRequests int `json:"max_concurrent_requests"`
}

// CacheConfig represents public read cache configuration
type CacheConfig struct {
	// TTLHours is the staleness window for cached public reads. Writes
	// invalidate eagerly; the TTL is a backstop.
	TTLHours int `json:"ttl_hours"`
}
