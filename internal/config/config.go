package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	MongoDB struct {
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Database       string `yaml:"database" env:"MONGODB_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`

		Collections struct {
			Students    string `yaml:"students" env:"MONGODB_STUDENTS_COLLECTION"`
			Courses     string `yaml:"courses" env:"MONGODB_COURSES_COLLECTION"`
			Departments string `yaml:"departments" env:"MONGODB_DEPARTMENTS_COLLECTION"`
			Faculty     string `yaml:"faculty" env:"MONGODB_FACULTY_COLLECTION"`
			Admins      string `yaml:"admins" env:"MONGODB_ADMINS_COLLECTION"`
			Feedback    string `yaml:"feedback" env:"MONGODB_FEEDBACK_COLLECTION"`
		} `yaml:"collections"`
	} `yaml:"mongodb"`

	Redis struct {
		Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED"`
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Session struct {
		CookieName  string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		IdleTimeout string `yaml:"idle_timeout" env:"SESSION_IDLE_TIMEOUT"`
		Secure      bool   `yaml:"secure" env:"SESSION_COOKIE_SECURE"`
	} `yaml:"session"`

	Bootstrap struct {
		EnsureDefaultAdmin bool   `yaml:"ensure_default_admin" env:"BOOTSTRAP_ENSURE_DEFAULT_ADMIN"`
		AdminUsername      string `yaml:"admin_username" env:"BOOTSTRAP_ADMIN_USERNAME"`
		AdminPassword      string `yaml:"admin_password" env:"BOOTSTRAP_ADMIN_PASSWORD"`
		AdminEmail         string `yaml:"admin_email" env:"BOOTSTRAP_ADMIN_EMAIL"`
	} `yaml:"bootstrap"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// Environment variables win over file values; a .env file is honored when
// present.
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env is not an error
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.MongoDB.URI = "mongodb://localhost:27017"
	config.MongoDB.Database = "CollegeDB"
	config.MongoDB.ConnectTimeout = "10s"
	config.MongoDB.Collections.Students = "Students"
	config.MongoDB.Collections.Courses = "Courses"
	config.MongoDB.Collections.Departments = "Departments"
	config.MongoDB.Collections.Faculty = "Faculty"
	config.MongoDB.Collections.Admins = "Admins"
	config.MongoDB.Collections.Feedback = "Feedback"

	config.Redis.Enabled = false
	config.Redis.Addr = "localhost:6379"
	config.Redis.DB = 0

	config.Session.CookieName = "collegehub_session"
	config.Session.IdleTimeout = "45m"
	config.Session.Secure = false

	config.Bootstrap.EnsureDefaultAdmin = false
	config.Bootstrap.AdminUsername = "admin"
	config.Bootstrap.AdminEmail = "admin@collegehub.local"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.MongoDB.URI == "" {
		return fmt.Errorf("mongodb uri is required")
	}

	if config.MongoDB.Database == "" {
		return fmt.Errorf("mongodb database name is required")
	}

	if _, err := time.ParseDuration(config.MongoDB.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid mongodb connect timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Session.IdleTimeout); err != nil {
		return fmt.Errorf("invalid session idle timeout format: %w", err)
	}

	// The bootstrap admin path must be explicitly armed with a password;
	// there is no built-in default credential.
	if config.Bootstrap.EnsureDefaultAdmin && config.Bootstrap.AdminPassword == "" {
		return fmt.Errorf("bootstrap admin password is required when ensure_default_admin is set")
	}

	return nil
}

// SessionIdleTimeout returns the parsed session idle timeout.
func (c *Config) SessionIdleTimeout() time.Duration {
	d, err := time.ParseDuration(c.Session.IdleTimeout)
	if err != nil {
		return 45 * time.Minute
	}
	return d
}

// MongoConnectTimeout returns the parsed Mongo connect timeout.
func (c *Config) MongoConnectTimeout() time.Duration {
	d, err := time.ParseDuration(c.MongoDB.ConnectTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
