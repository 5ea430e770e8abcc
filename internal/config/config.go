package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr      = ":8000"
	defaultStorageDir      = "./storage"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultUploadMemoryMB  = 32
	defaultShutdownTimeout = 15
)

type Config struct {
	ListenAddr         string `yaml:"listen_addr" json:"listen_addr"`
	StorageDir         string `yaml:"storage_dir" json:"storage_dir"`
	LogLevel           string `yaml:"log_level" json:"log_level"`
	LogFormat          string `yaml:"log_format" json:"log_format"`
	MaxUploadMemoryMB  int    `yaml:"max_upload_memory_mb" json:"max_upload_memory_mb"`
	ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec" json:"shutdown_timeout_sec"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	return &Config{
		ListenAddr:         defaultListenAddr,
		StorageDir:         defaultStorageDir,
		LogLevel:           defaultLogLevel,
		LogFormat:          defaultLogFormat,
		MaxUploadMemoryMB:  defaultUploadMemoryMB,
		ShutdownTimeoutSec: defaultShutdownTimeout,
	}
}

// Load читает .env и YAML-конфигурацию, применяет ENV-переопределения и валидирует результат.
// Отсутствие файла конфигурации не ошибка: остаются значения по умолчанию.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return LoadFile(getenv("CONFIG_PATH", "./config.yaml"))
}

// LoadFile читает конфигурацию из указанного пути без обработки .env.
func LoadFile(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	// ENV override
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("STORAGE_DIR"); v != "" {
		c.StorageDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	c.MaxUploadMemoryMB = envInt("MAX_UPLOAD_MEMORY_MB", c.MaxUploadMemoryMB)
	c.ShutdownTimeoutSec = envInt("SHUTDOWN_TIMEOUT_SEC", c.ShutdownTimeoutSec)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate проверяет обязательные поля.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return fmt.Errorf("listen_addr is empty")
	}
	if strings.TrimSpace(c.StorageDir) == "" {
		return fmt.Errorf("storage_dir is empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text, got %q", c.LogFormat)
	}
	if c.MaxUploadMemoryMB <= 0 {
		return fmt.Errorf("max_upload_memory_mb must be > 0")
	}

	return nil
}

// UploadMemoryBytes — лимит памяти для разбора multipart-формы.
func (c *Config) UploadMemoryBytes() int64 {
	return int64(c.MaxUploadMemoryMB) << 20
}

func (c *Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSec <= 0 {
		return defaultShutdownTimeout * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}

// envInt возвращает целочисленное значение из переменной окружения либо дефолт.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
