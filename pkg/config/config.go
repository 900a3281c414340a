package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente y del stub server
// (lectura vía Viper desde env y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Stub    StubConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuración del gateway HTTP hacia la API del café.
type APIConfig struct {
	BaseURL string        // ej. http://localhost:8000/api/v1
	Timeout time.Duration // timeout por petición (default 60 s)
}

// SessionConfig configuración de la persistencia de sesión local.
// File es el "slot" durable con nombre fijo donde se guarda {user, token, cafe}.
type SessionConfig struct {
	File string
}

// StubConfig configuración del stub server local (cmd/stubserver).
type StubConfig struct {
	Host       string
	Port       int
	JWTSecret  string
	JWTIssuer  string
	JWTExpMins int
}

// Addr devuelve la dirección de escucha del stub (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, SESSION_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "cafeteria-client"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:8000/api/v1"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Session: SessionConfig{
			File: getString(v, "SESSION_FILE", defaultSessionFile()),
		},
		Stub: StubConfig{
			Host:       getString(v, "STUB_HOST", "0.0.0.0"),
			Port:       getInt(v, "STUB_PORT", 8000),
			JWTSecret:  getString(v, "STUB_JWT_SECRET", "stub-dev-secret"),
			JWTIssuer:  getString(v, "STUB_JWT_ISSUER", "cafeteria-stub"),
			JWTExpMins: getInt(v, "STUB_JWT_EXP_MINUTES", 480),
		},
	}

	return cfg, nil
}

// defaultSessionFile replica el "auth-storage" del cliente web:
// un archivo JSON con nombre fijo bajo el directorio de configuración del usuario.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "auth-storage.json"
	}
	return filepath.Join(dir, "cafeteria", "auth-storage.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
