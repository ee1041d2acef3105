package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper
// desde variables de entorno y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Oracle  OracleConfig
	Reorder ReorderConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido,
// si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string con URL encoding para caracteres
// especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// OracleConfig apunta al servicio externo de predicción de demanda.
// BaseURL vacío = oráculo deshabilitado (los pronósticos deben llegar
// explícitos en cada request).
type OracleConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// ReorderConfig política de puntos de reorden. DefaultPoint aplica a todo
// material sin override; Points mapea id de material → umbral.
// Con DefaultPoint en 0 y sin overrides no se emiten alertas.
type ReorderConfig struct {
	DefaultPoint float64
	Points       map[string]float64
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env / config.env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gridstock"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gridstock"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Oracle: OracleConfig{
			BaseURL:        getString(v, "ORACLE_BASE_URL", ""),
			TimeoutSeconds: getInt(v, "ORACLE_TIMEOUT_SECONDS", 25),
		},
		Reorder: ReorderConfig{
			DefaultPoint: getFloat(v, "REORDER_DEFAULT_POINT", 0),
			Points:       parsePoints(getString(v, "REORDER_POINTS", "")),
		},
	}

	return cfg, nil
}

// parsePoints interpreta "steel=40,conductor=25" como overrides por
// material. Entradas malformadas se descartan en silencio.
func parsePoints(s string) map[string]float64 {
	points := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		points[strings.ToLower(strings.TrimSpace(parts[0]))] = val
	}
	return points
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, _ := strconv.ParseFloat(v.GetString(key), 64)
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
