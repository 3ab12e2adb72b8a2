package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Modos de falla del dashboard cuando uno o más endpoints del backend fallan.
const (
	FailureModePartial = "partial" // se muestran las secciones con datos y se señala la degradación
	FailureModeStrict  = "strict"  // cualquier falla deja el dashboard en blanco
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Backend   BackendConfig
	Dashboard DashboardConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
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

// BackendConfig servicio de analítica que expone los tres endpoints de solo lectura.
// La URL base es fija por despliegue; nunca la suministra el usuario en tiempo de ejecución.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int // 0 = sin timeout por ciclo (solo el del cliente HTTP)
}

// Timeout devuelve el timeout por ciclo de carga.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DashboardConfig presentación del dashboard.
type DashboardConfig struct {
	Title       string
	Locale      string // etiqueta BCP 47 para agrupar cifras, ej: "en-IN"
	Currency    string // símbolo antepuesto al total de ingresos
	FailureMode string // partial | strict
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BACKEND_URL, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia de Viper ya poblada.
// Separado de Load para poder probarlo sin tocar el entorno del proceso.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "journey-dashboard"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(getString(v, "BACKEND_URL", "http://127.0.0.1:8000"), "/"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 15),
		},
		Dashboard: DashboardConfig{
			Title:       getString(v, "DASHBOARD_TITLE", "AstroArunPandit - Customer Journey Dashboard"),
			Locale:      getString(v, "DASHBOARD_LOCALE", "en-IN"),
			Currency:    getString(v, "DASHBOARD_CURRENCY", "₹"),
			FailureMode: strings.ToLower(getString(v, "DASHBOARD_FAILURE_MODE", FailureModePartial)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rechaza configuraciones con las que el servicio no puede arrancar.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: BACKEND_URL inválido: %q", c.Backend.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: BACKEND_URL debe ser http o https: %q", c.Backend.BaseURL)
	}
	if c.Backend.TimeoutSeconds < 0 {
		return fmt.Errorf("config: BACKEND_TIMEOUT_SECONDS no puede ser negativo")
	}
	switch c.Dashboard.FailureMode {
	case FailureModePartial, FailureModeStrict:
	default:
		return fmt.Errorf("config: DASHBOARD_FAILURE_MODE desconocido: %q", c.Dashboard.FailureMode)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	return nil
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
