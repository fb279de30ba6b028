package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Restaurant RestaurantConfig
	Billing    BillingConfig
	PDF        PDFConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// RestaurantConfig identidad del emisor que encabeza boletas y carta.
type RestaurantConfig struct {
	Name    string
	RUT     string
	Address string
	Phone   string
}

// BillingConfig parámetros de facturación. Los precios de carta incluyen IVA;
// la tasa solo se usa para desglosar neto e impuesto en la boleta.
type BillingConfig struct {
	IVARate float64 // 0.19 en Chile
}

// PDFConfig salida de documentos generados.
type PDFConfig struct {
	OutputDir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, RESTAURANT_NAME, BILLING_IVA_RATE, PDF_OUTPUT_DIR, etc.
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
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "restaurante-pos"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Restaurant: RestaurantConfig{
			Name:    getString(v, "RESTAURANT_NAME", "RESTAURANTE"),
			RUT:     getString(v, "RESTAURANT_RUT", "76.123.456-7"),
			Address: getString(v, "RESTAURANT_ADDRESS", "Av. Siempre Viva 742, Temuco"),
			Phone:   getString(v, "RESTAURANT_PHONE", "+56 9 1234 5678"),
		},
		Billing: BillingConfig{
			IVARate: getFloat(v, "BILLING_IVA_RATE", 0.19),
		},
		PDF: PDFConfig{
			OutputDir: getString(v, "PDF_OUTPUT_DIR", "./out"),
		},
	}

	if cfg.Billing.IVARate < 0 {
		return nil, fmt.Errorf("config: BILLING_IVA_RATE negativa: %v", cfg.Billing.IVARate)
	}
	return cfg, nil
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, err := strconv.ParseFloat(v.GetString(key), 64)
			if err != nil {
				return def
			}
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
