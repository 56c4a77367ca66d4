package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

var (
	// ErrMissingAPIKey es fatal al arrancar: el proveedor elegido necesita credencial.
	ErrMissingAPIKey   = errors.New("missing API key for LLM provider")
	ErrUnknownProvider = errors.New("unknown LLM provider")
	ErrInvalidTimeout  = errors.New("invalid LLM timeout: must be positive")
	ErrInvalidUpload   = errors.New("invalid max upload size: must be positive")
)

// Config se arma una vez al iniciar el proceso y no se modifica después.
type Config struct {
	Port string `mapstructure:"port"`

	Provider      Provider      `mapstructure:"llm_provider"`
	Model         string        `mapstructure:"llm_model"`
	Timeout       time.Duration `mapstructure:"llm_timeout"`
	GeminiAPIKey  string        `mapstructure:"gemini_api_key"`
	GeminiBaseURL string        `mapstructure:"gemini_base_url"`
	OpenAIAPIKey  string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL string        `mapstructure:"openai_base_url"`
	OllamaHost    string        `mapstructure:"ollama_host"`

	BreedInfoPath    string `mapstructure:"breed_info_path"`
	DBDSN            string `mapstructure:"db_dsn"`
	SQLitePath       string `mapstructure:"sqlite_path"`
	CatalogBootstrap bool   `mapstructure:"catalog_bootstrap"`

	APIToken       string `mapstructure:"api_token"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

var keys = []string{
	"port",
	"llm_provider", "llm_model", "llm_timeout",
	"gemini_api_key", "gemini_base_url",
	"openai_api_key", "openai_base_url",
	"ollama_host",
	"breed_info_path", "db_dsn", "sqlite_path", "catalog_bootstrap",
	"api_token", "max_upload_bytes",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("llm_provider", string(ProviderGemini))
	v.SetDefault("llm_timeout", 60*time.Second)
	v.SetDefault("breed_info_path", "data/breed_info.json")
	v.SetDefault("catalog_bootstrap", false)
	v.SetDefault("max_upload_bytes", 10<<20)
}

// Load lee variables de entorno y, si existe, un archivo .env (envFile).
// Las variables de entorno pisan al archivo. envFile vacío => ".env".
func Load(envFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if envFile == "" {
		envFile = ".env"
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	// claves en minúscula, env en mayúscula: GEMINI_API_KEY -> gemini_api_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(string(cfg.Provider))))

	return cfg, nil
}

// Validate revisa lo que tiene que estar bien antes de aceptar requests.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			return fmt.Errorf("%w: set GEMINI_API_KEY", ErrMissingAPIKey)
		}
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingAPIKey)
		}
	case ProviderOllama:
		// local, sin credencial
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxUploadBytes <= 0 {
		return ErrInvalidUpload
	}
	return nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string {
	p := strings.TrimSpace(c.Port)
	if p == "" {
		p = "8080"
	}
	if strings.HasPrefix(p, ":") {
		return p
	}
	return ":" + p
}
