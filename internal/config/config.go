package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrMissingSecretKey = errors.New("SECRET_KEY ausente ou com valor de exemplo")

// Valores de exemplo que nunca podem assinar tokens
var placeholderSecrets = map[string]struct{}{
	"your_secret_key": {},
	"changeme":        {},
}

type Config struct {
	App       App     `mapstructure:",squash"`
	Server    Server  `mapstructure:",squash"`
	Session   Session `mapstructure:",squash"`
	Cors      Cors    `mapstructure:",squash"`
	SecretKey string  `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Session struct {
	TTL            time.Duration `mapstructure:"session_ttl"`
	CleanupCron    string        `mapstructure:"session_cleanup_cron"`
	CleanupEnabled bool          `mapstructure:"session_cleanup_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("SESSION_TTL", "2h")                    // Sessão ociosa expira em 2 horas
	v.SetDefault("SESSION_CLEANUP_CRON", "*/15 * * * *") // Limpeza a cada 15 minutos
	v.SetDefault("SESSION_CLEANUP_ENABLED", true)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()
	// sem default o viper só decodifica a chave se ela estiver ligada ao ambiente
	_ = v.BindEnv("SECRET_KEY")

	if err := v.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if _, placeholder := placeholderSecrets[config.SecretKey]; config.SecretKey == "" || placeholder {
		return nil, ErrMissingSecretKey
	}

	if config.Session.TTL <= 0 {
		logrus.Warnf("SESSION_TTL inválido (%s), usando 2h", config.Session.TTL)
		config.Session.TTL = 2 * time.Hour
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
