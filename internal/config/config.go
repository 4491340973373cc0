package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string        `mapstructure:"port"`
	MongoURI        string        `mapstructure:"mongo_uri"`
	MongoDatabase   string        `mapstructure:"mongo_database"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	LogLevel        string        `mapstructure:"log_level"`
	RabbitMQURL     string        `mapstructure:"rabbitmq_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Mail            MailConfig    `mapstructure:",squash"`
}

type MailConfig struct {
	Host     string `mapstructure:"mail_host"`
	Port     int    `mapstructure:"mail_port"`
	User     string `mapstructure:"mail_user"`
	Password string `mapstructure:"mail_pass"`
	From     string `mapstructure:"mail_from"`
}

// Enabled reports whether an SMTP host was configured.
func (m MailConfig) Enabled() bool {
	return m.Host != ""
}

var keys = []string{
	"port", "mongo_uri", "mongo_database", "jwt_secret", "log_level",
	"rabbitmq_url", "shutdown_timeout",
	"mail_host", "mail_port", "mail_user", "mail_pass", "mail_from",
}

// Load carrega o .env (se existir) e aplica as variáveis de ambiente sobre os defaults.
func Load(envFiles ...string) (Config, error) {
	// .env é opcional, em produção tudo vem do ambiente
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetDefault("port", "5000")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "suapizza")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("rabbitmq_url", "")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("mail_host", "")
	v.SetDefault("mail_port", 587)
	v.SetDefault("mail_user", "")
	v.SetDefault("mail_pass", "")
	v.SetDefault("mail_from", "nao-responda@suapizza.com.br")

	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr devolve o endereço de escuta no formato ":porta".
func (c Config) Addr() string {
	return ":" + c.Port
}
