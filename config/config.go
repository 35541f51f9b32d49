package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all agent configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
	Device   DeviceConfig   `mapstructure:"device"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ChainConfig identifies the target chain and the deployed contracts.
// Read once at startup; a wallet/chain mismatch is detected immediately,
// not at first write.
type ChainConfig struct {
	RPCURL       string `mapstructure:"rpc_url"`
	ChainID      uint64 `mapstructure:"chain_id"`
	LoanContract string `mapstructure:"loan_contract"`
	TokenAddress string `mapstructure:"token_address"`
}

// WalletConfig locates the embedded wallet enrollment record.
type WalletConfig struct {
	Keyfile string `mapstructure:"keyfile"`
	// ProviderURL, when set, is the wallet provider endpoint used for the
	// single best-effort network switch attempt. Empty means the attempt
	// fails immediately (embedded wallets are chain-locked).
	ProviderURL string `mapstructure:"provider_url"`
}

type MonitorConfig struct {
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	ConfirmAttempts int           `mapstructure:"confirm_attempts"`
	ConfirmInterval time.Duration `mapstructure:"confirm_interval"`
}

// DeviceConfig selects the pinning bridge. Backend "exec" drives the
// platform commands below; "noop" disables enforcement (unsupported platforms).
type DeviceConfig struct {
	Backend        string `mapstructure:"backend"`
	PinCmd         string `mapstructure:"pin_cmd"`
	UnpinCmd       string `mapstructure:"unpin_cmd"`
	DisableExitCmd string `mapstructure:"disable_exit_cmd"`
	EnableExitCmd  string `mapstructure:"enable_exit_cmd"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// NotifyConfig configures the optional lock-state change webhook to the AppShell.
type NotifyConfig struct {
	CallbackURL string        `mapstructure:"callback_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LEA_ (Loan Enforcement
// Agent). Nested keys use underscore: LEA_CHAIN_RPC_URL, LEA_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8799)
	v.SetDefault("chain.rpc_url", "https://sepolia-rollup.arbitrum.io/rpc")
	v.SetDefault("chain.chain_id", 421614)
	v.SetDefault("chain.loan_contract", "")
	v.SetDefault("chain.token_address", "")
	v.SetDefault("wallet.keyfile", "wallet.json")
	v.SetDefault("wallet.provider_url", "")
	v.SetDefault("monitor.poll_interval", "30s")
	v.SetDefault("monitor.confirm_attempts", 15)
	v.SetDefault("monitor.confirm_interval", "1s")
	v.SetDefault("device.backend", "noop")
	v.SetDefault("device.pin_cmd", "")
	v.SetDefault("device.unpin_cmd", "")
	v.SetDefault("device.disable_exit_cmd", "")
	v.SetDefault("device.enable_exit_cmd", "")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "enforcement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("notify.callback_url", "")
	v.SetDefault("notify.timeout", "10s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "loan-enforcement-agent")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LEA_CHAIN_RPC_URL -> chain.rpc_url
	v.SetEnvPrefix("LEA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Chain.ChainID == 0 {
		return fmt.Errorf("chain.chain_id is required")
	}
	if c.Chain.LoanContract == "" {
		return fmt.Errorf("chain.loan_contract is required")
	}
	if c.Chain.TokenAddress == "" {
		return fmt.Errorf("chain.token_address is required")
	}
	if c.Monitor.PollInterval <= 0 {
		return fmt.Errorf("monitor.poll_interval must be positive")
	}
	if c.Monitor.ConfirmAttempts <= 0 {
		return fmt.Errorf("monitor.confirm_attempts must be positive")
	}
	return nil
}
