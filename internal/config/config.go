// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

type Config struct {
	RPCList       []string `mapstructure:"rpc_list"`
	Commitment    string   `mapstructure:"commitment"`
	SkipPreflight bool     `mapstructure:"skip_preflight"`
	Broadcast     bool     `mapstructure:"broadcast"`
	SignerProgram string   `mapstructure:"signer_program"`
	WalletKeyPath string   `mapstructure:"wallet_key_path"`
	DebugLogging  bool     `mapstructure:"debug_logging"`
}

const DefaultCommitment = "confirmed"

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("commitment", DefaultCommitment)
	v.SetDefault("skip_preflight", false)
	v.SetDefault("broadcast", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if len(cfg.RPCList) == 0 {
		return errors.New("rpc_list is empty")
	}
	for _, endpoint := range cfg.RPCList {
		u, err := url.Parse(endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("invalid RPC endpoint: %s", endpoint)
		}
	}
	switch cfg.Commitment {
	case "processed", "confirmed", "finalized":
	default:
		return fmt.Errorf("invalid commitment level: %s", cfg.Commitment)
	}
	return nil
}
