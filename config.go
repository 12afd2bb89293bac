package redis

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the client options. It is read from
// YAML and/or REDIS_* environment variables, for example:
//
//	REDIS_TOPOLOGY=cluster REDIS_ADDRS=10.0.0.1:7000,10.0.0.2:7000
type Config struct {
	// Topology is one of standalone, sentinel, cluster or sharded.
	Topology string `yaml:"topology" envconfig:"TOPOLOGY"`
	// URL overrides Addrs and credentials of a standalone client.
	URL string `yaml:"url" envconfig:"URL"`
	// Addrs lists the server, sentinel or cluster seed addresses.
	Addrs []string `yaml:"addrs" envconfig:"ADDRS"`
	// MasterName is the sentinel master set name.
	MasterName string `yaml:"master_name" envconfig:"MASTER_NAME"`
	// Shards maps shard names to addresses for the sharded topology.
	Shards map[string]string `yaml:"shards" envconfig:"SHARDS"`

	Username   string `yaml:"username" envconfig:"USERNAME"`
	Password   string `yaml:"password" envconfig:"PASSWORD"`
	DB         int    `yaml:"db" envconfig:"DB"`
	ClientName string `yaml:"client_name" envconfig:"CLIENT_NAME"`
	Protocol   int    `yaml:"protocol" envconfig:"PROTOCOL"`
	MaxRetries int    `yaml:"max_retries" envconfig:"MAX_RETRIES"`

	DialTimeout  time.Duration `yaml:"dial_timeout" envconfig:"DIAL_TIMEOUT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	PoolSize     int           `yaml:"pool_size" envconfig:"POOL_SIZE"`
	MinIdleConns int           `yaml:"min_idle_conns" envconfig:"MIN_IDLE_CONNS"`
	PoolTimeout  time.Duration `yaml:"pool_timeout" envconfig:"POOL_TIMEOUT"`
}

const envPrefix = "REDIS"

// LoadConfig reads a YAML file and applies REDIS_* environment overrides.
// An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("redis: reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("redis: parsing config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("redis: reading environment: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) connOptions(base ConnOptions) ConnOptions {
	base.Username = cfg.Username
	base.Password = cfg.Password
	base.ClientName = cfg.ClientName
	base.Protocol = cfg.Protocol
	base.MaxRetries = cfg.MaxRetries
	base.DialTimeout = cfg.DialTimeout
	base.ReadTimeout = cfg.ReadTimeout
	base.WriteTimeout = cfg.WriteTimeout
	base.PoolSize = cfg.PoolSize
	base.MinIdleConns = cfg.MinIdleConns
	base.PoolTimeout = cfg.PoolTimeout
	return base
}

// mergeConnOptions fills the settings the URL left unset from conn. The
// logger and tracer always come from conn.
func mergeConnOptions(fromURL, conn ConnOptions) ConnOptions {
	merged := fromURL
	if merged.Username == "" {
		merged.Username = conn.Username
	}
	if merged.Password == "" {
		merged.Password = conn.Password
	}
	if merged.ClientName == "" {
		merged.ClientName = conn.ClientName
	}
	if merged.Protocol == 0 {
		merged.Protocol = conn.Protocol
	}
	if merged.MaxRetries == 0 {
		merged.MaxRetries = conn.MaxRetries
	}
	if merged.DialTimeout == 0 {
		merged.DialTimeout = conn.DialTimeout
	}
	if merged.ReadTimeout == 0 {
		merged.ReadTimeout = conn.ReadTimeout
	}
	if merged.WriteTimeout == 0 {
		merged.WriteTimeout = conn.WriteTimeout
	}
	if merged.PoolSize == 0 {
		merged.PoolSize = conn.PoolSize
	}
	if merged.MinIdleConns == 0 {
		merged.MinIdleConns = conn.MinIdleConns
	}
	if merged.MaxIdleConns == 0 {
		merged.MaxIdleConns = conn.MaxIdleConns
	}
	if merged.PoolTimeout == 0 {
		merged.PoolTimeout = conn.PoolTimeout
	}
	if merged.ConnMaxIdleTime == 0 {
		merged.ConnMaxIdleTime = conn.ConnMaxIdleTime
	}
	if merged.ConnMaxLifetime == 0 {
		merged.ConnMaxLifetime = conn.ConnMaxLifetime
	}
	if merged.TLSConfig == nil {
		merged.TLSConfig = conn.TLSConfig
	}
	merged.Logger = conn.Logger
	merged.TracerProvider = conn.TracerProvider
	return merged
}

// NewClient builds a client for the configured topology. base supplies the
// settings that cannot be expressed declaratively, such as the logger.
func (cfg *Config) NewClient(base ConnOptions) (*Client, error) {
	conn := cfg.connOptions(base)
	switch strings.ToLower(cfg.Topology) {
	case "", "standalone":
		if cfg.URL != "" {
			opt, err := ParseURL(cfg.URL)
			if err != nil {
				return nil, err
			}
			opt.ConnOptions = mergeConnOptions(opt.ConnOptions, conn)
			return NewClient(opt), nil
		}
		opt := &Options{DB: cfg.DB, ConnOptions: conn}
		if len(cfg.Addrs) > 0 {
			opt.Addr = cfg.Addrs[0]
		}
		return NewClient(opt), nil
	case "sentinel":
		if cfg.MasterName == "" {
			return nil, fmt.Errorf("redis: sentinel topology requires master_name")
		}
		return NewFailoverClient(&FailoverOptions{
			MasterName:    cfg.MasterName,
			SentinelAddrs: cfg.Addrs,
			DB:            cfg.DB,
			ConnOptions:   conn,
		}), nil
	case "cluster":
		if len(cfg.Addrs) == 0 {
			return nil, fmt.Errorf("redis: cluster topology requires addrs")
		}
		return NewClusterClient(&ClusterOptions{Addrs: cfg.Addrs, ConnOptions: conn}), nil
	case "sharded":
		if len(cfg.Shards) == 0 {
			return nil, fmt.Errorf("redis: sharded topology requires shards")
		}
		return NewShardedClient(&RingOptions{Addrs: cfg.Shards, DB: cfg.DB, ConnOptions: conn}), nil
	}
	return nil, fmt.Errorf("redis: unknown topology %q", cfg.Topology)
}
