package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"

	logger "github.com/gqlbridge/gqlbridge/log"
)

var log = logger.Get()

const envPrefix = "GQLBRIDGE"

// UpstreamConfig describes the single upstream commerce GraphQL API that
// every translated request is sent to. All values are read once at start
// and never mutated afterwards.
type UpstreamConfig struct {
	// StoreURL is the base address of the store, e.g.
	// "https://my-store.myshopify.com".
	StoreURL string `json:"store_url"`

	// APIVersion selects the admin API version used when the endpoint is
	// derived from the store URL, e.g. "2024-01".
	APIVersion string `json:"api_version"`

	// AccessToken is forwarded on every upstream call in the
	// X-Shopify-Access-Token header.
	AccessToken string `json:"access_token"`

	// GraphQLEndpoint is either an absolute URL, or a path resolved
	// against StoreURL. Empty means the conventional
	// admin/api/<version>/graphql.json path.
	GraphQLEndpoint string `json:"graphql_endpoint"`

	// RequestTimeout bounds a single upstream round-trip, in seconds.
	RequestTimeout int `json:"request_timeout"`
}

type HTTPServerOptionsConfig struct {
	ReadTimeout  int `json:"read_timeout"`
	WriteTimeout int `json:"write_timeout"`
}

type CORSConfig struct {
	Enable             bool     `json:"enable"`
	AllowedOrigins     []string `json:"allowed_origins"`
	AllowedMethods     []string `json:"allowed_methods"`
	AllowedHeaders     []string `json:"allowed_headers"`
	ExposedHeaders     []string `json:"exposed_headers"`
	AllowCredentials   bool     `json:"allow_credentials"`
	MaxAge             int      `json:"max_age"`
	OptionsPassthrough bool     `json:"options_passthrough"`
	Debug              bool     `json:"debug"`
}

type Config struct {
	ListenAddress string `json:"listen_address"`
	ListenPort    int    `json:"listen_port"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`

	HTTPServerOptions HTTPServerOptionsConfig `json:"http_server_options"`
	Upstream          UpstreamConfig          `json:"upstream"`
	CORS              CORSConfig              `json:"cors"`

	// OriginalPath is the path to the config file that was loaded.
	OriginalPath string `json:"-"`
}

var Default = Config{
	ListenPort: 8080,
	LogLevel:   "info",
	LogFormat:  "text",
	HTTPServerOptions: HTTPServerOptionsConfig{
		ReadTimeout:  30,
		WriteTimeout: 30,
	},
	Upstream: UpstreamConfig{
		APIVersion:     "2024-01",
		RequestTimeout: 30,
	},
	CORS: CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type"},
	},
}

func WriteConf(path string, conf *Config) error {
	bs, err := json.MarshalIndent(conf, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}

// WriteDefault will set conf to the default config and write it to disk
// in path, if the path is non-empty.
func WriteDefault(path string, conf *Config) error {
	*conf = Default
	if err := envconfig.Process(envPrefix, conf); err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	return WriteConf(path, conf)
}

// Load will load a configuration file, trying each of the paths given
// and using the first one that is a regular file and can be opened.
//
// If none exists, a default config will be written to the first path in
// the list.
//
// An error will be returned only if any of the paths existed but was
// not a valid config file.
func Load(paths []string, conf *Config) error {
	var r io.Reader
	for _, path := range paths {
		f, err := os.Open(path)
		if err == nil {
			r = f
			conf.OriginalPath = path
			break
		}
		if os.IsNotExist(err) {
			continue
		}
		return err
	}
	if r == nil {
		path := paths[0]
		log.Warnf("No config file found, writing default to %s", path)
		if err := WriteDefault(path, conf); err != nil {
			return err
		}
		log.Info("Loading default configuration...")
		return Load([]string{path}, conf)
	}
	if err := json.NewDecoder(r).Decode(&conf); err != nil {
		return fmt.Errorf("couldn't unmarshal config: %v", err)
	}
	if err := envconfig.Process(envPrefix, conf); err != nil {
		return fmt.Errorf("failed to process config env vars: %v", err)
	}
	return nil
}
