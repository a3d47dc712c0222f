// Package config loads configuration documents and reads them by key path.
//
// The package uses an interface-based design with four extension points:
//   - Parser: turns raw data into a dynamic tree and binds subtrees into structs
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: validates config after binding
//   - Defaulter: applies default values before validation
//
// # Key Paths
//
// Sections and values are addressed with dotted key paths resolved by the
// github.com/0xalexb/keypath package:
//
//	"api.permissions"           -> config["api"]["permissions"]
//	"database.connection"       -> config["database"]["connection"]
//	""                          -> entire document (Provider only)
//
// Failures keep the keypath error kinds, so errors.Is(err, keypath.ErrMissing)
// distinguishes an absent section from one that is null or of the wrong type.
//
// # Example
//
// A typical usage pattern:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	provider := config.Provider(&APIConfig{}, "services.api")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
//
// Single values are read from a loaded Document:
//
//	doc, err := config.Load(yamlparser.NewParser(), fetcher)
//	timeout, err := config.Value[int](doc, "services.api.timeout")
package config
