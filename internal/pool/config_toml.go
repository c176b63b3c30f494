package pool

import "github.com/pelletier/go-toml/v2"

// tomlConfig mirrors Config's shape for decoding; kept separate so the
// exported Config stays free of struct tags aimed at one format.
type tomlConfig struct {
	Tiers []TierConfig `toml:"tiers"`
}

// DecodeTOML parses a tier schedule from TOML, of the form:
//
//	[[tiers]]
//	capacity = 8
//	weight = 0.3
//
// This lets an embedding application describe its fragment-pool tiers
// in a config file without the core container or this package owning
// any file-format concern itself.
func DecodeTOML(data []byte) (Config, error) {
	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return Config{}, err
	}
	cfg := Config{Tiers: tc.Tiers}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
