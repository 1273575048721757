package config

// ReportersConfig reporters run on every session iteration
// + Enabled: reporter types, in the order they run
// + PairSeparator: separator between start and end station of a trip
type ReportersConfig struct {
	Enabled       []string `yaml:"enabled"`
	PairSeparator string   `yaml:"pair_separator"`
}
