package config

import (
	"graphql-rename/internal/transform"
)

// Config holds the application configuration.
type Config struct {
	// Input is the path to the SDL document to rewrite. "-" reads stdin.
	Input string `mapstructure:"input"`
	// Output is the path the rewritten SDL is written to. "-" writes stdout.
	Output string `mapstructure:"output"`
	// Renames lists the type renames from the config file, in file order.
	Renames []RenameEntry `mapstructure:"renames"`
	Logging LoggingConfig `mapstructure:"logging"`

	// renameFlags holds raw --rename values ("Old=New"), appended after the
	// config file entries when building the pair list.
	renameFlags []string
}

// RenameEntry maps an existing type name to its replacement.
type RenameEntry struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Pairs returns the rename pairs in order: config file entries first, then
// --rename flag entries. Flag entries that do not parse are skipped; Validate
// reports them as errors.
func (c *Config) Pairs() []transform.RenamePair {
	pairs := make([]transform.RenamePair, 0, len(c.Renames)+len(c.renameFlags))
	for _, entry := range c.Renames {
		pairs = append(pairs, transform.RenamePair{From: entry.From, To: entry.To})
	}
	for _, raw := range c.renameFlags {
		if from, to, ok := splitRenameFlag(raw); ok {
			pairs = append(pairs, transform.RenamePair{From: from, To: to})
		}
	}
	return pairs
}
