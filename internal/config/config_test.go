package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"graphql-rename/internal/transform"
)

// Note: Full integration tests for Load() should be done in integration tests
// because Load() relies on global state (pflag.CommandLine) which is difficult
// to test in isolation without causing conflicts between tests.

func validConfig() *Config {
	return &Config{
		Input:  "schema.graphql",
		Output: "-",
		Renames: []RenameEntry{
			{From: "Query", To: "RootQuery"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes validation", func(t *testing.T) {
		cfg := validConfig()
		result := cfg.Validate()
		assert.False(t, result.HasErrors())
		assert.Empty(t, result.Errors)
		assert.Empty(t, result.Warnings)
	})

	t.Run("empty input", func(t *testing.T) {
		cfg := validConfig()
		cfg.Input = ""
		result := cfg.Validate()
		assert.True(t, result.HasErrors())
		assert.Contains(t, result.Error(), "input")
	})

	t.Run("empty output", func(t *testing.T) {
		cfg := validConfig()
		cfg.Output = "  "
		result := cfg.Validate()
		assert.True(t, result.HasErrors())
		assert.Contains(t, result.Error(), "output")
	})

	t.Run("no renames warns", func(t *testing.T) {
		cfg := validConfig()
		cfg.Renames = nil
		result := cfg.Validate()
		assert.False(t, result.HasErrors())
		assert.Len(t, result.Warnings, 1)
		assert.Equal(t, "renames", result.Warnings[0].Field)
	})

	t.Run("invalid log level and format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Level = "verbose"
		cfg.Logging.Format = "xml"
		result := cfg.Validate()
		assert.Len(t, result.Errors, 2)
		assert.Contains(t, result.Error(), "logging.level")
		assert.Contains(t, result.Error(), "logging.format")
	})

	t.Run("all problems reported together", func(t *testing.T) {
		cfg := &Config{
			Renames: []RenameEntry{
				{From: "", To: "User"},
				{From: "1Bad", To: ""},
			},
			Logging: LoggingConfig{Level: "verbose"},
		}
		result := cfg.Validate()
		// empty input, empty output, empty from, invalid from, empty to,
		// invalid level
		assert.Len(t, result.Errors, 6)
	})
}

func TestConfig_Validate_RenameEntries(t *testing.T) {
	tests := []struct {
		name    string
		entry   RenameEntry
		errors  int
		message string
	}{
		{name: "valid", entry: RenameEntry{From: "Query", To: "RootQuery"}},
		{name: "underscore names", entry: RenameEntry{From: "_Entity", To: "_Service"}},
		{name: "empty from", entry: RenameEntry{To: "User"}, errors: 1, message: "from cannot be empty"},
		{name: "empty to", entry: RenameEntry{From: "User"}, errors: 1, message: "to cannot be empty"},
		{name: "bad from", entry: RenameEntry{From: "User-1", To: "User"}, errors: 1, message: "not a valid GraphQL type name"},
		{name: "bad to", entry: RenameEntry{From: "User", To: "2User"}, errors: 1, message: "not a valid GraphQL type name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Renames = []RenameEntry{tt.entry}
			result := cfg.Validate()
			assert.Len(t, result.Errors, tt.errors)
			if tt.message != "" {
				assert.Contains(t, result.Error(), tt.message)
			}
		})
	}
}

func TestConfig_Validate_RenameFlags(t *testing.T) {
	cfg := validConfig()
	cfg.renameFlags = []string{"A=B", "missing-separator", "=NoFrom", "NoTo="}
	result := cfg.Validate()

	assert.Len(t, result.Errors, 3)
	assert.Contains(t, result.Error(), `malformed rename "missing-separator"`)
	assert.Contains(t, result.Error(), `malformed rename "=NoFrom"`)
	assert.Contains(t, result.Error(), `malformed rename "NoTo="`)
}

func TestSplitRenameFlag(t *testing.T) {
	tests := []struct {
		raw  string
		from string
		to   string
		ok   bool
	}{
		{raw: "Query=RootQuery", from: "Query", to: "RootQuery", ok: true},
		{raw: " A = B ", from: "A", to: "B", ok: true},
		{raw: "A=B=C", from: "A", to: "B=C", ok: true},
		{raw: "AB"},
		{raw: "=B"},
		{raw: "A="},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			from, to, ok := splitRenameFlag(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestConfig_Pairs(t *testing.T) {
	cfg := &Config{
		Renames: []RenameEntry{
			{From: "Query", To: "RootQuery"},
			{From: "A", To: "User"},
		},
		renameFlags: []string{"B=InputUser", "garbage"},
	}

	// File entries first, then parseable flag entries; malformed flags are
	// Validate's problem, Pairs just skips them.
	assert.Equal(t, []transform.RenamePair{
		{From: "Query", To: "RootQuery"},
		{From: "A", To: "User"},
		{From: "B", To: "InputUser"},
	}, cfg.Pairs())
}
