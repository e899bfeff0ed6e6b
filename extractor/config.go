package extractor

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config carries the engine's layout-detection policy. The thresholds are
// heuristics, not derived values, so they stay named and overridable through
// the config file rather than buried in the detection code.
type Config struct {
	// HeaderScanRows is how many leading grid rows are examined when looking
	// for the header row.
	HeaderScanRows int
	// HeaderMonthHits is the minimum count of month-classified cells a row
	// needs to be accepted as the header row.
	HeaderMonthHits int
	// FallbackHeaderRow and FallbackTitleColumn are used when no row in the
	// scan window qualifies; the engine degrades to a best-guess fixed layout
	// instead of failing.
	FallbackHeaderRow   int
	FallbackTitleColumn int
	// FallbackMonthStart is the first column walked when no header cell
	// classifies as a month.
	FallbackMonthStart int
	// AuxValueMax separates auxiliary index/percentage columns from monetary
	// ones: a headerless column whose first data cell parses to a number with
	// absolute value at or below this is treated as auxiliary and skipped.
	AuxValueMax decimal.Decimal
	// Aliases maps semantic account keys to their known textual variants, in
	// resolution order.
	Aliases map[string][]string
}

// DefaultConfig returns the engine defaults with the built-in alias table.
func DefaultConfig() Config {
	return Config{
		HeaderScanRows:      5,
		HeaderMonthHits:     3,
		FallbackHeaderRow:   1,
		FallbackTitleColumn: 1,
		FallbackMonthStart:  2,
		AuxValueMax:         decimal.NewFromInt(5),
		Aliases:             DefaultAliases(),
	}
}

// LoadConfig builds a Config from viper, falling back to the defaults for
// anything the config file leaves out. Aliases from the config file are
// merged over the built-in table, so a deployment can patch a single key
// without restating the rest.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if viper.IsSet("engine.header_scan_rows") {
		cfg.HeaderScanRows = viper.GetInt("engine.header_scan_rows")
	}
	if viper.IsSet("engine.header_month_hits") {
		cfg.HeaderMonthHits = viper.GetInt("engine.header_month_hits")
	}
	if viper.IsSet("engine.fallback_header_row") {
		cfg.FallbackHeaderRow = viper.GetInt("engine.fallback_header_row")
	}
	if viper.IsSet("engine.fallback_title_column") {
		cfg.FallbackTitleColumn = viper.GetInt("engine.fallback_title_column")
	}
	if viper.IsSet("engine.fallback_month_start") {
		cfg.FallbackMonthStart = viper.GetInt("engine.fallback_month_start")
	}
	if viper.IsSet("engine.aux_value_max") {
		cfg.AuxValueMax = decimal.NewFromFloat(viper.GetFloat64("engine.aux_value_max"))
	}

	for key, variants := range viper.GetStringMapStringSlice("aliases") {
		cfg.Aliases[key] = variants
	}

	return cfg
}
