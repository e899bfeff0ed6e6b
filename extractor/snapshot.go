package extractor

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/julianunes2703/ipp/extractor/common"
)

// Snapshot is the read-only result of one extraction pass: the account rows
// in source order, the months discovered in the header, and the lookup
// machinery consumers query against. A new fetch replaces the whole snapshot;
// nothing in it is mutated afterwards.
type Snapshot struct {
	Rows   []common.AccountRow `json:"rows"`
	Months []common.MonthKey   `json:"months"`

	index   map[string]int
	aliases map[string][]string
}

// KeyStatus reports whether a semantic key resolved to a row.
type KeyStatus struct {
	Key   string `json:"key"`
	Found bool   `json:"found"`
}

// NewSnapshot indexes the extracted rows for exact-key lookup. When two rows
// normalize to the same key the later row wins the index slot, matching plain
// map assignment; substring resolution still sees both in source order.
func NewSnapshot(rows []common.AccountRow, months []common.MonthKey, aliases map[string][]string) Snapshot {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		index[row.Key] = i
	}
	return Snapshot{Rows: rows, Months: months, index: index, aliases: aliases}
}

// FindRow resolves a semantic account key ("ebitda", "lucro_liquido") to the
// extracted row it matches. Each known variant is tried in table order: first
// an exact match against the normalized-key index, then a substring scan over
// the rows in extraction order. When several row keys contain the variant,
// the first in source row order wins.
func (s Snapshot) FindRow(semanticKey string) (common.AccountRow, bool) {
	for _, variant := range s.aliases[semanticKey] {
		key := common.NormalizeKey(variant)
		if key == "" {
			continue
		}
		if i, ok := s.index[key]; ok {
			return s.Rows[i], true
		}
		for _, row := range s.Rows {
			if strings.Contains(row.Key, key) {
				return row, true
			}
		}
	}
	return common.AccountRow{}, false
}

// ValueAt returns the value of a semantic account for one month, or zero when
// either the account or the month is absent. Lookups never fail; degraded
// extraction shows up as zeros, with DebugKeys as the diagnostic.
func (s Snapshot) ValueAt(semanticKey string, month common.MonthKey) decimal.Decimal {
	row, ok := s.FindRow(semanticKey)
	if !ok {
		return decimal.Zero
	}
	return row.Value(month)
}

// DebugKeys reports, for each given semantic key, whether it resolved to a
// row. This is the only way a consumer can tell a genuine zero from a line
// item the extraction failed to find.
func (s Snapshot) DebugKeys(semanticKeys ...string) []KeyStatus {
	statuses := make([]KeyStatus, 0, len(semanticKeys))
	for _, key := range semanticKeys {
		_, found := s.FindRow(key)
		statuses = append(statuses, KeyStatus{Key: key, Found: found})
	}
	return statuses
}
