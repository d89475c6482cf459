package reconcile

import (
	"fmt"
	"strings"
)

// EnsureSchema reshapes t so its header equals expected.
//
// An empty table is initialised with expected. A matching header is left alone.
// Otherwise the first rule for t.Name whose trigger column is missing is applied;
// when no rule fires the header is replaced and rows are right-padded. The input
// table is never modified. On error the caller should keep the table as read.
func EnsureSchema(t Table, expected []string, rules []Rule) (Table, Migration, error) {
	out := t.Clone()

	if out.IsEmpty() {
		out.Header = cloneRow(expected)
		out.Normalize()
		return out, Migration{Kind: MigrationInitialized, Added: cloneRow(expected)}, nil
	}

	if out.HeaderEquals(expected) {
		out.Header = cloneRow(expected)
		out.Normalize()
		return out, Migration{Kind: MigrationNone}, nil
	}

	for _, rule := range rules {
		if rule.Table != t.Name || out.HasColumn(rule.Trigger) {
			continue
		}
		return applyRule(out, expected, rule)
	}

	added := missingColumns(out.Header, expected)
	out.Header = cloneRow(expected)
	out.Normalize()
	return out, Migration{Kind: MigrationGeneric, Added: added}, nil
}

// applyRule inserts the rule's columns into every data row long enough to hold
// data at the insertion point. The rule is first replayed on the header and must
// reproduce expected exactly, otherwise column alignment would be corrupted.
func applyRule(t Table, expected []string, rule Rule) (Table, Migration, error) {
	if len(missingColumns(expected, []string{rule.Trigger})) > 0 {
		return Table{}, Migration{}, fmt.Errorf("%w: %s trigger is not an expected column", ErrInvalidRule, rule.Name())
	}

	header := trimHeader(t.Header)
	added := make([]string, 0, len(rule.Inserts))
	for _, ins := range rule.Inserts {
		if ins.Position < 0 || ins.Position > len(header) {
			return Table{}, Migration{}, fmt.Errorf("%w: %s inserts %q at %d but header has %d columns",
				ErrInvalidRule, rule.Name(), ins.Column, ins.Position, len(header))
		}
		header = insertAt(header, ins.Position, ins.Column)
		added = append(added, ins.Column)
	}

	if !sameColumns(header, expected) {
		return Table{}, Migration{}, fmt.Errorf("%w: %s yields [%s], want [%s]",
			ErrInvalidRule, rule.Name(), strings.Join(header, ", "), strings.Join(expected, ", "))
	}

	for i, row := range t.Rows {
		for _, ins := range rule.Inserts {
			if len(row) > ins.Position {
				row = insertAt(row, ins.Position, ins.Default)
			}
		}
		t.Rows[i] = row
	}

	t.Header = cloneRow(expected)
	t.Normalize()
	return t, Migration{Kind: MigrationRule, Rule: rule.Name(), Added: added}, nil
}

func insertAt(row []string, pos int, value string) []string {
	out := make([]string, 0, len(row)+1)
	out = append(out, row[:pos]...)
	out = append(out, value)
	return append(out, row[pos:]...)
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != strings.TrimSpace(b[i]) {
			return false
		}
	}
	return true
}

func missingColumns(header, expected []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = struct{}{}
	}
	var missing []string
	for _, col := range expected {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
