package reconcile

// Merge combines incoming rows into existing according to policy and returns
// the final table. Neither argument is modified.
//
// Upsert indexes existing data rows by the cell at keyIndex, replaces matching
// rows in place (whole-row replacement) and appends rows with new keys in batch
// order. A key appended earlier in the same batch is replaced by a later
// duplicate. Empty keys are ordinary keys; callers own key uniqueness.
//
// Overwrite keeps the header and replaces every data row with the batch.
//
// All rows of the result are fitted to the header width.
func Merge(existing Table, incoming [][]string, keyIndex int, policy Policy) (Table, Summary) {
	out := existing.Clone()
	out.Normalize()
	width := out.Width()
	var sum Summary

	if policy == Overwrite {
		sum.Discarded = len(out.Rows)
		out.Rows = make([][]string, 0, len(incoming))
		for _, row := range incoming {
			out.Rows = append(out.Rows, fit(row, width))
		}
		sum.Appended = len(incoming)
		return out, sum
	}

	existingCount := len(out.Rows)
	index := make(map[string]int, existingCount+len(incoming))
	for i, row := range out.Rows {
		index[keyOf(row, keyIndex)] = i
	}

	updated := make(map[int]struct{})
	for _, row := range incoming {
		row = fit(row, width)
		key := keyOf(row, keyIndex)
		if i, ok := index[key]; ok {
			out.Rows[i] = row
			if i < existingCount {
				updated[i] = struct{}{}
			}
			continue
		}
		index[key] = len(out.Rows)
		out.Rows = append(out.Rows, row)
		sum.Appended++
	}

	sum.Updated = len(updated)
	sum.Untouched = existingCount - sum.Updated
	return out, sum
}

// fit copies row and, when the table has a header, fits it to width.
func fit(row []string, width int) []string {
	c := cloneRow(row)
	if width == 0 {
		return c
	}
	return fitRow(c, width)
}

func keyOf(row []string, keyIndex int) string {
	if keyIndex < 0 || keyIndex >= len(row) {
		return ""
	}
	return row[keyIndex]
}
