// Package manifest renders and persists the generated manifest files.
package manifest

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cratedock/cratedock/internal/core/domain"
)

// RenderChecksumTable renders the checksum rows as a column-aligned table,
// preserving row order. Column widths are computed in a single pass before
// emitting, so output is byte-identical for identical input. The final
// column needs no right padding to be aligned, which keeps lines free of
// trailing whitespace.
func RenderChecksumTable(rows []domain.ChecksumRow) []byte {
	if len(rows) == 0 {
		return nil
	}

	nameWidth := 0
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}

	var buf bytes.Buffer
	for _, row := range rows {
		fmt.Fprintf(&buf, "%-*s  %s\n", nameWidth, row.Name, row.Checksum)
	}
	return buf.Bytes()
}

// RenderLicenseList renders license identifiers one per line in lexicographic
// order. Duplicates are kept; the entry count always matches the input count.
func RenderLicenseList(ids []string) []byte {
	if len(ids) == 0 {
		return nil
	}

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	var buf bytes.Buffer
	for _, id := range sorted {
		buf.WriteString(id)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
