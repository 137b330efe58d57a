package ingest

import (
	"sort"
	"strings"

	"github.com/scg-heim/heim-backend-go/internal/pkg/excel"
)

// normalizeHeader lowercases a header and strips whitespace, hyphens and
// underscores so that "Created-Date_Time" and "createddatetime" compare equal.
func normalizeHeader(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	var b strings.Builder
	b.Grow(len(header))
	for _, r := range header {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '_':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveColumn finds the raw header of a row that best matches one of the
// candidates. Candidates are tried in priority order; for each, an exact
// normalized match across all headers beats a substring match. Headers are
// scanned in sorted order so resolution is deterministic.
func resolveColumn(row excel.Row, candidates ...string) (string, bool) {
	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	for _, candidate := range candidates {
		want := normalizeHeader(candidate)
		if want == "" {
			continue
		}
		for _, h := range headers {
			if normalizeHeader(h) == want {
				return h, true
			}
		}
		for _, h := range headers {
			if strings.Contains(normalizeHeader(h), want) {
				return h, true
			}
		}
	}
	return "", false
}

// cellText returns the trimmed raw text of the cell under the first header
// matching the candidates, or "" when no column resolves.
func cellText(row excel.Row, candidates ...string) string {
	header, ok := resolveColumn(row, candidates...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[header].Text)
}
