package chargecode

import "strings"

// Logical charge-code fields in assignment order.
const (
	fieldFriendlyName    = "friendly_name"
	fieldPercent         = "percent"
	fieldTaskSource      = "task_source"
	fieldTask            = "task"
	fieldSubTask         = "sub_task"
	fieldOperatingUnit   = "operating_unit"
	fieldProcess         = "process"
	fieldProject         = "project"
	fieldActivity        = "activity"
	fieldCustomerSegment = "customer_segment"
)

var fieldOrder = []string{
	fieldFriendlyName,
	fieldPercent,
	fieldTaskSource,
	fieldTask,
	fieldSubTask,
	fieldOperatingUnit,
	fieldProcess,
	fieldProject,
	fieldActivity,
	fieldCustomerSegment,
}

// fieldAliases maps each logical field to its accepted header spellings, in
// priority order. Headers are normalized before matching, so adding an alias
// here is the only change needed to accept a new spelling.
var fieldAliases = map[string][]string{
	fieldFriendlyName:    {"friendly_name", "name", "project_name", "task_name"},
	fieldPercent:         {"percent", "percentage", "%"},
	fieldTaskSource:      {"task_source", "source"},
	fieldTask:            {"task"},
	fieldSubTask:         {"sub_task", "subtask"},
	fieldOperatingUnit:   {"operating_unit", "unit"},
	fieldProcess:         {"process"},
	fieldProject:         {"project", "project_code"},
	fieldActivity:        {"activity"},
	fieldCustomerSegment: {"customer_segment", "segment"},
}

// normalizeHeader canonicalizes a column header: trimmed, lowercased, spaces
// replaced with underscores.
func normalizeHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

// headerIndex maps normalized headers to their column position. The first
// occurrence of a duplicated header wins.
func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		normalized := normalizeHeader(h)
		if normalized == "" {
			continue
		}
		if _, exists := index[normalized]; !exists {
			index[normalized] = i
		}
	}
	return index
}

// resolveField returns the trimmed value of the first alias of field present
// in the row with a non-empty value.
func resolveField(field string, index map[string]int, row []string) string {
	for _, alias := range fieldAliases[field] {
		col, ok := index[alias]
		if !ok || col >= len(row) {
			continue
		}
		if value := strings.TrimSpace(row[col]); value != "" {
			return value
		}
	}
	return ""
}
