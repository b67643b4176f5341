// Package changedetect implements C7: field-by-field comparison of a
// monitored entity's stored snapshot against a freshly fetched profile, with
// null-aware and deep-equal semantics, producing prioritized Alert records
// (§4.7). The null-aware/deep-equal comparison style follows the teacher's
// VariableSet equality helpers; here it is specialized to the lead/company
// field tables in §4.7.
package changedetect

import (
	"fmt"
	"reflect"
	"time"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// HasRealChange implements the spec's hasRealChange(a, b): false if equal,
// false if both nullish, true otherwise (§4.7).
func HasRealChange(a, b any) bool {
	if isNullish(a) && isNullish(b) {
		return false
	}
	if a == b {
		return false
	}
	if !isComparable(a) || !isComparable(b) {
		return !reflect.DeepEqual(a, b)
	}
	return a != b
}

func isNullish(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

func isComparable(v any) bool {
	switch v.(type) {
	case string, int, int64, float64, bool:
		return true
	default:
		return false
	}
}

// Field describes one observable field's comparison and alerting policy.
type Field struct {
	Name        string
	Previous    any
	Updated     any
	Priority    domain.AlertPriority
	Title       string
	DeepEqual   bool // use structural equality instead of scalar compare
	Describable bool // include before/after values in the description
}

// DetectChanges compares previous vs updated values for each field and
// returns one Alert per real change (§4.7: "Each detected change produces
// one Alert" — including in the company path, per §9 Open Question 1's
// resolution that the lead and company paths share this one-alert-per-field
// semantics). idGen and createdAt are injected so callers control
// nondeterministic inputs (uuid generation, wall-clock time) — activities
// may call these freely since they run outside workflow replay.
func DetectChanges(fields []Field, leadID, reporterUserID string, idGen func() string, createdAt func() time.Time) []domain.Alert {
	var alerts []domain.Alert
	for _, f := range fields {
		var changed bool
		if f.DeepEqual {
			changed = !bothNullish(f.Previous, f.Updated) && !reflect.DeepEqual(f.Previous, f.Updated)
		} else {
			changed = HasRealChange(f.Previous, f.Updated)
		}
		if !changed {
			continue
		}

		description := fmt.Sprintf("%s changed", f.Name)
		if f.Describable {
			description = fmt.Sprintf("%s changed from %v to %v", f.Name, displayValue(f.Previous), displayValue(f.Updated))
		}

		alerts = append(alerts, domain.Alert{
			ID:             idGen(),
			LeadID:         leadID,
			ReporterUserID: reporterUserID,
			Title:          f.Title,
			Description:    description,
			Priority:       f.Priority,
			PreviousValue:  f.Previous,
			UpdatedValue:   f.Updated,
			CreatedAt:      createdAt(),
		})
	}
	return alerts
}

func bothNullish(a, b any) bool {
	return isNullish(a) && isNullish(b)
}

func displayValue(v any) string {
	if v == nil {
		return "null"
	}
	if s, ok := v.(string); ok && s == "" {
		return "null"
	}
	return fmt.Sprint(v)
}
