package engine

import "fmt"

// MalformedRecordError reports an input tuple that failed parsing or
// validation during index construction. The whole build aborts on the first
// one — a partially built index would silently skew every downstream
// aggregate.
type MalformedRecordError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at row %d: field %q value %q: %s",
		e.Row, e.Field, e.Value, e.Reason)
}

// InvalidCriteriaError reports an inconsistent filter configuration, such as
// an end date earlier than the start date or a negative threshold. Raised at
// query invocation time, before any records are touched.
type InvalidCriteriaError struct {
	Reason string
}

func (e *InvalidCriteriaError) Error() string {
	return "invalid criteria: " + e.Reason
}
