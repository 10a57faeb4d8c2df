// Package orderlens provides an in-memory analytics engine for customer
// purchase records.
//
// Usage:
//
//	rows, err := helpers.ParseCSV(data)
//	idx, err := engine.BuildIndex(rows)
//	summary, err := engine.Summarize(idx,
//	    engine.WithTopK(5),
//	    engine.WithInactivityWindow(6),
//	)
//
// A finite set of order records is loaded once into an immutable OrderIndex;
// every query is a pure read-only function of that snapshot: per-customer
// spend totals, top spenders, order-frequency leaders, product popularity,
// monthly revenue, inactivity detection, and multi-criteria filtering with
// consecutive-month streak detection.
//
// Record ingestion is a separate concern — CSV parsing lives in helpers,
// MySQL loading in store, and any source that can emit the six-field
// contract (see the schema package) can feed the index builder.
package orderlens
