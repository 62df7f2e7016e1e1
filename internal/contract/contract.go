// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/spiroflow/vo2peak/schema"
)

// DatasetReader defines the input boundary of the pipeline. It turns a
// spreadsheet-like file into a raw table with the units sub-header row
// already dropped. This allows the core pipeline to be tested without
// fixture files on disk.
type DatasetReader interface {
	// Read loads the dataset at path. Implementations must return an error
	// for unreadable or empty files; per-cell problems are left to the
	// normalizer, which degrades them to missing values.
	Read(path string) (*schema.RawTable, error)
}
