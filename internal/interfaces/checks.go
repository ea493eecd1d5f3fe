// Package interfaces holds compile-time interface implementation checks.
// These ensure concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
package interfaces

import (
	"github.com/lecturas-app/lecturas/internal/exporters"
)

// BookExporter implementations
var _ exporters.BookExporter = (*exporters.CSVExporter)(nil)
