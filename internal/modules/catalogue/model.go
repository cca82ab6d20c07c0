package catalogue

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Product is a catalogue record stored locally. Price and stock are never
// persisted; they come from the inventory provider at read time.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Data status strings surfaced on CatalogueEntry. The list fallback string
// differs from the single-get one; kept verbatim until product confirms
// whether they should match.
const (
	StatusLive            = "Live"
	StatusLocalOnly       = "Local data only - Price and stock not available at creation"
	StatusUnavailable     = "Data Unavailable - External service error"
	StatusUnavailableList = "Data Unavailable"
)

// CatalogueEntry is the response projection: a Product merged with optional
// live inventory data. Price and stock are both set or both nil.
type CatalogueEntry struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	DataStatus  string   `json:"dataStatus"`
}

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
)

// CreateProductRequest holds the data for creating a product.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FieldErrors maps a field name to its validation messages. It satisfies
// error so the service can return it through the usual error path.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Validate checks the create request against the field constraints and
// returns nil when the request is acceptable.
func (r CreateProductRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if r.Name == "" {
		errs["name"] = append(errs["name"], "name is required")
	} else if utf8.RuneCountInString(r.Name) > maxNameLen {
		errs["name"] = append(errs["name"], fmt.Sprintf("name must be at most %d characters", maxNameLen))
	}
	if r.Description == "" {
		errs["description"] = append(errs["description"], "description is required")
	} else if utf8.RuneCountInString(r.Description) > maxDescriptionLen {
		errs["description"] = append(errs["description"], fmt.Sprintf("description must be at most %d characters", maxDescriptionLen))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
