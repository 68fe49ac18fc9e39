// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ImageMetadata is the predicate function for imagemetadata builders.
type ImageMetadata func(*sql.Selector)
