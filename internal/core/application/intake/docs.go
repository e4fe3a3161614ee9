// Package intake turns heterogeneous order payloads into a canonical Payload.
//
// Each logical field is described by a Field: an ordered list of candidate keys
// resolved against a Document by first match. The same Field definitions serve every
// schema; schema-specific rules (see Schema) are applied after extraction, so adding
// an alias never changes validation and vice versa.
package intake
