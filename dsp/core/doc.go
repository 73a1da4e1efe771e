// Package core holds the small value types and helpers shared by every
// primitive: frequency/period units, sample-count conversion, and common
// processor configuration.
package core
