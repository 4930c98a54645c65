// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values
