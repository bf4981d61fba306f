// Package kernel provides core domain primitives shared across the
// marketplace domain model.
//
// The package includes:
//   - UUID: a value object for internal entity identifiers
//   - Money: a value object for monetary amounts in minor units
//
// Both primitives are immutable and validate themselves, so domain objects
// built from them are always in a known-good state.
package kernel
