// Package kernel provides shared domain primitives used across aggregates:
// the UUID identity value object and the Barcode value object that encodes
// a panel's physical identity.
//
// Both types are immutable, guarded value objects. Zero values are invalid
// and fail Validate; instances must be created through the package
// constructors.
//
// The barcode grammar accepted here is the canonical size/type-encoding
// grammar: SP<size><type>-L<line>-<sequence>, where size is S, M or L,
// type is M (monocrystalline) or P (polycrystalline), line is a single
// digit 1-9 and sequence is six digits. Example: SPLM-L3-000042.
package kernel
