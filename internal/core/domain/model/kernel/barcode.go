package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"paneltrack/internal/pkg/errs"
	"paneltrack/internal/pkg/guard"
)

// PanelSize is the physical size class encoded in a barcode.
type PanelSize string

// Panel size classes. The single-letter codes appear verbatim in barcodes.
const (
	SizeSmall  PanelSize = "S"
	SizeMedium PanelSize = "M"
	SizeLarge  PanelSize = "L"
)

// PanelType is the cell technology encoded in a barcode.
type PanelType string

// Panel cell technologies. The single-letter codes appear verbatim in barcodes.
const (
	TypeMonocrystalline PanelType = "M"
	TypePolycrystalline PanelType = "P"
)

// barcodePattern is the canonical barcode grammar:
// SP, size class, cell type, production line, six-digit sequence number.
var barcodePattern = regexp.MustCompile(`^SP([SML])([MP])-L([1-9])-(\d{6})$`)

// ErrBarcodeIsNotConstructed indicates that a Barcode was not created via NewBarcode.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError(
	"barcode must be created via NewBarcode constructor")

// Barcode is the validated identity of a physical panel as printed on its
// label. It is an immutable value object: the raw scanned string plus the
// attributes the grammar encodes (size class, cell type, production line,
// sequence number).
//
// Example:
//
//	bc, err := kernel.NewBarcode("SPLM-L3-000042")
//	if err != nil {
//	    // malformed scan, reject it
//	}
//	fmt.Println(bc.Size(), bc.Line()) // "L" 3
type Barcode struct {
	raw      string
	size     PanelSize
	cellType PanelType
	line     int
	sequence string

	guard guard.ConstructorGuard
}

// NewBarcode parses and validates a raw scanned string against the canonical
// grammar. Malformed input is rejected with a ValueIsInvalidError; the scan
// is never corrected or normalized.
func NewBarcode(raw string) (Barcode, error) {
	if raw == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}

	m := barcodePattern.FindStringSubmatch(raw)
	if m == nil {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause(
			"barcode",
			fmt.Errorf("%q does not match the canonical grammar SP<size><type>-L<line>-<sequence>", raw),
		)
	}

	line, err := strconv.Atoi(m[3])
	if err != nil {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode", err)
	}

	return Barcode{
		raw:      raw,
		size:     PanelSize(m[1]),
		cellType: PanelType(m[2]),
		line:     line,
		sequence: m[4],
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// String returns the raw barcode exactly as scanned.
func (b Barcode) String() string {
	return b.raw
}

// Size returns the panel size class encoded in the barcode.
func (b Barcode) Size() PanelSize {
	return b.size
}

// PanelType returns the cell technology encoded in the barcode.
func (b Barcode) PanelType() PanelType {
	return b.cellType
}

// Line returns the production line number encoded in the barcode.
func (b Barcode) Line() int {
	return b.line
}

// Sequence returns the six-digit sequence number as printed, leading zeros included.
func (b Barcode) Sequence() string {
	return b.sequence
}

// IsEqual compares two barcodes by their raw value.
func (b Barcode) IsEqual(other Barcode) bool {
	return b.raw == other.raw
}

// Validate checks that the Barcode was created through NewBarcode.
// The zero value fails validation.
func (b Barcode) Validate() error {
	return b.guard.Validate(ErrBarcodeIsNotConstructed)
}
