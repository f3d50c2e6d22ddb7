package commands

import (
	"errors"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/guard"
)

var (
	ErrRecordScanCommandIsNotConstructed = errors.New(
		"RecordScanCommand must be created via NewRecordScanCommand constructor",
	)
	ErrScannedAtIsRequired = errors.New("scan time is required")
)

// RecordScanCommand represents a panel's first scan on the line. The raw
// barcode is validated against the canonical grammar before a panel is
// created; malformed barcodes are rejected at construction time.
type RecordScanCommand struct { //nolint:recvcheck //using for validation
	panelID   kernel.UUID
	barcode   kernel.Barcode
	orderID   kernel.UUID
	scannedAt time.Time

	guard guard.ConstructorGuard
}

// NewRecordScanCommand creates a command to register a scanned panel.
// The raw barcode must match the canonical grammar, e.g. SPLM-L3-000042.
func NewRecordScanCommand(
	panelID kernel.UUID,
	rawBarcode string,
	orderID kernel.UUID,
	scannedAt time.Time,
) (RecordScanCommand, error) {
	cmd := RecordScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	barcode, err := kernel.NewBarcode(rawBarcode)
	if err != nil {
		return RecordScanCommand{}, err
	}
	cmd.barcode = barcode

	if err = errors.Join(
		cmd.setPanelID(panelID),
		cmd.setOrderID(orderID),
		cmd.setScannedAt(scannedAt),
	); err != nil {
		return RecordScanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordScanCommand) Validate() error {
	return c.guard.Validate(ErrRecordScanCommandIsNotConstructed)
}

// PanelID returns the identifier assigned to the new panel.
func (c RecordScanCommand) PanelID() kernel.UUID {
	return c.panelID
}

// Barcode returns the validated barcode.
func (c RecordScanCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// OrderID returns the manufacturing order the panel is scanned against.
func (c RecordScanCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ScannedAt returns the scan time.
func (c RecordScanCommand) ScannedAt() time.Time {
	return c.scannedAt
}

func (c *RecordScanCommand) setPanelID(panelID kernel.UUID) error {
	if err := panelID.Validate(); err != nil {
		return err
	}

	c.panelID = panelID
	return nil
}

func (c *RecordScanCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordScanCommand) setScannedAt(at time.Time) error {
	if at.IsZero() {
		return ErrScannedAtIsRequired
	}

	c.scannedAt = at
	return nil
}
