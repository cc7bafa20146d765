// Package record holds what the officer file's child record types share: the
// per-type descriptor, the personnel foreign key check and the
// upload-then-insert unit of work.
package record

import "go-personnel/internal/attachment"

// Capability is an optional operation a record type supports.
type Capability uint8

const (
	// CapSoftDelete marks rows inactive through the activo column instead of
	// removing them. Listing then only returns active rows.
	CapSoftDelete Capability = 1 << iota
)

type Descriptor struct {
	Name         string
	Table        string
	Category     attachment.Category
	FileField    string
	OrderColumn  string
	Capabilities Capability
}

func (d Descriptor) Can(c Capability) bool {
	return d.Capabilities&c != 0
}

// ListOrder is the ORDER BY clause used by ListByPersonnel.
func (d Descriptor) ListOrder() string {
	return d.OrderColumn + " DESC, id DESC"
}
