/*
Package notify routes new complaints to the responsible officer's WhatsApp.

PURPOSE:
  The office has no messaging infrastructure; the public complaint page
  simply hands the reporter a prefilled wa.me link to the person in charge
  of that complaint category. This package owns the routing table and the
  message template so the API can return the link with the created record.
*/
package notify

import (
	"fmt"
	"net/url"

	"github.com/digimons/facility-engine/complaint"
)

// =============================================================================
// PIC ROUTING
// =============================================================================

// Contact is the person in charge of a complaint category.
type Contact struct {
	Name   string
	Number string // international format without the plus sign
}

var (
	picCleaning  = Contact{Name: "Bpk. Malik", Number: "6282186726057"}
	picBuilding  = Contact{Name: "Bpk. Aprianson", Number: "6288286733662"}
	picEquipment = Contact{Name: "Bpk. Oktario", Number: "6285367086256"}
)

// ContactFor resolves the officer responsible for a complaint. Cleaning
// goes to the cleaning coordinator; building repairs to the building
// officer; equipment repairs, TIK or not, to the equipment officer.
func ContactFor(c complaint.Complaint) Contact {
	if c.Category == complaint.CategoryCleanliness {
		return picCleaning
	}
	if c.SubCategory == complaint.SubBuilding {
		return picBuilding
	}
	return picEquipment
}

// =============================================================================
// MESSAGE LINK
// =============================================================================

// Link builds the wa.me URL with the report prefilled, ready for the
// reporter to tap.
func Link(c complaint.Complaint) string {
	pic := ContactFor(c)

	category := string(c.Category)
	if c.SubCategory != "" {
		category = fmt.Sprintf("%s (%s)", c.Category, c.SubCategory)
	}

	message := "*DIGIMONS - LAPORAN BARU*\n\n" +
		fmt.Sprintf("Halo %s,\n", pic.Name) +
		"Ada laporan masuk melalui sistem DIGIMONS:\n\n" +
		fmt.Sprintf("*Kategori:* %s\n", category) +
		fmt.Sprintf("*Jenis Pelapor:* %s\n", c.ReporterKind) +
		fmt.Sprintf("*Nama Pelapor:* %s\n", c.Reporter) +
		fmt.Sprintf("*Lokasi:* %s\n", c.Location) +
		fmt.Sprintf("*Keterangan:* %s\n\n", c.Description) +
		"_Mohon segera dilakukan pengecekan. Terima kasih._"

	return fmt.Sprintf("https://wa.me/%s?text=%s", pic.Number, url.QueryEscape(message))
}
