/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers and the domain packages, not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/digimons/facility-engine/cleaning"
	"github.com/digimons/facility-engine/complaint"
	"github.com/digimons/facility-engine/maintenance"
	"github.com/digimons/facility-engine/record"
	"github.com/digimons/facility-engine/security"
)

// =============================================================================
// AUTH
// =============================================================================

// LoginRequest is the credential pair from the login page.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the account it identifies.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// =============================================================================
// COMPLAINTS
// =============================================================================

// SubmitComplaintRequest is the public complaint form.
type SubmitComplaintRequest struct {
	Category     string `json:"category"`
	SubCategory  string `json:"subCategory,omitempty"`
	ReporterKind string `json:"reporterKind"`
	Reporter     string `json:"reporter"`
	Location     string `json:"location"`
	Description  string `json:"description"`
}

// ComplaintDTO represents a complaint in API responses.
type ComplaintDTO struct {
	ID           string `json:"id"`
	Timestamp    string `json:"timestamp"`
	Validated    bool   `json:"validated"`
	Category     string `json:"category"`
	SubCategory  string `json:"subCategory,omitempty"`
	ReporterKind string `json:"reporterKind"`
	Reporter     string `json:"reporter"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

// SubmitComplaintResponse adds the WhatsApp notification link for the
// responsible officer.
type SubmitComplaintResponse struct {
	Complaint    ComplaintDTO `json:"complaint"`
	WhatsAppLink string       `json:"whatsappLink"`
	PIC          string       `json:"pic"`
}

// SetStatusRequest changes a complaint's follow-up status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

func toComplaintDTO(c complaint.Complaint) ComplaintDTO {
	return ComplaintDTO{
		ID:           c.ID,
		Timestamp:    c.Timestamp,
		Validated:    c.Validated,
		Category:     string(c.Category),
		SubCategory:  string(c.SubCategory),
		ReporterKind: string(c.ReporterKind),
		Reporter:     c.Reporter,
		Location:     c.Location,
		Description:  c.Description,
		Status:       string(c.Status),
	}
}

// =============================================================================
// CLEANING
// =============================================================================

// SubmitCleaningRequest is one room's checked checklist.
type SubmitCleaningRequest struct {
	Room           string   `json:"room"`
	Checker        string   `json:"checker"`
	CompletedTasks []string `json:"completedTasks"`
	Notes          string   `json:"notes,omitempty"`
	Date           string   `json:"date,omitempty"` // defaults to today
}

// CleaningLogDTO represents a cleaning log in API responses.
type CleaningLogDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Validated bool   `json:"validated"`
	Room      string `json:"room"`
	Floor     int    `json:"floor"`
	PIC       string `json:"pic"`
	Checker   string `json:"checker"`
	Clean     bool   `json:"clean"`
	Notes     string `json:"notes,omitempty"`
}

func toCleaningDTO(l cleaning.Log) CleaningLogDTO {
	return CleaningLogDTO{
		ID:        l.ID,
		Date:      l.Timestamp,
		Validated: l.Validated,
		Room:      l.Room,
		Floor:     l.Floor,
		PIC:       l.PIC,
		Checker:   l.Checker,
		Clean:     l.Clean,
		Notes:     l.Notes,
	}
}

// RoomDTO describes one room of the assignment table with its checklist.
type RoomDTO struct {
	Room      string          `json:"room"`
	Floor     int             `json:"floor"`
	PIC       string          `json:"pic"`
	Checklist []cleaning.Task `json:"checklist"`
}

// CompletionDTO is today's progress bar for a collection.
type CompletionDTO struct {
	Date    string `json:"date"`
	Done    int    `json:"done"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
}

// =============================================================================
// SECURITY
// =============================================================================

// SubmitSecurityRequest is the patrol report form. The checklist booleans
// ride through as-is; only the ones for the reported area are meaningful.
type SubmitSecurityRequest struct {
	Officer string `json:"officer"`
	Shift   string `json:"shift"`
	Area    string `json:"area"`
	Safe    bool   `json:"safe"`
	Note    string `json:"note,omitempty"`
	Date    string `json:"date,omitempty"`

	Checklist map[string]bool `json:"checklist,omitempty"`
}

// SecurityLogDTO flattens a patrol log with its resolved checklist.
type SecurityLogDTO struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Validated bool            `json:"validated"`
	Officer   string          `json:"officer"`
	Shift     string          `json:"shift"`
	Area      string          `json:"area"`
	Safe      bool            `json:"safe"`
	Note      string          `json:"note,omitempty"`
	Checklist []security.Item `json:"checklist"`
}

func toSecurityDTO(l security.Log) SecurityLogDTO {
	return SecurityLogDTO{
		ID:        l.ID,
		Date:      l.Timestamp,
		Validated: l.Validated,
		Officer:   l.Officer,
		Shift:     string(l.Shift),
		Area:      string(l.Area),
		Safe:      l.Safe,
		Note:      l.UnsafeNote,
		Checklist: l.Checklist(),
	}
}

// AreaDTO describes one patrollable area for a shift.
type AreaDTO struct {
	Area      string          `json:"area"`
	Checklist []security.Item `json:"checklist"`
}

// =============================================================================
// MAINTENANCE
// =============================================================================

// SubmitMaintenanceRequest is the repair log form.
type SubmitMaintenanceRequest struct {
	Item      string `json:"item"`
	BrandArea string `json:"brandArea,omitempty"`
	Damage    string `json:"damage"`
	Repair    string `json:"repair"`
	Officer   string `json:"officer"`
	Photo     string `json:"photo,omitempty"`
	Cost      string `json:"cost,omitempty"` // decimal string, defaults to 0
	Date      string `json:"date,omitempty"`
}

// MaintenanceLogDTO represents a maintenance log in API responses.
type MaintenanceLogDTO struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Validated bool   `json:"validated"`
	Item      string `json:"item"`
	BrandArea string `json:"brandArea,omitempty"`
	Damage    string `json:"damage"`
	Repair    string `json:"repair"`
	Officer   string `json:"officer"`
	Photo     string `json:"photo,omitempty"`
	Cost      string `json:"cost"`
}

func toMaintenanceDTO(l maintenance.Log) MaintenanceLogDTO {
	return MaintenanceLogDTO{
		ID:        l.ID,
		Date:      l.Timestamp,
		Validated: l.Validated,
		Item:      string(l.Item),
		BrandArea: l.BrandArea,
		Damage:    l.Damage,
		Repair:    l.Repair,
		Officer:   l.Officer,
		Photo:     l.Photo,
		Cost:      l.Cost.String(),
	}
}

// UpdateCostRequest sets the realized repair cost.
type UpdateCostRequest struct {
	Cost string `json:"cost"`
}

// =============================================================================
// RECAPS
// =============================================================================

// RecapRowDTO is one entity row of a monthly matrix.
type RecapRowDTO struct {
	Entity string   `json:"entity"`
	PIC    string   `json:"pic,omitempty"`
	Cells  []string `json:"cells"`
	Notes  string   `json:"notes,omitempty"`
}

// RecapDTO is a compiled monthly matrix.
type RecapDTO struct {
	Month string        `json:"month"`
	Days  int           `json:"days"`
	Rows  []RecapRowDTO `json:"rows"`
}

// MaintenanceRecapDTO adds the month listing and cost total.
type MaintenanceRecapDTO struct {
	RecapDTO
	Logs  []MaintenanceLogDTO `json:"logs"`
	Total string              `json:"total"`
}

func toRecapRowDTO(row record.Row, pic string) RecapRowDTO {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = string(c)
	}
	return RecapRowDTO{Entity: row.Entity, PIC: pic, Cells: cells, Notes: row.Notes}
}

// =============================================================================
// DASHBOARD
// =============================================================================

// DashboardDTO is the landing page summary.
type DashboardDTO struct {
	Date              string         `json:"date"`
	Month             string         `json:"month"`
	ComplaintsOpen    int            `json:"complaintsOpen"`
	ComplaintsTotal   int            `json:"complaintsTotal"`
	PendingValidation map[string]int `json:"pendingValidation"`
	CleaningToday     CompletionDTO  `json:"cleaningToday"`
	SecurityToday     CompletionDTO  `json:"securityToday"`
	MaintenanceMonth  int            `json:"maintenanceMonth"`
	MaintenanceCost   string         `json:"maintenanceCost"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
