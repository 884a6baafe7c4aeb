/*
handlers.go - HTTP API handlers for the facility operations backend

PURPOSE:
  Exposes the record engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Auth:
    POST   /api/login                     Exchange credentials for a token

  Complaints:
    POST   /api/complaints                Submit a complaint (public)
    GET    /api/complaints                List complaints
    POST   /api/complaints/{id}/status    Change follow-up status

  Cleaning:
    GET    /api/cleaning                  List cleaning logs
    POST   /api/cleaning                  Submit a room checklist
    GET    /api/cleaning/today            Today's completion
    GET    /api/cleaning/recap            Monthly matrix
    GET    /api/cleaning/rooms            Room table with checklists

  Security:
    GET    /api/security                  List patrol logs
    POST   /api/security                  Submit a patrol report
    GET    /api/security/today            Today's slot completion
    GET    /api/security/recap            Monthly matrix
    GET    /api/security/areas            Areas for a shift

  Maintenance:
    GET    /api/maintenance               List maintenance logs
    POST   /api/maintenance               Submit a repair log
    POST   /api/maintenance/{id}/cost     Set realized cost (pre-validation)
    GET    /api/maintenance/recap         Monthly matrix + cost total

  Lifecycle:
    POST   /api/records/{collection}/{id}/validate
    DELETE /api/records/{collection}/{id}

  Dashboard:
    GET    /api/dashboard                 Landing page summary

  Push:
    GET    /api/ws                        Live record change feed

REQUEST FLOW:
  1. Parse HTTP request
  2. Resolve the session (authenticated routes)
  3. Call domain logic
  4. Serialize response
  5. Map errors to status codes

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 401: Missing or bad token
  - 403: Role lacks the capability
  - 404: Record not found
  - 409: Conflict (duplicates, lifecycle state)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - ws.go: WebSocket push feed
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/digimons/facility-engine/auth"
	"github.com/digimons/facility-engine/cleaning"
	"github.com/digimons/facility-engine/complaint"
	"github.com/digimons/facility-engine/maintenance"
	"github.com/digimons/facility-engine/notify"
	"github.com/digimons/facility-engine/record"
	"github.com/digimons/facility-engine/security"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store     record.Store
	Lifecycle *record.Service
	Accounts  *auth.Directory
	Tokens    *auth.TokenManager
}

// NewHandler creates a handler over the given store and auth setup.
func NewHandler(store record.Store, accounts *auth.Directory, tokens *auth.TokenManager) *Handler {
	return &Handler{
		Store:     store,
		Lifecycle: record.NewService(store),
		Accounts:  accounts,
		Tokens:    tokens,
	}
}

// =============================================================================
// AUTH HANDLERS
// =============================================================================

// Login exchanges a credential pair for a session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	account, err := h.Accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Username atau Password salah", nil)
		return
	}

	token, err := h.Tokens.Issue(account)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:    token,
		Username: account.Username,
		Name:     account.Name,
		Role:     string(account.Role),
	})
}

// =============================================================================
// COMPLAINT HANDLERS
// =============================================================================

// SubmitComplaint files a complaint through the public form. No session is
// required; the guard inside complaint.Submit does the vetting.
func (h *Handler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	var req SubmitComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	candidate := complaint.Complaint{
		Category:     complaint.Category(req.Category),
		SubCategory:  complaint.SubCategory(req.SubCategory),
		ReporterKind: complaint.ReporterKind(req.ReporterKind),
		Reporter:     req.Reporter,
		Location:     req.Location,
		Description:  req.Description,
	}
	if !candidate.Category.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown category", nil)
		return
	}

	stored, err := complaint.Submit(r.Context(), h.Store, candidate)
	if err != nil {
		writeDomainError(w, "Failed to submit complaint", err)
		return
	}

	writeJSON(w, http.StatusCreated, SubmitComplaintResponse{
		Complaint:    toComplaintDTO(stored),
		WhatsAppLink: notify.Link(stored),
		PIC:          notify.ContactFor(stored).Name,
	})
}

// ListComplaints returns all complaints, most recent first.
func (h *Handler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.listComplaints(r)
	if err != nil {
		writeDomainError(w, "Failed to list complaints", err)
		return
	}

	dtos := make([]ComplaintDTO, len(complaints))
	for i, c := range complaints {
		dtos[i] = toComplaintDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SetComplaintStatus moves a validated complaint through the follow-up
// workflow. Validator-only, like validation itself.
func (h *Handler) SetComplaintStatus(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if !sess.Role.Capabilities().Validate {
		writeError(w, http.StatusForbidden, "Only the validator can change follow-up status", nil)
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := complaint.SetStatus(r.Context(), h.Store, id, complaint.Status(req.Status)); err != nil {
		writeDomainError(w, "Failed to change status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listComplaints(r *http.Request) ([]complaint.Complaint, error) {
	envs, err := h.Store.List(r.Context(), record.Complaints)
	if err != nil {
		return nil, err
	}
	return complaint.DecodeAll(envs)
}

// =============================================================================
// CLEANING HANDLERS
// =============================================================================

// ListCleaning returns all cleaning logs, most recent first.
func (h *Handler) ListCleaning(w http.ResponseWriter, r *http.Request) {
	logs, err := h.listCleaning(r)
	if err != nil {
		writeDomainError(w, "Failed to list cleaning logs", err)
		return
	}

	dtos := make([]CleaningLogDTO, len(logs))
	for i, l := range logs {
		dtos[i] = toCleaningDTO(l)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SubmitCleaning files one room's daily checklist.
func (h *Handler) SubmitCleaning(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if !sess.Role.CanSubmit(record.Cleaning) {
		writeError(w, http.StatusForbidden, "Role cannot submit cleaning logs", nil)
		return
	}

	var req SubmitCleaningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date := record.Today()
	if req.Date != "" {
		parsed, err := record.ParseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
			return
		}
		date = parsed
	}
	checker := req.Checker
	if checker == "" {
		checker = sess.Name
	}

	log, err := cleaning.NewLog(req.Room, checker, req.CompletedTasks, req.Notes, date)
	if err != nil {
		writeDomainError(w, "Failed to build cleaning log", err)
		return
	}
	stored, err := cleaning.Submit(r.Context(), h.Store, log)
	if err != nil {
		writeDomainError(w, "Failed to submit cleaning log", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCleaningDTO(stored))
}

// CleaningToday reports today's room completion.
func (h *Handler) CleaningToday(w http.ResponseWriter, r *http.Request) {
	logs, err := h.listCleaning(r)
	if err != nil {
		writeDomainError(w, "Failed to list cleaning logs", err)
		return
	}

	today := record.Today()
	done := cleaning.CompletedOn(logs, today)
	writeJSON(w, http.StatusOK, CompletionDTO{
		Date:    string(today),
		Done:    len(done),
		Total:   len(cleaning.Rooms()),
		Percent: cleaning.CompletionPercent(logs, today),
	})
}

// CleaningRecap compiles the monthly room matrix.
func (h *Handler) CleaningRecap(w http.ResponseWriter, r *http.Request) {
	ym, err := monthParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month format (use YYYY-MM)", err)
		return
	}
	logs, err := h.listCleaning(r)
	if err != nil {
		writeDomainError(w, "Failed to list cleaning logs", err)
		return
	}

	rows := cleaning.Recap(logs, ym)
	dto := RecapDTO{Month: string(ym), Days: ym.Days(), Rows: make([]RecapRowDTO, len(rows))}
	for i, row := range rows {
		dto.Rows[i] = toRecapRowDTO(row.Row, row.PIC)
	}
	writeJSON(w, http.StatusOK, dto)
}

// ListRooms returns the room assignment table with each room's checklist
// shape, which is what the checklist form renders.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms := cleaning.Rooms()
	dtos := make([]RoomDTO, 0, len(rooms))
	for _, room := range rooms {
		a, err := cleaning.Lookup(room)
		if err != nil {
			continue
		}
		tasks, err := cleaning.ChecklistFor(room)
		if err != nil {
			continue
		}
		dtos = append(dtos, RoomDTO{Room: room, Floor: a.Floor, PIC: a.PIC, Checklist: tasks})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) listCleaning(r *http.Request) ([]cleaning.Log, error) {
	envs, err := h.Store.List(r.Context(), record.Cleaning)
	if err != nil {
		return nil, err
	}
	return cleaning.DecodeAll(envs)
}

// =============================================================================
// SECURITY HANDLERS
// =============================================================================

// ListSecurity returns all patrol logs, most recent first.
func (h *Handler) ListSecurity(w http.ResponseWriter, r *http.Request) {
	logs, err := h.listSecurity(r)
	if err != nil {
		writeDomainError(w, "Failed to list patrol logs", err)
		return
	}

	dtos := make([]SecurityLogDTO, len(logs))
	for i, l := range logs {
		dtos[i] = toSecurityDTO(l)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SubmitSecurity files one patrol report.
func (h *Handler) SubmitSecurity(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if !sess.Role.CanSubmit(record.Security) {
		writeError(w, http.StatusForbidden, "Role cannot submit patrol logs", nil)
		return
	}

	var req SubmitSecurityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	log := security.Log{
		Timestamp:  req.Date,
		Officer:    req.Officer,
		Shift:      security.Shift(req.Shift),
		Area:       security.Area(req.Area),
		Safe:       req.Safe,
		UnsafeNote: req.Note,
	}
	if log.Timestamp == "" {
		log.Timestamp = string(record.Today())
	}
	if !log.Shift.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown shift", nil)
		return
	}
	for id, done := range req.Checklist {
		log.SetItem(id, done)
	}

	stored, err := security.Submit(r.Context(), h.Store, log)
	if err != nil {
		writeDomainError(w, "Failed to submit patrol log", err)
		return
	}
	writeJSON(w, http.StatusCreated, toSecurityDTO(stored))
}

// SecurityToday reports today's (area, shift) slot completion.
func (h *Handler) SecurityToday(w http.ResponseWriter, r *http.Request) {
	logs, err := h.listSecurity(r)
	if err != nil {
		writeDomainError(w, "Failed to list patrol logs", err)
		return
	}

	today := record.Today()
	total := 0
	for _, s := range security.Shifts() {
		total += len(security.AreasForShift(s))
	}
	writeJSON(w, http.StatusOK, CompletionDTO{
		Date:    string(today),
		Done:    len(security.LoggedOn(logs, today)),
		Total:   total,
		Percent: security.CompletionPercent(logs, today),
	})
}

// SecurityRecap compiles the monthly area matrix.
func (h *Handler) SecurityRecap(w http.ResponseWriter, r *http.Request) {
	ym, err := monthParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month format (use YYYY-MM)", err)
		return
	}
	logs, err := h.listSecurity(r)
	if err != nil {
		writeDomainError(w, "Failed to list patrol logs", err)
		return
	}

	rows := security.Recap(logs, ym)
	dto := RecapDTO{Month: string(ym), Days: ym.Days(), Rows: make([]RecapRowDTO, len(rows))}
	for i, row := range rows {
		dto.Rows[i] = toRecapRowDTO(row, "")
	}
	writeJSON(w, http.StatusOK, dto)
}

// ListAreas returns the patrollable areas for a shift (?shift=Pagi), or all
// areas when no shift is given.
func (h *Handler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas := security.Areas()
	if s := r.URL.Query().Get("shift"); s != "" {
		shift := security.Shift(s)
		if !shift.Valid() {
			writeError(w, http.StatusBadRequest, "Unknown shift", nil)
			return
		}
		areas = security.AreasForShift(shift)
	}

	dtos := make([]AreaDTO, len(areas))
	for i, a := range areas {
		dtos[i] = AreaDTO{Area: string(a), Checklist: security.ItemsFor(a)}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) listSecurity(r *http.Request) ([]security.Log, error) {
	envs, err := h.Store.List(r.Context(), record.Security)
	if err != nil {
		return nil, err
	}
	return security.DecodeAll(envs)
}

// =============================================================================
// MAINTENANCE HANDLERS
// =============================================================================

// ListMaintenance returns all maintenance logs, most recent first.
func (h *Handler) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	logs, err := h.listMaintenance(r)
	if err != nil {
		writeDomainError(w, "Failed to list maintenance logs", err)
		return
	}

	dtos := make([]MaintenanceLogDTO, len(logs))
	for i, l := range logs {
		dtos[i] = toMaintenanceDTO(l)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SubmitMaintenance files one repair log.
func (h *Handler) SubmitMaintenance(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if !sess.Role.CanSubmit(record.Maintenance) {
		writeError(w, http.StatusForbidden, "Role cannot submit maintenance logs", nil)
		return
	}

	var req SubmitMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cost := decimal.Zero
	if req.Cost != "" {
		parsed, err := decimal.NewFromString(req.Cost)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid cost amount", err)
			return
		}
		cost = parsed
	}

	log := maintenance.Log{
		Timestamp: req.Date,
		Item:      maintenance.Item(req.Item),
		BrandArea: req.BrandArea,
		Damage:    req.Damage,
		Repair:    req.Repair,
		Officer:   req.Officer,
		Photo:     req.Photo,
		Cost:      cost,
	}
	stored, err := maintenance.Submit(r.Context(), h.Store, log)
	if err != nil {
		writeDomainError(w, "Failed to submit maintenance log", err)
		return
	}
	writeJSON(w, http.StatusCreated, toMaintenanceDTO(stored))
}

// UpdateMaintenanceCost sets the realized cost on a pending log.
func (h *Handler) UpdateMaintenanceCost(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if !sess.Role.CanSubmit(record.Maintenance) {
		writeError(w, http.StatusForbidden, "Role cannot edit maintenance logs", nil)
		return
	}

	var req UpdateCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	cost, err := decimal.NewFromString(req.Cost)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cost amount", err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := maintenance.UpdateCost(r.Context(), h.Store, id, cost); err != nil {
		writeDomainError(w, "Failed to update cost", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MaintenanceRecap compiles the monthly item matrix plus the cost report.
func (h *Handler) MaintenanceRecap(w http.ResponseWriter, r *http.Request) {
	ym, err := monthParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month format (use YYYY-MM)", err)
		return
	}
	logs, err := h.listMaintenance(r)
	if err != nil {
		writeDomainError(w, "Failed to list maintenance logs", err)
		return
	}

	rows := maintenance.Recap(logs, ym)
	summary := maintenance.Summarize(logs, ym)

	dto := MaintenanceRecapDTO{
		RecapDTO: RecapDTO{Month: string(ym), Days: ym.Days(), Rows: make([]RecapRowDTO, len(rows))},
		Logs:     make([]MaintenanceLogDTO, len(summary.Logs)),
		Total:    summary.Total.String(),
	}
	for i, row := range rows {
		dto.Rows[i] = toRecapRowDTO(row.Row, "")
	}
	for i, l := range summary.Logs {
		dto.Logs[i] = toMaintenanceDTO(l)
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) listMaintenance(r *http.Request) ([]maintenance.Log, error) {
	envs, err := h.Store.List(r.Context(), record.Maintenance)
	if err != nil {
		return nil, err
	}
	return maintenance.DecodeAll(envs)
}

// =============================================================================
// LIFECYCLE HANDLERS
// =============================================================================

// ValidateRecord marks a record validated. Validator capability required;
// revalidating succeeds as a no-op.
func (h *Handler) ValidateRecord(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	c := record.Collection(chi.URLParam(r, "collection"))
	if !c.Valid() {
		writeError(w, http.StatusNotFound, "Unknown collection", nil)
		return
	}

	id := chi.URLParam(r, "id")
	actor := sess.Role.Actor(sess.Name)
	if err := h.Lifecycle.Validate(r.Context(), actor, c, id); err != nil {
		writeDomainError(w, "Failed to validate record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteRecord removes a record outright.
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	c := record.Collection(chi.URLParam(r, "collection"))
	if !c.Valid() {
		writeError(w, http.StatusNotFound, "Unknown collection", nil)
		return
	}

	id := chi.URLParam(r, "id")
	actor := sess.Role.Actor(sess.Name)
	if err := h.Lifecycle.Delete(r.Context(), actor, c, id); err != nil {
		writeDomainError(w, "Failed to delete record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// DASHBOARD
// =============================================================================

// Dashboard aggregates the landing page counters in one request.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.listComplaints(r)
	if err != nil {
		writeDomainError(w, "Failed to load dashboard", err)
		return
	}
	cleaningLogs, err := h.listCleaning(r)
	if err != nil {
		writeDomainError(w, "Failed to load dashboard", err)
		return
	}
	securityLogs, err := h.listSecurity(r)
	if err != nil {
		writeDomainError(w, "Failed to load dashboard", err)
		return
	}
	maintenanceLogs, err := h.listMaintenance(r)
	if err != nil {
		writeDomainError(w, "Failed to load dashboard", err)
		return
	}

	today := record.Today()
	ym := today.YearMonth()

	open := 0
	pendingComplaints := 0
	for _, c := range complaints {
		if c.Status != complaint.StatusDone {
			open++
		}
		if !c.Validated {
			pendingComplaints++
		}
	}
	pending := map[string]int{
		string(record.Complaints):  pendingComplaints,
		string(record.Cleaning):    0,
		string(record.Security):    0,
		string(record.Maintenance): 0,
	}
	for _, l := range cleaningLogs {
		if !l.Validated {
			pending[string(record.Cleaning)]++
		}
	}
	for _, l := range securityLogs {
		if !l.Validated {
			pending[string(record.Security)]++
		}
	}
	for _, l := range maintenanceLogs {
		if !l.Validated {
			pending[string(record.Maintenance)]++
		}
	}

	monthLogs := maintenance.MonthLogs(maintenanceLogs, ym)
	securityTotal := 0
	for _, s := range security.Shifts() {
		securityTotal += len(security.AreasForShift(s))
	}

	writeJSON(w, http.StatusOK, DashboardDTO{
		Date:              string(today),
		Month:             string(ym),
		ComplaintsOpen:    open,
		ComplaintsTotal:   len(complaints),
		PendingValidation: pending,
		CleaningToday: CompletionDTO{
			Date:    string(today),
			Done:    len(cleaning.CompletedOn(cleaningLogs, today)),
			Total:   len(cleaning.Rooms()),
			Percent: cleaning.CompletionPercent(cleaningLogs, today),
		},
		SecurityToday: CompletionDTO{
			Date:    string(today),
			Done:    len(security.LoggedOn(securityLogs, today)),
			Total:   securityTotal,
			Percent: security.CompletionPercent(securityLogs, today),
		},
		MaintenanceMonth: len(monthLogs),
		MaintenanceCost:  maintenance.MonthTotal(maintenanceLogs, ym).String(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// monthParam reads ?month=YYYY-MM, defaulting to the current month.
func monthParam(r *http.Request) (record.YearMonth, error) {
	s := r.URL.Query().Get("month")
	if s == "" {
		return record.CurrentYearMonth(), nil
	}
	return record.ParseYearMonth(s)
}

// writeDomainError maps engine errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, record.ErrDuplicateSubmission),
		errors.Is(err, record.ErrValidationRequired),
		errors.Is(err, record.ErrImmutableAfterValidation):
		writeError(w, http.StatusConflict, message, err)
	case errors.Is(err, record.ErrNotFound):
		writeError(w, http.StatusNotFound, message, err)
	case errors.Is(err, record.ErrUnauthorized):
		writeError(w, http.StatusForbidden, message, err)
	case record.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
