package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dstepanenko/applytrack-backend/internal/domain"
	"github.com/dstepanenko/applytrack-backend/internal/service/resume"
)

// resumeService defines the minimal interface needed by ResumeHandler.
type resumeService interface {
	SaveResume(ctx context.Context, input resume.SaveResumeInput) (*resume.SaveResumeResult, error)
	ChangeStatus(ctx context.Context, input resume.ChangeStatusInput) error
	GetResume(ctx context.Context, resumeID int64) (*domain.ResumeView, error)
	ListResumes(ctx context.Context, filter domain.ResumeFilter) ([]*domain.ResumeView, error)
	ListHistory(ctx context.Context, resumeID int64) ([]domain.HistoryEntry, error)
	ListStates(ctx context.Context) ([]domain.State, error)
}

// ResumeHandler serves resume REST endpoints.
type ResumeHandler struct {
	svc resumeService
	log *slog.Logger
}

// NewResumeHandler creates a ResumeHandler.
func NewResumeHandler(svc resumeService, logger *slog.Logger) *ResumeHandler {
	return &ResumeHandler{svc: svc, log: logger.With("handler", "resume")}
}

// companyPayload is the embedded company sub-document on the wire.
// ID 0 creates a new company, a positive id updates an existing one,
// a negative id (or an absent object) means no company.
type companyPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	PostalCode  string `json:"postalCode"`
	IsRecruiter bool   `json:"isRecruiter"`
}

// contactPayload is the embedded contact sub-document on the wire,
// with the same id convention as companyPayload.
type contactPayload struct {
	ID           int64   `json:"id"`
	GivenName    string  `json:"givenName"`
	FamilyName   string  `json:"familyName"`
	Email        string  `json:"email"`
	SalutationID int64   `json:"salutationId"`
	Title        *string `json:"title,omitempty"`
	Suffix       *string `json:"suffix,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Mobile       *string `json:"mobile,omitempty"`
}

type saveResumeRequest struct {
	ID       int64  `json:"id"`
	Position string `json:"position"`
	StateID  *int64 `json:"stateId"`
	Link     string `json:"link"`
	Comment  string `json:"comment"`

	Company           *companyPayload `json:"company,omitempty"`
	RecruitingCompany *companyPayload `json:"recruitingCompany,omitempty"`
	Contact           *contactPayload `json:"contact,omitempty"`
	RecruitingContact *contactPayload `json:"recruitingContact,omitempty"`
}

type saveResumeResponse struct {
	ID                  int64  `json:"id"`
	CompanyID           *int64 `json:"companyId,omitempty"`
	RecruitingCompanyID *int64 `json:"recruitingCompanyId,omitempty"`
	ContactID           *int64 `json:"contactId,omitempty"`
	RecruitingContactID *int64 `json:"recruitingContactId,omitempty"`
}

type changeStatusRequest struct {
	StateID *int64 `json:"stateId"`
	Date    string `json:"date"`
}

type companyResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	PostalCode  string `json:"postalCode"`
	IsRecruiter bool   `json:"isRecruiter"`
}

type contactResponse struct {
	ID           int64   `json:"id"`
	CompanyID    int64   `json:"companyId"`
	GivenName    string  `json:"givenName"`
	FamilyName   string  `json:"familyName"`
	Email        string  `json:"email"`
	SalutationID int64   `json:"salutationId"`
	Title        *string `json:"title,omitempty"`
	Suffix       *string `json:"suffix,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Mobile       *string `json:"mobile,omitempty"`
}

type resumeResponse struct {
	ID       int64     `json:"id"`
	Position string    `json:"position"`
	StateID  int64     `json:"stateId"`
	State    string    `json:"state"`
	Link     string    `json:"link"`
	Comment  string    `json:"comment"`
	Created  time.Time `json:"createdAt"`

	Company           *companyResponse `json:"company,omitempty"`
	RecruitingCompany *companyResponse `json:"recruitingCompany,omitempty"`
	Contact           *contactResponse `json:"contact,omitempty"`
	RecruitingContact *contactResponse `json:"recruitingContact,omitempty"`
}

type historyEntryResponse struct {
	ID      int64  `json:"id"`
	StateID int64  `json:"stateId"`
	Date    string `json:"date"`
}

type stateResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Save handles POST /resumes: one atomic aggregate save of the resume and
// its embedded company/contact sub-documents.
func (h *ResumeHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SaveResume(r.Context(), toSaveInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, saveResumeResponse{
		ID:                  result.ResumeID,
		CompanyID:           result.CompanyID,
		RecruitingCompanyID: result.ParentCompanyID,
		ContactID:           result.ContactCompanyID,
		RecruitingContactID: result.ContactParentCompanyID,
	})
}

// Get handles GET /resumes/{id}.
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	view, err := h.svc.GetResume(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toResumeResponse(view))
}

// List handles GET /resumes with optional filter query parameters.
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	views, err := h.svc.ListResumes(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]resumeResponse, len(views))
	for i, v := range views {
		resp[i] = toResumeResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ChangeStatus handles PATCH /resumes/{id}/status.
func (h *ResumeHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	var req changeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}

	err = h.svc.ChangeStatus(r.Context(), resume.ChangeStatusInput{
		ResumeID: id,
		StateID:  req.StateID,
		Date:     date,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// History handles GET /resumes/{id}/history.
func (h *ResumeHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resume id")
		return
	}

	entries, err := h.svc.ListHistory(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = historyEntryResponse{
			ID:      e.ID,
			StateID: e.StateID,
			Date:    e.Date.Format("2006-01-02"),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// States handles GET /states.
func (h *ResumeHandler) States(w http.ResponseWriter, r *http.Request) {
	states, err := h.svc.ListStates(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]stateResponse, len(states))
	for i, s := range states {
		resp[i] = stateResponse{ID: s.ID, Name: s.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func parseFilter(r *http.Request) (domain.ResumeFilter, error) {
	var filter domain.ResumeFilter
	q := r.URL.Query()

	if v := q.Get("stateId"); v != "" {
		stateID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errInvalidQuery("stateId")
		}
		filter.StateID = &stateID
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	filter.SortBy = q.Get("sortBy")
	filter.SortOrder = q.Get("sortOrder")

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return filter, errInvalidQuery("limit")
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return filter, errInvalidQuery("offset")
		}
		filter.Offset = offset
	}

	return filter, nil
}

type queryError string

func (e queryError) Error() string { return "invalid query parameter: " + string(e) }

func errInvalidQuery(param string) error { return queryError(param) }

func toSaveInput(req saveResumeRequest) resume.SaveResumeInput {
	return resume.SaveResumeInput{
		ResumeID: req.ID,
		Position: req.Position,
		StateID:  req.StateID,
		Link:     req.Link,
		Comment:  req.Comment,

		Company:                  toCompanyRef(req.Company),
		RecruitingCompany:        toCompanyRef(req.RecruitingCompany),
		ContactCompany:           toContactRef(req.Contact),
		ContactRecruitingCompany: toContactRef(req.RecruitingContact),
	}
}

func toCompanyRef(p *companyPayload) *domain.CompanyRef {
	if p == nil {
		return nil
	}
	return domain.CompanyRefFromID(p.ID, domain.CompanyData{
		Name:        p.Name,
		City:        p.City,
		Street:      p.Street,
		HouseNumber: p.HouseNumber,
		PostalCode:  p.PostalCode,
		IsRecruiter: p.IsRecruiter,
	})
}

func toContactRef(p *contactPayload) *domain.ContactRef {
	if p == nil {
		return nil
	}
	return domain.ContactRefFromID(p.ID, domain.ContactData{
		GivenName:    p.GivenName,
		FamilyName:   p.FamilyName,
		Email:        p.Email,
		SalutationID: p.SalutationID,
		Title:        p.Title,
		Suffix:       p.Suffix,
		Phone:        p.Phone,
		Mobile:       p.Mobile,
	})
}

func toResumeResponse(v *domain.ResumeView) resumeResponse {
	return resumeResponse{
		ID:       v.ID,
		Position: v.Position,
		StateID:  v.StateID,
		State:    v.State,
		Link:     v.Link,
		Comment:  v.Comment,
		Created:  v.Created,

		Company:           toCompanyResponse(v.Company),
		RecruitingCompany: toCompanyResponse(v.RecruitingCompany),
		Contact:           toContactResponse(v.ContactCompany),
		RecruitingContact: toContactResponse(v.ContactRecruitingCompany),
	}
}

func toCompanyResponse(v *domain.CompanyView) *companyResponse {
	if v == nil {
		return nil
	}
	return &companyResponse{
		ID:          v.ID,
		Name:        v.Name,
		City:        v.City,
		Street:      v.Street,
		HouseNumber: v.HouseNumber,
		PostalCode:  v.PostalCode,
		IsRecruiter: v.IsRecruiter,
	}
}

func toContactResponse(v *domain.ContactView) *contactResponse {
	if v == nil {
		return nil
	}
	return &contactResponse{
		ID:           v.ID,
		CompanyID:    v.CompanyID,
		GivenName:    v.GivenName,
		FamilyName:   v.FamilyName,
		Email:        v.Email,
		SalutationID: v.SalutationID,
		Title:        v.Title,
		Suffix:       v.Suffix,
		Phone:        v.Phone,
		Mobile:       v.Mobile,
	}
}
