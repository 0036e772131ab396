package screens

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/tadbeerx/admin-console/pkg/backend"
	"github.com/tadbeerx/admin-console/pkg/models"
)

// ErrValidation is returned by Submit when the form fails validation; the
// field-keyed Errors map carries the details and no network call is made.
var ErrValidation = errors.New("form validation failed")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minWorkerAge = 18
	maxWorkerAge = 65
)

// WorkerForm is the working copy of a worker profile while it is being
// created or edited. It mirrors the entity's nested shape and is discarded
// on navigation; the remote response is the only durable state.
type WorkerForm struct {
	client *backend.Client

	// WorkerID is empty for a create form and set for an edit form.
	WorkerID string

	PersonalInfo     models.PersonalInfo
	ProfessionalInfo models.ProfessionalInfo
	FieldVisibility  models.FieldVisibility
	Status           string
	ApprovalStatus   string
	Featured         bool

	// Errors is keyed by field name; Submit is only attempted when empty.
	Errors     map[string]string
	Submitting bool
}

// NewWorkerForm returns a create form with the default visibility: contact
// details hidden, everything else shown.
func NewWorkerForm(client *backend.Client) *WorkerForm {
	return &WorkerForm{
		client: client,
		FieldVisibility: models.FieldVisibility{
			PersonalInfo: models.PersonalVisibility{
				FirstName:   true,
				LastName:    true,
				Age:         true,
				Nationality: true,
				Phone:       false,
				Email:       false,
			},
			ProfessionalInfo: models.ProfessionalVisibility{
				Skills:         true,
				Languages:      true,
				Experience:     true,
				AdditionalInfo: true,
			},
		},
		Status:         models.WorkerAvailable,
		ApprovalStatus: models.ApprovalPending,
		Errors:         map[string]string{},
	}
}

// LoadWorker turns the form into an edit form populated from the remote
// profile.
func (f *WorkerForm) LoadWorker(ctx context.Context, id string) error {
	w, err := f.client.GetWorker(ctx, id)
	if err != nil {
		return err
	}
	f.WorkerID = w.ID
	f.PersonalInfo = w.PersonalInfo
	f.ProfessionalInfo = w.ProfessionalInfo
	f.FieldVisibility = w.FieldVisibility
	f.Status = w.Status
	f.ApprovalStatus = w.ApprovalStatus
	f.Featured = w.Featured
	f.Errors = map[string]string{}
	return nil
}

// ToggleSkill adds or removes one skill from the selection.
func (f *WorkerForm) ToggleSkill(skillID string) {
	f.ProfessionalInfo.SkillIDs = toggleValue(f.ProfessionalInfo.SkillIDs, skillID)
}

// ToggleLanguage adds or removes one language from the selection.
func (f *WorkerForm) ToggleLanguage(languageID string) {
	f.ProfessionalInfo.LanguageIDs = toggleValue(f.ProfessionalInfo.LanguageIDs, languageID)
}

// Validate populates the field error map and reports whether the form may be
// submitted. It runs entirely locally; failing rules never reach the server.
func (f *WorkerForm) Validate() bool {
	errs := map[string]string{}

	if strings.TrimSpace(f.PersonalInfo.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(f.PersonalInfo.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if age := f.PersonalInfo.Age; age != nil && (*age < minWorkerAge || *age > maxWorkerAge) {
		errs["age"] = "Age must be between 18 and 65"
	}
	if email := f.PersonalInfo.Email; email != "" && !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}
	if len(f.ProfessionalInfo.SkillIDs) == 0 {
		errs["skills"] = "At least one skill is required"
	}
	if exp := f.ProfessionalInfo.Experience; exp != nil && *exp < 0 {
		errs["experience"] = "Experience cannot be negative"
	}

	f.Errors = errs
	return len(errs) == 0
}

// Submit creates or updates the worker depending on whether the form already
// has an id. Validation failure blocks submission with ErrValidation.
func (f *WorkerForm) Submit(ctx context.Context) (*models.Worker, error) {
	if !f.Validate() {
		return nil, ErrValidation
	}

	f.Submitting = true
	defer func() { f.Submitting = false }()

	if f.WorkerID == "" {
		draft := &models.Worker{
			PersonalInfo:     f.PersonalInfo,
			ProfessionalInfo: f.ProfessionalInfo,
			FieldVisibility:  f.FieldVisibility,
			Status:           f.Status,
			ApprovalStatus:   f.ApprovalStatus,
			Featured:         f.Featured,
		}
		w, err := f.client.CreateWorker(ctx, draft)
		if err != nil {
			f.Errors["submit"] = err.Error()
			return nil, err
		}
		f.WorkerID = w.ID
		return w, nil
	}

	fields := map[string]any{
		"personalInfo":     f.PersonalInfo,
		"professionalInfo": f.ProfessionalInfo,
		"fieldVisibility":  f.FieldVisibility,
		"status":           f.Status,
		"approvalStatus":   f.ApprovalStatus,
		"featured":         f.Featured,
	}
	w, err := f.client.UpdateWorker(ctx, f.WorkerID, fields)
	if err != nil {
		f.Errors["submit"] = err.Error()
		return nil, err
	}
	return w, nil
}
