package screens

import (
	"context"
	"sync"

	"github.com/tadbeerx/admin-console/pkg/backend"
	"github.com/tadbeerx/admin-console/pkg/models"
)

// Reference tab names.
const (
	TabNationalities = "nationalities"
	TabSkills        = "skills"
	TabLanguages     = "languages"
)

// Reference is the state controller for the reference-data screen: three
// lookup tables behind tabs, sharing one loading/error state.
type Reference struct {
	client *backend.Client

	mu  sync.Mutex
	gen uint64

	Tab        string
	ActiveOnly bool

	Nationalities []models.Nationality
	Skills        []models.Skill
	Languages     []models.Language

	Loading bool
	Err     string
}

func NewReference(client *backend.Client) *Reference {
	return &Reference{client: client, Tab: TabNationalities}
}

// SetTab switches the visible tab. Unknown names keep the current tab.
func (s *Reference) SetTab(tab string) {
	switch tab {
	case TabNationalities, TabSkills, TabLanguages:
		s.mu.Lock()
		s.Tab = tab
		s.mu.Unlock()
	}
}

// Load refreshes all three tables from the combined endpoint.
func (s *Reference) Load(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.Loading = true
	s.Err = ""
	s.mu.Unlock()

	ref, err := s.client.ReferenceData(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.Loading = false
	if err != nil {
		s.Err = errMessage(err)
		return
	}
	s.Nationalities = ref.Nationalities
	s.Skills = ref.Skills
	s.Languages = ref.Languages
}

func (s *Reference) mutate(ctx context.Context, call func(ctx context.Context) error) {
	if err := call(ctx); err != nil {
		s.mu.Lock()
		s.Err = errMessage(err)
		s.mu.Unlock()
		return
	}
	s.Load(ctx)
}

func (s *Reference) CreateNationality(ctx context.Context, in backend.NationalityInput) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.CreateNationality(ctx, in)
		return err
	})
}

func (s *Reference) UpdateNationality(ctx context.Context, id string, in backend.NationalityInput) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.UpdateNationality(ctx, id, in)
		return err
	})
}

// ToggleNationalityActive flips the active flag; reference rows are
// deactivated rather than deleted in most flows.
func (s *Reference) ToggleNationalityActive(ctx context.Context, id string, active bool) {
	next := !active
	s.UpdateNationality(ctx, id, backend.NationalityInput{Active: &next})
}

func (s *Reference) DeleteNationality(ctx context.Context, id string) {
	s.mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteNationality(ctx, id)
	})
}

func (s *Reference) CreateSkill(ctx context.Context, in backend.SkillInput) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.CreateSkill(ctx, in)
		return err
	})
}

func (s *Reference) UpdateSkill(ctx context.Context, id string, in backend.SkillInput) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.UpdateSkill(ctx, id, in)
		return err
	})
}

func (s *Reference) ToggleSkillActive(ctx context.Context, id string, active bool) {
	next := !active
	s.UpdateSkill(ctx, id, backend.SkillInput{Active: &next})
}

func (s *Reference) DeleteSkill(ctx context.Context, id string) {
	s.mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteSkill(ctx, id)
	})
}

func (s *Reference) CreateLanguage(ctx context.Context, in backend.LanguageInput) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.CreateLanguage(ctx, in)
		return err
	})
}

func (s *Reference) UpdateLanguage(ctx context.Context, id string, in backend.LanguageInput) {
	s.mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.UpdateLanguage(ctx, id, in)
		return err
	})
}

func (s *Reference) ToggleLanguageActive(ctx context.Context, id string, active bool) {
	next := !active
	s.UpdateLanguage(ctx, id, backend.LanguageInput{Active: &next})
}

func (s *Reference) DeleteLanguage(ctx context.Context, id string) {
	s.mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteLanguage(ctx, id)
	})
}
