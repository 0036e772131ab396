package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tadbeerx/admin-console/pkg/models"
)

// ReferenceData fetches all three lookup tables in one call, used to populate
// worker profile dropdowns.
func (c *Client) ReferenceData(ctx context.Context) (*models.ReferenceData, error) {
	var out models.ReferenceData
	if err := c.do(ctx, http.MethodGet, "/api/reference", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func activeQuery(activeOnly bool) url.Values {
	if !activeOnly {
		return nil
	}
	q := url.Values{}
	q.Set("active", "true")
	return q
}

// NationalityInput carries create/update fields for a nationality. Pointers
// are omitted when nil so the same type serves partial updates.
type NationalityInput struct {
	Name         string `json:"name,omitempty"`
	DisplayOrder *int   `json:"displayOrder,omitempty"`
	Active       *bool  `json:"active,omitempty"`
}

func (c *Client) ListNationalities(ctx context.Context, activeOnly bool) ([]models.Nationality, error) {
	var out struct {
		Nationalities []models.Nationality `json:"nationalities"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reference/nationalities", activeQuery(activeOnly), nil, &out); err != nil {
		return nil, err
	}
	return out.Nationalities, nil
}

func (c *Client) CreateNationality(ctx context.Context, in NationalityInput) (*models.Nationality, error) {
	var out struct {
		Nationality models.Nationality `json:"nationality"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/reference/nationalities", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Nationality, nil
}

func (c *Client) UpdateNationality(ctx context.Context, id string, in NationalityInput) (*models.Nationality, error) {
	var out struct {
		Nationality models.Nationality `json:"nationality"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/reference/nationalities/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Nationality, nil
}

func (c *Client) DeleteNationality(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reference/nationalities/"+id, nil, nil, nil)
}

type SkillInput struct {
	Name         string `json:"name,omitempty"`
	Category     string `json:"category,omitempty"`
	DisplayOrder *int   `json:"displayOrder,omitempty"`
	Active       *bool  `json:"active,omitempty"`
}

func (c *Client) ListSkills(ctx context.Context, activeOnly bool) ([]models.Skill, error) {
	var out struct {
		Skills []models.Skill `json:"skills"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reference/skills", activeQuery(activeOnly), nil, &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

func (c *Client) CreateSkill(ctx context.Context, in SkillInput) (*models.Skill, error) {
	var out struct {
		Skill models.Skill `json:"skill"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/reference/skills", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Skill, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, in SkillInput) (*models.Skill, error) {
	var out struct {
		Skill models.Skill `json:"skill"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/reference/skills/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Skill, nil
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reference/skills/"+id, nil, nil, nil)
}

type LanguageInput struct {
	Name         string `json:"name,omitempty"`
	DisplayOrder *int   `json:"displayOrder,omitempty"`
	Active       *bool  `json:"active,omitempty"`
}

func (c *Client) ListLanguages(ctx context.Context, activeOnly bool) ([]models.Language, error) {
	var out struct {
		Languages []models.Language `json:"languages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reference/languages", activeQuery(activeOnly), nil, &out); err != nil {
		return nil, err
	}
	return out.Languages, nil
}

func (c *Client) CreateLanguage(ctx context.Context, in LanguageInput) (*models.Language, error) {
	var out struct {
		Language models.Language `json:"language"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/reference/languages", nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Language, nil
}

func (c *Client) UpdateLanguage(ctx context.Context, id string, in LanguageInput) (*models.Language, error) {
	var out struct {
		Language models.Language `json:"language"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/reference/languages/"+id, nil, in, &out); err != nil {
		return nil, err
	}
	return &out.Language, nil
}

func (c *Client) DeleteLanguage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reference/languages/"+id, nil, nil, nil)
}
