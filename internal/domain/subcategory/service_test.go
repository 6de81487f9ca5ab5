package subcategory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
)

// --- Mock implementation ---

type mockRepo struct {
	byID     map[string]*SubCategory
	byName   map[string]*SubCategory
	inserted []*SubCategory
	updated  []*SubCategory
}

func newMockRepo(subs ...SubCategory) *mockRepo {
	m := &mockRepo{
		byID:   make(map[string]*SubCategory, len(subs)),
		byName: make(map[string]*SubCategory, len(subs)),
	}
	for i := range subs {
		m.byID[subs[i].ID] = &subs[i]
		m.byName[subs[i].Name] = &subs[i]
	}
	return m
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*SubCategory, error) {
	sc, ok := m.byID[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return sc, nil
}

func (m *mockRepo) GetByName(_ context.Context, name string) (*SubCategory, error) {
	sc, ok := m.byName[name]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return sc, nil
}

func (m *mockRepo) GetByIDOrName(_ context.Context, id, name string) (*SubCategory, error) {
	if sc, ok := m.byID[id]; ok {
		return sc, nil
	}
	if sc, ok := m.byName[name]; ok {
		return sc, nil
	}
	return nil, catalog.ErrNotFound
}

func (m *mockRepo) List(_ context.Context) ([]SubCategory, error) {
	subs := make([]SubCategory, 0, len(m.byID))
	for _, sc := range m.byID {
		subs = append(subs, *sc)
	}
	return subs, nil
}

func (m *mockRepo) ListByCategory(_ context.Context, categoryID string) ([]SubCategory, error) {
	var subs []SubCategory
	for _, sc := range m.byID {
		if sc.CategoryID == categoryID {
			subs = append(subs, *sc)
		}
	}
	return subs, nil
}

func (m *mockRepo) Insert(_ context.Context, sc *SubCategory) error {
	m.inserted = append(m.inserted, sc)
	return nil
}

func (m *mockRepo) Update(_ context.Context, sc *SubCategory) error {
	m.updated = append(m.updated, sc)
	return nil
}

// --- Helpers ---

func boolPtr(b bool) *bool { return &b }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validPayload(name string) Payload {
	return Payload{
		Name:          name,
		Image:         "https://cdn.example.com/sub.jpg",
		Description:   "d",
		TaxApplicable: boolPtr(false),
	}
}

// --- Tests ---

func TestCreate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	sc, err := svc.Create(context.Background(), "c1", validPayload("Hot Drinks"))
	require.NoError(t, err)

	assert.NotEmpty(t, sc.ID)
	assert.Equal(t, "Hot Drinks", sc.Name)
	assert.Equal(t, "c1", sc.CategoryID)
	assert.False(t, sc.TaxApplicable)
	assert.Nil(t, sc.Tax)
	require.Len(t, repo.inserted, 1)
}

// The owning category is taken from the route as given; it is not checked for
// existence, so an unknown id still yields a sub-category pointing at it.
func TestCreate_UnknownCategoryAccepted(t *testing.T) {
	svc := NewService(newMockRepo())

	sc, err := svc.Create(context.Background(), "no-such-category", validPayload("Orphans"))
	require.NoError(t, err)
	assert.Equal(t, "no-such-category", sc.CategoryID)
}

func TestCreate_DuplicateName(t *testing.T) {
	existing := SubCategory{ID: "sc1", Name: "Hot Drinks", CategoryID: "c1"}
	repo := newMockRepo(existing)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "c2", validPayload("Hot Drinks"))

	var dup *catalog.AlreadyExistsError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "sub-category", dup.Entity)
	assert.Empty(t, repo.inserted)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Payload)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(p *Payload) { p.Name = "" },
			wantField: "name",
		},
		{
			name:      "bad image URL",
			mutate:    func(p *Payload) { p.Image = "not-a-url" },
			wantField: "image",
		},
		{
			name:      "missing tax_applicable",
			mutate:    func(p *Payload) { p.TaxApplicable = nil },
			wantField: "tax_applicable",
		},
		{
			name:      "applicable but tax absent",
			mutate:    func(p *Payload) { p.TaxApplicable = boolPtr(true) },
			wantField: "tax",
		},
		{
			name:      "not applicable but tax present",
			mutate:    func(p *Payload) { p.Tax = decPtr("5") },
			wantField: "tax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			svc := NewService(repo)

			p := validPayload("Hot Drinks")
			tt.mutate(&p)

			_, err := svc.Create(context.Background(), "c1", p)

			var verr *catalog.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Empty(t, repo.inserted)
		})
	}
}

func TestUpdate(t *testing.T) {
	existing := SubCategory{ID: "sc1", Name: "Hot Drinks", CategoryID: "c1", TaxApplicable: true, Tax: decPtr("5")}
	repo := newMockRepo(existing)
	svc := NewService(repo)

	p := validPayload("Warm Drinks")
	sc, err := svc.Update(context.Background(), "sc1", "c1", p)
	require.NoError(t, err)

	assert.Equal(t, "sc1", sc.ID)
	assert.Equal(t, "Warm Drinks", sc.Name)
	assert.Nil(t, sc.Tax, "full replace drops the previous tax")
	require.Len(t, repo.updated, 1)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "missing", "c1", validPayload("Hot Drinks"))
	require.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Empty(t, repo.updated)
}

func TestGetByIDOrName(t *testing.T) {
	existing := SubCategory{ID: "sc1", Name: "Hot Drinks", CategoryID: "c1"}

	t.Run("neither supplied", func(t *testing.T) {
		svc := NewService(newMockRepo(existing))
		_, err := svc.GetByIDOrName(context.Background(), "", "")
		require.ErrorIs(t, err, catalog.ErrMissingLookup)
	})

	t.Run("by id", func(t *testing.T) {
		svc := NewService(newMockRepo(existing))
		sc, err := svc.GetByIDOrName(context.Background(), "sc1", "")
		require.NoError(t, err)
		assert.Equal(t, "Hot Drinks", sc.Name)
	})

	t.Run("no match", func(t *testing.T) {
		svc := NewService(newMockRepo(existing))
		_, err := svc.GetByIDOrName(context.Background(), "sc9", "Nope")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestListByCategory(t *testing.T) {
	subs := []SubCategory{
		{ID: "sc1", Name: "Hot Drinks", CategoryID: "c1"},
		{ID: "sc2", Name: "Cold Drinks", CategoryID: "c1"},
		{ID: "sc3", Name: "Cakes", CategoryID: "c2"},
	}
	svc := NewService(newMockRepo(subs...))

	got, err := svc.ListByCategory(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := svc.ListByCategory(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
