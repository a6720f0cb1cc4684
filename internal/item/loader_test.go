package item

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

type fakeItemRepo struct {
	items   map[int]domain.Item
	upserts int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int]domain.Item)}
}

func (f *fakeItemRepo) GetItemByID(_ context.Context, id int) (*domain.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &it, nil
}

func (f *fakeItemRepo) GetItemByName(_ context.Context, name string) (*domain.Item, error) {
	for _, it := range f.items {
		if it.Name == name {
			return &it, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (f *fakeItemRepo) ListItems(_ context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(f.items))
	for _, it := range f.items {
		items = append(items, it)
	}
	return items, nil
}

func (f *fakeItemRepo) UpsertItems(_ context.Context, items []domain.Item) (int, error) {
	for _, it := range items {
		f.items[it.ID] = it
	}
	f.upserts++
	return len(items), nil
}

func TestLoadValidCatalog(t *testing.T) {
	loader := NewLoader()

	config, err := loader.Load(filepath.Join("testdata", "valid_catalog.json"))
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))

	assert.Equal(t, "test", config.Version)
	require.Len(t, config.Items, 2)
	assert.Equal(t, "Ray Gun", config.Items[0].Name)
	assert.Equal(t, 100, config.Items[0].Price)
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Load(filepath.Join("testdata", "no_such_file.json"))
	assert.Error(t, err)
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	loader := NewLoader()

	config, err := loader.Load(filepath.Join("testdata", "duplicate_id.json"))
	require.NoError(t, err)

	err = loader.Validate(config)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestValidateRejectsInvalidFields(t *testing.T) {
	loader := NewLoader()

	config, err := loader.Load(filepath.Join("testdata", "invalid_fields.json"))
	require.NoError(t, err)

	err = loader.Validate(config)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateRejectsDuplicateName(t *testing.T) {
	loader := NewLoader()

	config := &Config{
		Items: []Def{
			{ID: 1, Name: "Twin", Category: "weapon"},
			{ID: 2, Name: "Twin", Category: "helmet"},
		},
	}
	err := loader.Validate(config)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSyncToDatabase(t *testing.T) {
	loader := NewLoader()
	repo := newFakeItemRepo()

	config, err := loader.Load(filepath.Join("testdata", "valid_catalog.json"))
	require.NoError(t, err)

	written, err := loader.SyncToDatabase(context.Background(), config, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	assert.Len(t, repo.items, 2)
}

func TestSyncRejectsInvalidConfig(t *testing.T) {
	loader := NewLoader()
	repo := newFakeItemRepo()

	config := &Config{Items: []Def{{ID: 1, Name: "Twin", Category: "a"}, {ID: 1, Name: "Other", Category: "b"}}}
	_, err := loader.SyncToDatabase(context.Background(), config, repo)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Zero(t, repo.upserts)
}

func TestCatalogLookups(t *testing.T) {
	catalog := NewCatalog([]domain.Item{
		{ID: 2, Name: "Visor", Category: "helmet", Price: 40},
		{ID: 1, Name: "Ray Gun", Category: "weapon", Price: 100},
	})

	byID, err := catalog.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Ray Gun", byID.Name)

	byName, err := catalog.ByName("Visor")
	require.NoError(t, err)
	assert.Equal(t, 2, byName.ID)

	_, err = catalog.ByID(99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	all := catalog.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 2, all[1].ID)
}

func TestLoadCatalogFromRepository(t *testing.T) {
	repo := newFakeItemRepo()
	repo.items[5] = domain.Item{ID: 5, Name: "Drifter Cloak", Category: "cloak", Price: 75}

	catalog, err := LoadCatalog(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Size())

	it, err := catalog.ByName("Drifter Cloak")
	require.NoError(t, err)
	assert.Equal(t, 5, it.ID)
}
