package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocationAcceptsAllFourTypes(t *testing.T) {
	_, locations := newTestRepos(t)

	for _, typ := range []string{"Fridge", "Shelf", "Pantry", "Storage"} {
		location, err := locations.Create(CreateLocationInput{Name: "My " + typ, Type: typ})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, location.ID)
		assert.Equal(t, typ, location.Type)
	}

	list, err := locations.List()
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestCreateLocationTrims(t *testing.T) {
	_, locations := newTestRepos(t)

	location, err := locations.Create(CreateLocationInput{Name: "  Garage  ", Type: " Storage "})
	require.NoError(t, err)
	assert.Equal(t, "Garage", location.Name)
	assert.Equal(t, "Storage", location.Type)
}

func TestCreateLocationValidation(t *testing.T) {
	_, locations := newTestRepos(t)

	tests := []struct {
		name  string
		input CreateLocationInput
	}{
		{"missing name", CreateLocationInput{Type: "Fridge"}},
		{"missing type", CreateLocationInput{Name: "Garage"}},
		{"unknown type", CreateLocationInput{Name: "Garage", Type: "Basement"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := locations.Create(tc.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateLocationRenameCascadesToItems(t *testing.T) {
	items, locations := newTestRepos(t)

	location, err := locations.Create(CreateLocationInput{Name: "Garage", Type: "Storage"})
	require.NoError(t, err)

	_, _, err = items.Create(CreateItemInput{Name: "Water", Quantity: 4, Location: "Garage"})
	require.NoError(t, err)
	_, _, err = items.Create(CreateItemInput{Name: "Beans", Quantity: 2, Location: "Pantry"})
	require.NoError(t, err)

	updated, err := locations.Update(location.ID.String(), UpdateLocationInput{Name: "Garage2"})
	require.NoError(t, err)
	assert.Equal(t, "Garage2", updated.Name)
	assert.Equal(t, "Storage", updated.Type, "type is untouched by a rename")

	list, err := items.List()
	require.NoError(t, err)
	for _, it := range list {
		assert.NotEqual(t, "Garage", it.Location, "no item may keep the old name")
	}
	assert.Equal(t, "Garage2", list[0].Location)
	assert.Equal(t, "Pantry", list[1].Location, "other locations are unaffected")
}

func TestUpdateLocationTypeOnly(t *testing.T) {
	items, locations := newTestRepos(t)

	location, err := locations.Create(CreateLocationInput{Name: "Top Shelf", Type: "Shelf"})
	require.NoError(t, err)
	_, _, err = items.Create(CreateItemInput{Name: "Flour", Quantity: 1, Location: "Top Shelf"})
	require.NoError(t, err)

	updated, err := locations.Update(location.ID.String(), UpdateLocationInput{Type: "Pantry"})
	require.NoError(t, err)
	assert.Equal(t, "Pantry", updated.Type)
	assert.Equal(t, "Top Shelf", updated.Name)

	list, err := items.List()
	require.NoError(t, err)
	assert.Equal(t, "Top Shelf", list[0].Location)
}

// The update path accepts a narrower type set than create: "Storage" can be
// created but not assigned on update.
func TestUpdateLocationRejectsStorageType(t *testing.T) {
	_, locations := newTestRepos(t)

	location, err := locations.Create(CreateLocationInput{Name: "Garage", Type: "Storage"})
	require.NoError(t, err)

	_, err = locations.Update(location.ID.String(), UpdateLocationInput{Type: "Storage"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateLocationNotFound(t *testing.T) {
	_, locations := newTestRepos(t)

	_, err := locations.Update(uuid.NewString(), UpdateLocationInput{Name: "Garage2"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLocationMalformedID(t *testing.T) {
	_, locations := newTestRepos(t)

	_, err := locations.Update("garage", UpdateLocationInput{Name: "Garage2"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDeleteLocationCascadesToItems(t *testing.T) {
	items, locations := newTestRepos(t)

	location, err := locations.Create(CreateLocationInput{Name: "Fridge", Type: "Fridge"})
	require.NoError(t, err)

	for _, in := range []CreateItemInput{
		{Name: "Milk", Quantity: 1, Location: "Fridge"},
		{Name: "Eggs", Quantity: 6, Location: "Fridge"},
		{Name: "Butter", Quantity: 1, Location: "Fridge"},
		{Name: "Beans", Quantity: 2, Location: "Pantry"},
	} {
		_, _, err := items.Create(in)
		require.NoError(t, err)
	}

	deleted, removed, err := locations.Delete(location.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Fridge", deleted.Name)
	assert.EqualValues(t, 3, removed)

	list, err := items.List()
	require.NoError(t, err)
	require.Len(t, list, 1, "only the dependent items are removed")
	assert.Equal(t, "Pantry", list[0].Location)

	remaining, err := locations.List()
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteLocationWithoutItems(t *testing.T) {
	_, locations := newTestRepos(t)

	location, err := locations.Create(CreateLocationInput{Name: "Garage", Type: "Storage"})
	require.NoError(t, err)

	deleted, removed, err := locations.Delete(location.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Garage", deleted.Name)
	assert.Zero(t, removed)
}

func TestDeleteLocationNotFound(t *testing.T) {
	_, locations := newTestRepos(t)

	_, _, err := locations.Delete(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLocationMalformedID(t *testing.T) {
	_, locations := newTestRepos(t)

	_, _, err := locations.Delete("oops")
	assert.ErrorIs(t, err, ErrInvalidID)
}
