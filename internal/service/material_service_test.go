package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/repository"
)

func TestMaterialFileLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaterialService(repository.NewMaterialRepository(db))

	payload := []byte("%PDF-1.4 fake content")
	created, err := svc.CreateMaterial(dto.MaterialCreateDTO{
		Subject:   "math",
		Topic:     "algebra",
		Title:     "Linear equations",
		File:      base64.StdEncoding.EncodeToString(payload),
		CreatedBy: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, created.File)

	raw, err := svc.GetMaterialFile(created.ID)
	require.NoError(t, err)
	assert.Equal(t, payload, raw)

	all, err := svc.GetAllMaterials()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].File)

	bySubject, err := svc.GetMaterialsBySubject("math")
	require.NoError(t, err)
	require.Len(t, bySubject, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), bySubject[0].File)
}

func TestGetMaterialFileMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaterialService(repository.NewMaterialRepository(db))

	_, err := svc.GetMaterialFile(999)
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := svc.CreateMaterial(dto.MaterialCreateDTO{
		Subject:   "history",
		Title:     "No attachment",
		CreatedBy: 1,
	})
	require.NoError(t, err)

	_, err = svc.GetMaterialFile(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateMaterialInvalidEncoding(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaterialService(repository.NewMaterialRepository(db))

	_, err := svc.CreateMaterial(dto.MaterialCreateDTO{
		Subject:   "math",
		Title:     "Broken",
		File:      "not base64!!",
		CreatedBy: 1,
	})
	assert.Error(t, err)
}

func TestMaterialProgressUpsertAndListing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaterialService(repository.NewMaterialRepository(db))

	created, err := svc.CreateMaterial(dto.MaterialCreateDTO{
		Subject:   "science",
		Title:     "Cells",
		CreatedBy: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpsertProgress(dto.MaterialProgressUpsertDTO{
		UserID:     9,
		MaterialID: created.ID,
		Completed:  false,
	}))
	require.NoError(t, svc.UpsertProgress(dto.MaterialProgressUpsertDTO{
		UserID:     9,
		MaterialID: created.ID,
		Completed:  true,
	}))

	entries, err := svc.GetProgressByUser(9)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Completed)
	assert.Equal(t, "science", entries[0].Subject)

	err = svc.UpsertProgress(dto.MaterialProgressUpsertDTO{UserID: 9, MaterialID: 999})
	assert.ErrorIs(t, err, ErrNotFound)
}
