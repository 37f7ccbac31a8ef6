package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

func TestManufacturer_RecordRename(t *testing.T) {
	m := domain.Manufacturer{ID: uuid.NewString(), ManufacturerName: "Aurum"}

	m.RecordRename("Aurum & Co")
	require.Equal(t, "Aurum & Co", m.ManufacturerName)
	require.NotNil(t, m.PrevNames[0])
	assert.Equal(t, "Aurum", *m.PrevNames[0])
	assert.Nil(t, m.PrevNames[1])

	m.RecordRename("Aurum International")
	require.NotNil(t, m.PrevNames[1])
	assert.Equal(t, "Aurum & Co", *m.PrevNames[0])
	assert.Equal(t, "Aurum", *m.PrevNames[1])

	// A third rename pushes the oldest name out of the ring.
	m.RecordRename("AI Jewels")
	assert.Equal(t, "Aurum International", *m.PrevNames[0])
	assert.Equal(t, "Aurum & Co", *m.PrevNames[1])
	assert.False(t, m.KnownAs("Aurum"))
}

func TestManufacturer_RecordRenameSameNameIsNoop(t *testing.T) {
	m := domain.Manufacturer{ID: uuid.NewString(), ManufacturerName: "Aurum"}
	m.RecordRename("Aurum")

	assert.Equal(t, "Aurum", m.ManufacturerName)
	assert.Nil(t, m.PrevNames[0])
	assert.Nil(t, m.PrevNames[1])
}

func TestManufacturer_KnownAs(t *testing.T) {
	m := domain.Manufacturer{ID: uuid.NewString(), ManufacturerName: "Aurum"}
	m.RecordRename("Aurum & Co")

	assert.True(t, m.KnownAs("Aurum & Co"))
	assert.True(t, m.KnownAs("Aurum"))
	assert.False(t, m.KnownAs("Argentum"))
}
