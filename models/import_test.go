package models

import (
	"strings"
	"testing"

	"wedding-admin/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGuestCSV(t *testing.T) {
	input := "phone,Name,maxGuests,unknownColumn,numberOfGuests\n" +
		"081234567890, Andi Wijaya ,4,ignored,2\n" +
		"081234567891,Rina,,,\n"

	rows, err := ParseGuestCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Andi Wijaya", rows[0].Name)
	assert.Equal(t, "081234567890", rows[0].Phone)
	assert.Equal(t, "4", rows[0].MaxGuests)
	assert.Equal(t, "2", rows[0].NumberOfGuests)

	assert.Equal(t, "Rina", rows[1].Name)
	assert.Empty(t, rows[1].MaxGuests)
}

func TestParseGuestCSVEmpty(t *testing.T) {
	rows, err := ParseGuestCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestImportGuestsCountsDuplicates(t *testing.T) {
	setupTestDB(t)
	wedding := createTestWedding(t)

	rows := []GuestImportRow{
		{Name: "Andi", Phone: "081234567890"},
		{Name: "Rina", Phone: "081234567891"},
		{Name: "Andi lagi", Phone: "081234567890"},
	}
	result, err := ImportGuests(wedding.ID, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, 3, result.Total)

	var count int64
	db.Instance.Model(&Guest{}).Where("wedding_id = ?", wedding.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestImportGuestsSamePhoneDifferentWedding(t *testing.T) {
	setupTestDB(t)
	first := createTestWedding(t)
	second := Wedding{Name: "Other", Slug: "other", AdminID: first.AdminID}
	require.NoError(t, db.Instance.Create(&second).Error)

	rows := []GuestImportRow{{Name: "Andi", Phone: "081234567890"}}
	for _, w := range []Wedding{first, second} {
		result, err := ImportGuests(w.ID, rows)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created, "phone uniqueness is per wedding")
	}
}

func TestImportGuestsSkipsEmptyNames(t *testing.T) {
	setupTestDB(t)
	wedding := createTestWedding(t)

	rows := []GuestImportRow{
		{Name: "  ", Phone: "081234567890"},
		{Name: "Rina", Phone: "081234567891"},
	}
	result, err := ImportGuests(wedding.ID, rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Total, "blank rows are dropped before counting")
}

func TestImportGuestsDefaults(t *testing.T) {
	setupTestDB(t)
	wedding := createTestWedding(t)

	rows := []GuestImportRow{
		{Name: "Andi", NumberOfGuests: "3"},
		{Name: "Rina", NumberOfGuests: "2", MaxGuests: "5", IsOnlyPemberkatan: "true"},
		{Name: "Tono", NumberOfGuests: "junk", IsOnlyPemberkatan: "1"},
	}
	_, err := ImportGuests(wedding.ID, rows)
	require.NoError(t, err)

	var guests []Guest
	require.NoError(t, db.Instance.Order("id").Find(&guests, "wedding_id = ?", wedding.ID).Error)
	require.Len(t, guests, 3)

	// maxGuests falls back to numberOfGuests when absent
	assert.Equal(t, 3, guests[0].NumberOfGuests)
	assert.Equal(t, 3, guests[0].MaxGuests)
	assert.False(t, guests[0].IsOnlyPemberkatan)
	assert.Nil(t, guests[0].Phone)

	assert.Equal(t, 5, guests[1].MaxGuests)
	assert.True(t, guests[1].IsOnlyPemberkatan)

	assert.Equal(t, 1, guests[2].NumberOfGuests)
	assert.True(t, guests[2].IsOnlyPemberkatan)

	for _, g := range guests {
		require.NotNil(t, g.InvitationCode)
		assert.Len(t, *g.InvitationCode, 10)
		assert.Equal(t, RSVPPending, g.RSVPStatus)
	}
}
