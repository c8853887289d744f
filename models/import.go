package models

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"wedding-admin/db"

	"gorm.io/gorm"
)

// GuestImportRow is one raw CSV row. All fields are kept as strings;
// parsing defaults are applied at import time.
type GuestImportRow struct {
	Name              string
	Email             string
	Phone             string
	NumberOfGuests    string
	MaxGuests         string
	IsOnlyPemberkatan string
	Notes             string
}

type ImportResult struct {
	Created    int `json:"count"`
	Duplicates int `json:"duplicates"`
	Total      int `json:"total"`
}

// ParseGuestCSV reads a header-driven CSV with the columns
// name, email, phone, numberOfGuests, maxGuests, isOnlyPemberkatan, notes.
// Unknown columns are ignored; column order does not matter.
func ParseGuestCSV(r io.Reader) ([]GuestImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []GuestImportRow{}, nil
	}
	index := map[string]int{}
	for i, col := range records[0] {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	rows := make([]GuestImportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, GuestImportRow{
			Name:              field(record, "name"),
			Email:             field(record, "email"),
			Phone:             field(record, "phone"),
			NumberOfGuests:    field(record, "numberofguests"),
			MaxGuests:         field(record, "maxguests"),
			IsOnlyPemberkatan: field(record, "isonlypemberkatan"),
			Notes:             field(record, "notes"),
		})
	}
	return rows, nil
}

// ImportGuests creates one guest per row. Rows with an empty name are
// dropped before counting. A duplicate phone or invitation code skips the
// row and counts it separately; any other error aborts the batch.
func ImportGuests(weddingID uint64, rows []GuestImportRow) (ImportResult, error) {
	result := ImportResult{}
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			continue
		}
		result.Total++
		numberOfGuests := parseCount(row.NumberOfGuests)
		maxGuests := parseCount(row.MaxGuests)
		if row.MaxGuests == "" {
			maxGuests = numberOfGuests
		}
		code := GenerateInvitationCode()
		guest := Guest{
			WeddingID:         weddingID,
			Name:              strings.TrimSpace(row.Name),
			Email:             optional(row.Email),
			Phone:             optional(row.Phone),
			NumberOfGuests:    numberOfGuests,
			MaxGuests:         maxGuests,
			IsOnlyPemberkatan: row.IsOnlyPemberkatan == "true" || row.IsOnlyPemberkatan == "1",
			Notes:             strings.TrimSpace(row.Notes),
			RSVPStatus:        RSVPPending,
			InvitationCode:    &code,
		}
		err := db.Instance.Create(&guest).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			result.Duplicates++
			continue
		}
		if err != nil {
			return result, err
		}
		result.Created++
	}
	return result, nil
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
