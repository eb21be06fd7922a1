package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

// CNIC format: 5-7-1 digit groups, e.g. 35202-1234567-1.
var cnicRe = regexp.MustCompile(`^\d{5}-\d{7}-\d$`)

const dateLayout = "2006-01-02"

// ValidatePass checks the single-record create/update payload.
func ValidatePass(p entity.Pass) error {
	if len(strings.TrimSpace(p.Name)) < 3 {
		return fmt.Errorf("%w: name must be at least 3 characters", entity.ErrIncorrectRequestBody)
	}

	if len(strings.TrimSpace(p.Designation)) < 2 {
		return fmt.Errorf("%w: designation is required", entity.ErrIncorrectRequestBody)
	}

	if len(strings.TrimSpace(p.Organization)) < 2 {
		return fmt.Errorf("%w: organization is required", entity.ErrIncorrectRequestBody)
	}

	if !p.Category.IsValid() {
		return fmt.Errorf("%w: category must be 'cargo' or 'landside'", entity.ErrIncorrectRequestBody)
	}

	if !cnicRe.MatchString(p.CNIC) {
		return fmt.Errorf("%w: invalid CNIC format", entity.ErrIncorrectRequestBody)
	}

	if len(p.AreaAllowed) == 0 {
		return fmt.Errorf("%w: at least one area must be selected", entity.ErrIncorrectRequestBody)
	}

	if p.DateOfEntry.IsZero() {
		return fmt.Errorf("%w: invalid entry date", entity.ErrIncorrectRequestBody)
	}

	if p.DateOfExpiry.IsZero() {
		return fmt.Errorf("%w: invalid expiry date", entity.ErrIncorrectRequestBody)
	}

	return nil
}

// importRowData is a bulk row that survived shape validation, with every
// field normalized and parsed.
type importRowData struct {
	passID       int
	category     entity.Category
	name         string
	designation  string
	organization string
	cnic         string
	areaAllowed  []string
	dateOfEntry  time.Time
	dateOfExpiry time.Time
}

func (d importRowData) toPass(authorID uuid.UUID, passID string, createdAt time.Time) entity.Pass {
	return entity.Pass{
		ID:           uuid.Must(uuid.NewV4()),
		PassID:       passID,
		Category:     d.category,
		CNIC:         d.cnic,
		Name:         d.name,
		Designation:  d.designation,
		Organization: d.organization,
		AreaAllowed:  d.areaAllowed,
		DateOfEntry:  d.dateOfEntry,
		DateOfExpiry: d.dateOfExpiry,
		AuthorID:     authorID,
		CreatedAt:    createdAt,
	}
}

func validateImportRow(row entity.ImportRow) (importRowData, error) {
	var d importRowData

	d.name = strings.TrimSpace(row.Name)
	if d.name == "" {
		return d, fmt.Errorf("name is required")
	}

	d.category = entity.Category(strings.ToLower(strings.TrimSpace(row.Category)))
	if !d.category.IsValid() {
		return d, fmt.Errorf("category must be 'cargo' or 'landside'")
	}

	d.designation = strings.TrimSpace(row.Designation)
	if d.designation == "" {
		return d, fmt.Errorf("designation is required")
	}

	d.organization = strings.TrimSpace(row.Organization)
	if d.organization == "" {
		return d, fmt.Errorf("organization is required")
	}

	d.cnic = strings.TrimSpace(row.CNIC)
	if !cnicRe.MatchString(d.cnic) {
		return d, fmt.Errorf("invalid CNIC format")
	}

	var err error

	d.dateOfEntry, err = time.Parse(dateLayout, row.DateOfEntry)
	if err != nil {
		return d, fmt.Errorf("invalid date of entry format")
	}

	d.dateOfExpiry, err = time.Parse(dateLayout, row.DateOfExpiry)
	if err != nil {
		return d, fmt.Errorf("invalid date of expiry format")
	}

	d.areaAllowed = splitAreas(row.AreaAllowed)

	return d, nil
}

// validateHistoricalRow additionally requires the caller-supplied pass
// number used when backfilling cards issued before the system existed.
func validateHistoricalRow(row entity.ImportRow) (importRowData, error) {
	d, err := validateImportRow(row)
	if err != nil {
		return d, err
	}

	d.passID, err = strconv.Atoi(strings.TrimSpace(row.PassID))
	if err != nil || d.passID <= 0 {
		return d, fmt.Errorf("pass ID must be a positive number")
	}

	return d, nil
}

func splitAreas(s string) []string {
	parts := strings.Split(s, ",")
	areas := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			areas = append(areas, part)
		}
	}

	return areas
}
