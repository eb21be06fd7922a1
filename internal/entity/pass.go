package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Category string

const (
	CategoryCargo    Category = "cargo"
	CategoryLandside Category = "landside"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryCargo, CategoryLandside:
		return true
	default:
		return false
	}
}

// Pass is a physical ID card record. PassID is stored as text because legacy
// rows imported from the paper registry may hold non-numeric values; the
// allocator skips those when computing the next number.
type Pass struct {
	ID           uuid.UUID `json:"id"`
	PassID       string    `json:"passId"`
	Category     Category  `json:"category"`
	CNIC         string    `json:"cnic"`
	Name         string    `json:"name"`
	Designation  string    `json:"designation"`
	Organization string    `json:"organization"`
	AreaAllowed  []string  `json:"areaAllowed"`
	DateOfEntry  time.Time `json:"dateOfEntry"`
	DateOfExpiry time.Time `json:"dateOfExpiry"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	AuthorID     uuid.UUID `json:"authorId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PassKey is the uniqueness triple fetched in one round trip before a bulk
// import so per-row checks stay in memory.
type PassKey struct {
	Category Category
	PassID   string
	CNIC     string
}

type PassesSortBy string

func (s PassesSortBy) String() string {
	return string(s)
}

func (s PassesSortBy) IsValid() bool {
	switch s {
	case SortByName, SortByCreatedAt, SortByPassID:
		return true
	default:
		return false
	}
}

const (
	SortByName      PassesSortBy = "name"
	SortByCreatedAt PassesSortBy = "created_at"
	SortByPassID    PassesSortBy = "pass_id"
)

type OrderBy string

func (o OrderBy) String() string {
	return string(o)
}

func (o OrderBy) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	default:
		return false
	}
}

const (
	ASC  OrderBy = "asc"
	DESC OrderBy = "desc"
)

type PassesFilter struct {
	Category Category
	Search   string
	Page     uint64
	Limit    uint64
	SortBy   PassesSortBy
	OrderBy  OrderBy
}

type PassStats struct {
	Total        int `json:"total"`
	Cargo        int `json:"cargo"`
	Landside     int `json:"landside"`
	ExpiringSoon int `json:"expiringSoon"`
	WithoutPhoto int `json:"withoutPhoto"`
}
