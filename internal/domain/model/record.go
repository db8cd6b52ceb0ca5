// Package model contains domain models passed between layers.
package model

import "time"

// PersonRecord is one row of an input table. Optional fields are empty
// when the source column is missing or blank.
type PersonRecord struct {
	Name        string // full name as written in the source table
	Country     string // short country/team label, e.g. "USA"
	CountryLong string // long country/NOC label, preferred when present
	Discipline  string // sport discipline, e.g. "Fencing"
	MedalType   string // e.g. "Gold Medal"
}

// JoinedRecord is a secondary row whose name resolved to a country.
type JoinedRecord struct {
	Country    string
	Discipline string
	Medal      string
}

// Tables holds the raw input tables a view is computed from. A pipeline
// only reads the tables it needs; the others may be nil.
type Tables struct {
	Athletes   []PersonRecord
	Medallists []PersonRecord
	Medals     []PersonRecord
}

// TableName identifies an input table.
type TableName string

// Known input tables.
const (
	TableAthletes   TableName = "athletes"
	TableMedallists TableName = "medallists"
	TableMedals     TableName = "medals"
)

// RefreshJob asks a worker to recompute one view in the background.
type RefreshJob struct {
	ID          string    `json:"id"`
	View        string    `json:"view"`
	RequestedAt time.Time `json:"requested_at"`
}
