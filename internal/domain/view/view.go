// Package view shapes joined medal records into the payloads of the flow
// diagram, the heatmap and the choropleth.
package view

import (
	"errors"
	"fmt"

	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/join"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/names"
)

// Kind names one visualisation.
type Kind string

const (
	KindFlow       Kind = "flow"
	KindHeatmap    Kind = "heatmap"
	KindChoropleth Kind = "choropleth"
)

// Kinds lists every view kind in a stable order.
var Kinds = []Kind{KindFlow, KindHeatmap, KindChoropleth}

// ErrUnknownKind is returned by ParseKind for unsupported names.
var ErrUnknownKind = errors.New("unknown view kind")

// ParseKind validates s as a view kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Tables returns the roster and the medals table a kind is computed from.
func (k Kind) Tables() (roster, medals model.TableName) {
	if k == KindFlow {
		return model.TableMedallists, model.TableMedals
	}
	return model.TableAthletes, model.TableMedals
}

// Default top-K sizes.
const (
	DefaultFlowTop    = 8
	DefaultHeatmapTop = 15
)

// Options parameterise the pipelines.
type Options struct {
	Aliaser *country.Aliaser

	// Name order per table: true when names are stored "Last First".
	AthletesReversed   bool
	MedallistsReversed bool
	MedalsReversed     bool

	FlowTopCountries      int
	FlowTopDisciplines    int
	HeatmapTopCountries   int
	HeatmapTopDisciplines int

	// Features are map feature names for the choropleth. Optional.
	Features []string
}

// DefaultOptions returns options with the built-in alias table and default
// top-K sizes. Name order defaults to "First Last" for the rosters and
// "Last First" for the medals table.
func DefaultOptions() Options {
	return Options{
		Aliaser:               country.New(nil),
		MedalsReversed:        true,
		FlowTopCountries:      DefaultFlowTop,
		FlowTopDisciplines:    DefaultFlowTop,
		HeatmapTopCountries:   DefaultHeatmapTop,
		HeatmapTopDisciplines: DefaultHeatmapTop,
	}
}

func (o Options) aliaser() *country.Aliaser {
	if o.Aliaser == nil {
		return country.New(nil)
	}
	return o.Aliaser
}

// joinMedals resolves every medals row to the roster's canonical country.
// accept filters medals rows on the fields the caller needs.
func joinMedals(roster []model.PersonRecord, rosterReversed bool, medals []model.PersonRecord, medalsReversed bool, aliases *country.Aliaser, accept func(model.PersonRecord) bool) []model.JoinedRecord {
	rosterKey := func(r model.PersonRecord) (string, bool) {
		if r.Country == "" && r.CountryLong == "" {
			return "", false
		}
		k := names.Normalize(r.Name, rosterReversed)
		return k, k != ""
	}
	medalKey := names.Keyer(medalsReversed)
	combine := func(p, s model.PersonRecord) (model.JoinedRecord, bool) {
		if !accept(s) {
			return model.JoinedRecord{}, false
		}
		c, ok := aliases.Canonicalize(p.Country, p.CountryLong)
		if !ok {
			return model.JoinedRecord{}, false
		}
		return model.JoinedRecord{Country: c, Discipline: s.Discipline, Medal: s.MedalType}, true
	}
	return join.Inner(roster, rosterKey, medals, func(r model.PersonRecord) string { return medalKey(r.Name) }, combine)
}

func byCountry(r model.JoinedRecord) string    { return r.Country }
func byDiscipline(r model.JoinedRecord) string { return r.Discipline }
func byMedal(r model.JoinedRecord) string      { return r.Medal }
