package view

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/tally"
	"github.com/okian/podium/internal/domain/types"
)

// Choropleth counts matched medals per country. Every country with at least
// one matched record is kept. When opts.Features is set, each feature is
// emitted in order; features without a count get HasData false and value 0.
func Choropleth(athletes, medals []model.PersonRecord, opts Options) types.ChoroplethView {
	joined := joinMedals(athletes, opts.AthletesReversed, medals, opts.MedalsReversed, opts.aliaser(),
		func(model.PersonRecord) bool { return true })

	counts := tally.Map(tally.Count(joined, byCountry))
	out := types.ChoroplethView{Counts: counts}
	if len(opts.Features) == 0 {
		return out
	}
	out.Features = make([]types.FeatureValue, 0, len(opts.Features))
	for _, name := range opts.Features {
		v, ok := counts[name]
		out.Features = append(out.Features, types.FeatureValue{Name: name, Value: v, HasData: ok})
	}
	return out
}
