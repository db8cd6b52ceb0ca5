package view

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/tally"
	"github.com/okian/podium/internal/domain/types"
)

// Flow builds the flow diagram from the medallist roster and the medals
// table. Records outside the top countries or the top disciplines are
// dropped before the country->discipline and discipline->medal edges are
// tallied.
func Flow(medallists, medals []model.PersonRecord, opts Options) types.FlowView {
	joined := joinMedals(medallists, opts.MedallistsReversed, medals, opts.MedalsReversed, opts.aliaser(),
		func(r model.PersonRecord) bool { return r.Discipline != "" && r.MedalType != "" })

	countries := ranking.TopK(tally.Count(joined, byCountry), opts.FlowTopCountries)
	disciplines := ranking.TopK(tally.Count(joined, byDiscipline), opts.FlowTopDisciplines)
	kept := ranking.Both(joined, byCountry, ranking.NewSet(countries), byDiscipline, ranking.NewSet(disciplines))

	edges := make([]types.Edge, 0)
	edges = appendEdges(edges, tally.Nested(kept, byCountry, byDiscipline))
	edges = appendEdges(edges, tally.Nested(kept, byDiscipline, byMedal))

	return types.FlowView{Countries: countries, Disciplines: disciplines, Edges: edges}
}

func appendEdges(edges []types.Edge, groups []tally.Group) []types.Edge {
	for _, g := range groups {
		for _, e := range g.Entries {
			edges = append(edges, types.Edge{Source: g.Key, Target: e.Key, Weight: e.Count})
		}
	}
	return edges
}
