package view

import (
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/tally"
	"github.com/okian/podium/internal/domain/types"
)

// Heatmap builds the country x discipline heatmap from the athlete roster and
// the medals table. Cells are emitted row by row in top-K order; pairs with
// no medals have no cell.
func Heatmap(athletes, medals []model.PersonRecord, opts Options) types.HeatmapView {
	joined := joinMedals(athletes, opts.AthletesReversed, medals, opts.MedalsReversed, opts.aliaser(),
		func(r model.PersonRecord) bool { return r.Discipline != "" })

	rows := ranking.TopK(tally.Count(joined, byCountry), opts.HeatmapTopCountries)
	cols := ranking.TopK(tally.Count(joined, byDiscipline), opts.HeatmapTopDisciplines)
	kept := ranking.Both(joined, byCountry, ranking.NewSet(rows), byDiscipline, ranking.NewSet(cols))

	counts := make(map[string]map[string]int, len(rows))
	for _, g := range tally.Nested(kept, byCountry, byDiscipline) {
		counts[g.Key] = tally.Map(g.Entries)
	}

	cells := make([]types.Cell, 0)
	for _, row := range rows {
		for _, col := range cols {
			if v := counts[row][col]; v > 0 {
				cells = append(cells, types.Cell{Row: row, Col: col, Value: v})
			}
		}
	}
	return types.HeatmapView{Rows: rows, Cols: cols, Cells: cells}
}
