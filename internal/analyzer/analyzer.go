// Package analyzer walks a warehouse schema table by table and assembles
// the column analysis report. All queries run strictly sequentially over a
// single catalog session: one table-list query, one column-metadata query
// per table, one sample query per column.
package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gerhard-ee/schemascan/internal/database"
	"github.com/gerhard-ee/schemascan/pkg/report"
)

type Analyzer struct {
	catalog    database.Catalog
	sampleSize int
	logger     *zap.Logger
}

func New(catalog database.Catalog, sampleSize int, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		catalog:    catalog,
		sampleSize: sampleSize,
		logger:     logger,
	}
}

// AnalyzeSchema builds the report. A non-empty tables slice is used verbatim
// as the table set, without validation against the catalog; otherwise the
// catalog's base-table list is used. Catalog failures abort the run; sample
// failures are rendered into the affected row and the run continues.
func (a *Analyzer) AnalyzeSchema(ctx context.Context, tables []string) (*report.Report, error) {
	if len(tables) == 0 {
		var err error
		tables, err = a.catalog.ListTables(ctx)
		if err != nil {
			return nil, err
		}
	}
	a.logger.Info("analyzing schema", zap.Int("tables", len(tables)))

	rep := &report.Report{}
	for _, table := range tables {
		columns, err := a.catalog.TableColumns(ctx, table)
		if err != nil {
			return nil, err
		}
		a.logger.Info("analyzing table",
			zap.String("table", table),
			zap.Int("columns", len(columns)))

		for _, col := range columns {
			rep.Append(report.Row{
				Table:    table,
				Column:   col.Name,
				Type:     col.DataType,
				Nullable: col.IsNullable,
				Samples:  a.sampleField(ctx, table, col.Name),
			})
		}
	}
	return rep, nil
}

// sampleField fetches the sample values of one column. Sampling is best
// effort: a failed query becomes an error description in the field, so one
// unreadable column cannot abort the whole run.
func (a *Analyzer) sampleField(ctx context.Context, table, column string) string {
	if a.sampleSize == 0 {
		return ""
	}
	values, err := a.catalog.SampleValues(ctx, table, column, a.sampleSize)
	if err != nil {
		a.logger.Warn("sample query failed",
			zap.String("table", table),
			zap.String("column", column),
			zap.Error(err))
		return fmt.Sprintf("error: %v", err)
	}
	return report.JoinSamples(values)
}
