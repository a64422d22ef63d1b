package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/gerhard-ee/schemascan/internal/config"
)

// BigQueryDB introspects a BigQuery dataset through its INFORMATION_SCHEMA
// views. BigQuery has no database/sql driver in this codebase; queries go
// through the cloud client. The Schema config field is the dataset name.
type BigQueryDB struct {
	config *config.Config
	client *bigquery.Client
}

func NewBigQuery(cfg *config.Config) *BigQueryDB {
	return &BigQueryDB{config: cfg}
}

func (b *BigQueryDB) Connect() error {
	ctx := context.Background()

	var opts []option.ClientOption
	if b.config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(b.config.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, b.config.ProjectID, opts...)
	if err != nil {
		return &ConnectionError{Backend: "bigquery", Err: err}
	}
	if b.config.Location != "" {
		client.Location = b.config.Location
	}

	b.client = client
	return nil
}

func (b *BigQueryDB) Close() error {
	if b.client == nil {
		return nil
	}
	err := b.client.Close()
	b.client = nil
	return err
}

// runQuery executes a query and drains the result into value slices.
func (b *BigQueryDB) runQuery(ctx context.Context, query string, params []bigquery.QueryParameter) ([][]bigquery.Value, error) {
	q := b.client.Query(query)
	q.Parameters = params

	it, err := q.Read(ctx)
	if err != nil {
		return nil, err
	}

	var result [][]bigquery.Value
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %v", err)
		}
		result = append(result, row)
	}
	return result, nil
}

func (b *BigQueryDB) ListTables(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT table_name
		FROM %s.INFORMATION_SCHEMA.TABLES
		WHERE table_type = 'BASE TABLE'
		ORDER BY table_name`,
		quoteBacktick(b.config.ProjectID+"."+b.config.Schema))

	rows, err := b.runQuery(ctx, query, nil)
	if err != nil {
		return nil, &QueryError{Err: fmt.Errorf("failed to list tables: %v", err)}
	}

	var tables []string
	for _, row := range rows {
		tables = append(tables, renderValue(row[0]))
	}
	return tables, nil
}

func (b *BigQueryDB) TableColumns(ctx context.Context, table string) ([]Column, error) {
	// BigQuery's INFORMATION_SCHEMA.COLUMNS reports no defaults, character
	// lengths or numeric precision; those descriptor fields stay unset.
	query := fmt.Sprintf(`
		SELECT column_name, data_type, is_nullable
		FROM %s.INFORMATION_SCHEMA.COLUMNS
		WHERE table_name = @table
		ORDER BY ordinal_position`,
		quoteBacktick(b.config.ProjectID+"."+b.config.Schema))

	rows, err := b.runQuery(ctx, query, []bigquery.QueryParameter{
		{Name: "table", Value: table},
	})
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}

	var columns []Column
	for _, row := range rows {
		columns = append(columns, Column{
			Name:       renderValue(row[0]),
			DataType:   renderValue(row[1]),
			IsNullable: renderValue(row[2]),
		})
	}
	if len(columns) == 0 {
		return nil, &QueryError{Table: table, Err: fmt.Errorf("table not found in catalog")}
	}
	return columns, nil
}

func (b *BigQueryDB) SampleValues(ctx context.Context, table, column string, limit int) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s
		WHERE %s IS NOT NULL
		LIMIT %d`,
		quoteBacktick(column),
		quoteBacktick(b.config.ProjectID+"."+b.config.Schema+"."+table),
		quoteBacktick(column), limit)

	rows, err := b.runQuery(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	var samples []string
	for _, row := range rows {
		samples = append(samples, renderValue(row[0]))
	}
	return samples, nil
}
