package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/gerhard-ee/schemascan/internal/analyzer"
	"github.com/gerhard-ee/schemascan/internal/config"
	"github.com/gerhard-ee/schemascan/internal/database"
	"github.com/gerhard-ee/schemascan/internal/export"
)

var (
	configPath = flag.String("config", "", "Path to YAML config file (optional, environment applies either way)")

	// Warehouse connection flags; empty values fall back to config/environment
	dbType     = flag.String("type", "", "Warehouse type (snowflake, postgres, mysql, mssql, bigquery, databricks, duckdb, sqlite)")
	dbHost     = flag.String("host", "", "Database host")
	dbPort     = flag.Int("port", 0, "Database port")
	dbUser     = flag.String("user", "", "Database user")
	dbPassword = flag.String("password", "", "Database password")
	dbName     = flag.String("database", "", "Database name (file path for duckdb/sqlite)")
	dbSchema   = flag.String("schema", "", "Schema to analyze (dataset for BigQuery)")

	// Snowflake specific flags
	sfAccount   = flag.String("account", "", "Snowflake account identifier")
	sfWarehouse = flag.String("warehouse", "", "Snowflake warehouse name")
	sfRole      = flag.String("role", "", "Snowflake role name (optional)")

	// BigQuery specific flags
	bqProjectID = flag.String("project", "", "Google Cloud project ID (required for BigQuery)")
	bqLocation  = flag.String("location", "", "BigQuery dataset location (optional)")

	// Databricks specific flags
	dbxWorkspace = flag.String("workspace", "", "Databricks workspace host")
	dbxToken     = flag.String("token", "", "Databricks access token")
	dbxCatalog   = flag.String("catalog", "", "Databricks catalog name")

	// Analysis flags
	tableList  = flag.String("tables", "", "Comma-separated tables to analyze (default: all base tables in the schema)")
	sampleSize = flag.Int("samples", -1, "Distinct sample values per column (0 disables sampling)")
	output     = flag.String("output", "", "Output file path")
	format     = flag.String("format", "", "Output format (csv, xlsx, parquet)")
)

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("analysis failed", zap.Error(err))
		os.Exit(1)
	}
}

// run owns the session lifecycle: the catalog is closed on every exit path,
// including failures, before main decides the exit code.
func run(logger *zap.Logger) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := database.New(cfg)
	if err != nil {
		return err
	}
	if err := catalog.Connect(); err != nil {
		return err
	}
	defer catalog.Close()
	logger.Info("connected",
		zap.String("type", cfg.Type),
		zap.String("database", cfg.Database),
		zap.String("schema", cfg.Schema))

	ctx := context.Background()
	rep, err := analyzer.New(catalog, cfg.SampleSize, logger).AnalyzeSchema(ctx, tableFilter())
	if err != nil {
		return err
	}

	fmt.Print(rep.String())

	switch cfg.Format {
	case "csv":
		err = export.ToCSV(rep, cfg.Output)
	case "xlsx":
		err = export.ToXLSX(rep, cfg.Output)
	case "parquet":
		err = export.ToParquet(rep, cfg.Output)
	default:
		err = fmt.Errorf("unsupported output format: %s", cfg.Format)
	}
	if err != nil {
		return err
	}

	logger.Info("report written",
		zap.String("output", cfg.Output),
		zap.String("format", cfg.Format),
		zap.Int("rows", rep.Len()))
	return nil
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cfg *config.Config) {
	if *dbType != "" {
		cfg.Type = *dbType
	}
	if *dbHost != "" {
		cfg.Host = *dbHost
	}
	if *dbPort != 0 {
		cfg.Port = *dbPort
	}
	if *dbUser != "" {
		cfg.User = *dbUser
	}
	if *dbPassword != "" {
		cfg.Password = *dbPassword
	}
	if *dbName != "" {
		cfg.Database = *dbName
	}
	if *dbSchema != "" {
		cfg.Schema = *dbSchema
	}
	if *sfAccount != "" {
		cfg.Account = *sfAccount
	}
	if *sfWarehouse != "" {
		cfg.Warehouse = *sfWarehouse
	}
	if *sfRole != "" {
		cfg.Role = *sfRole
	}
	if *bqProjectID != "" {
		cfg.ProjectID = *bqProjectID
	}
	if *bqLocation != "" {
		cfg.Location = *bqLocation
	}
	if *dbxWorkspace != "" {
		cfg.Workspace = *dbxWorkspace
	}
	if *dbxToken != "" {
		cfg.Token = *dbxToken
	}
	if *dbxCatalog != "" {
		cfg.Catalog = *dbxCatalog
	}
	if *sampleSize >= 0 {
		cfg.SampleSize = *sampleSize
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *format != "" {
		cfg.Format = *format
	}
}

// tableFilter parses the -tables flag into an explicit table set.
func tableFilter() []string {
	return parseTableFilter(*tableList)
}

func parseTableFilter(s string) []string {
	if s == "" {
		return nil
	}
	var tables []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tables = append(tables, t)
		}
	}
	return tables
}
