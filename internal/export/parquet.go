package export

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/gerhard-ee/schemascan/pkg/report"
)

// parquetRow mirrors report.Row with a parquet schema.
type parquetRow struct {
	Table    string `parquet:"name=table, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Column   string `parquet:"name=column, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Type     string `parquet:"name=type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Nullable string `parquet:"name=nullable, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Samples  string `parquet:"name=samples, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// ToParquet writes the report to path as a snappy-compressed parquet file.
func ToParquet(rep *report.Report, path string) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(parquetRow), 1)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create parquet writer: %v", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rep.Rows {
		pr := parquetRow{
			Table:    row.Table,
			Column:   row.Column,
			Type:     row.Type,
			Nullable: row.Nullable,
			Samples:  row.Samples,
		}
		if err := pw.Write(pr); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write row: %v", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("failed to finalize parquet file: %v", err)
	}
	return fw.Close()
}
