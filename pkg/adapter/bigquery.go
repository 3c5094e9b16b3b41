package adapter

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
)

// ExportRecord is one exported annotation row, streamed into an analytics
// table so dataset growth and label distribution can be queried later.
type ExportRecord struct {
	DatasetVersion string    `bigquery:"dataset_version"`
	FileName       string    `bigquery:"file_name"`
	Label          string    `bigquery:"label"`
	Area           float64   `bigquery:"area"`
	ExportedAt     time.Time `bigquery:"exported_at"`
}

// Inserter streams export records into an analytics table
type Inserter interface {
	Insert(ctx context.Context, records []*ExportRecord) error
}

type bigqueryInserter struct {
	inserter *bigquery.Inserter
}

// NewBigQuery creates an Inserter writing to the given BigQuery table
func NewBigQuery(ctx context.Context, projectID, datasetID, table string) (Inserter, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client")
	}

	return &bigqueryInserter{
		inserter: client.Dataset(datasetID).Table(table).Inserter(),
	}, nil
}

func (b *bigqueryInserter) Insert(ctx context.Context, records []*ExportRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := b.inserter.Put(ctx, records); err != nil {
		return goerr.Wrap(err, "failed to insert export records")
	}

	return nil
}
