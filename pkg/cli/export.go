package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/voxlab/blockforge/pkg/adapter"
	"github.com/voxlab/blockforge/pkg/dataset"
	"github.com/voxlab/blockforge/pkg/model"
)

func exportCommand() *cli.Command {
	var (
		cfg        config
		inputPath  string
		outputPath string
		configPath string
		policyDir  string
		bucket     string
		bqDataset  string
		bqTable    string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to the labeled images JSON file",
			Sources:     cli.EnvVars("BLOCKFORGE_ANNOTATIONS"),
			Destination: &inputPath,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Path of the COCO dataset file to write",
			Value:       "dataset.json",
			Destination: &outputPath,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a YAML export config",
			Sources:     cli.EnvVars("BLOCKFORGE_EXPORT_CONFIG"),
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Directory of Rego policies gating the export",
			Sources:     cli.EnvVars("BLOCKFORGE_EXPORT_POLICY"),
			Destination: &policyDir,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Cloud Storage bucket to upload the dataset to",
			Sources:     cli.EnvVars("BLOCKFORGE_EXPORT_BUCKET"),
			Destination: &bucket,
		},
		&cli.StringFlag{
			Name:        "bq-dataset",
			Usage:       "BigQuery dataset for export analytics",
			Sources:     cli.EnvVars("BLOCKFORGE_BQ_DATASET"),
			Destination: &bqDataset,
		},
		&cli.StringFlag{
			Name:        "bq-table",
			Usage:       "BigQuery table for export analytics",
			Sources:     cli.EnvVars("BLOCKFORGE_BQ_TABLE"),
			Destination: &bqTable,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export labeled polygon annotations as a COCO dataset",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if inputPath == "" {
				return goerr.New("input file path is required")
			}
			ctx = cfg.withLogger(ctx)

			images, err := dataset.LoadImages(inputPath)
			if err != nil {
				return err
			}

			var exportCfg *dataset.Config
			if configPath != "" {
				if exportCfg, err = dataset.LoadConfig(configPath); err != nil {
					return err
				}
			}

			var policy *dataset.Policy
			if policyDir != "" {
				if policy, err = dataset.LoadPolicy(ctx, policyDir); err != nil {
					return err
				}
			}

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " exporting dataset"
			sp.Start()
			ds, err := dataset.Export(ctx, dataset.ExportInput{
				Images: images,
				Config: exportCfg,
				Policy: policy,
			})
			sp.Stop()
			if err != nil {
				return err
			}

			if err := dataset.WriteFile(ds, outputPath); err != nil {
				return err
			}

			if bucket != "" {
				st, err := adapter.NewStorage(ctx, bucket)
				if err != nil {
					return err
				}
				key := filepath.Base(outputPath)
				if err := dataset.Upload(ctx, st, key, ds); err != nil {
					return err
				}
				fmt.Fprintf(c.Root().Writer, "Uploaded to gs://%s/%s\n", bucket, key)
			}

			if bqTable != "" {
				if cfg.project == "" {
					return goerr.New("project is required for BigQuery export")
				}
				inserter, err := adapter.NewBigQuery(ctx, cfg.project, bqDataset, bqTable)
				if err != nil {
					return err
				}
				if err := inserter.Insert(ctx, exportRecords(ds)); err != nil {
					return err
				}
			}

			fmt.Fprintf(c.Root().Writer, "Exported %d images, %d annotations, %d categories to %s\n",
				len(ds.Images), len(ds.Annotations), len(ds.Categories), outputPath)
			return nil
		},
	}
}

// exportRecords flattens a dataset into analytics rows
func exportRecords(ds *model.Dataset) []*adapter.ExportRecord {
	files := make(map[int]string, len(ds.Images))
	for _, img := range ds.Images {
		files[img.ID] = img.FileName
	}
	labels := make(map[int]string, len(ds.Categories))
	for _, cat := range ds.Categories {
		labels[cat.ID] = cat.Name
	}

	now := time.Now()
	records := make([]*adapter.ExportRecord, 0, len(ds.Annotations))
	for _, ann := range ds.Annotations {
		records = append(records, &adapter.ExportRecord{
			DatasetVersion: ds.Info.Version,
			FileName:       files[ann.ImageID],
			Label:          labels[ann.CategoryID],
			Area:           ann.Area,
			ExportedAt:     now,
		})
	}
	return records
}
