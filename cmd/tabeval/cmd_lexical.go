package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blessedrishabh/tabeval/dataset"
	"github.com/blessedrishabh/tabeval/hfinference"
	"github.com/blessedrishabh/tabeval/run"
)

var lexicalFlags struct {
	predFile    string
	goldFile    string
	datasetName string
	concurrency int
	withNLI     bool
}

var lexicalCmd = &cobra.Command{
	Use:   "lexical",
	Short: "Compute lexical overlap metrics (BLEU, ROUGE, NLI, type match)",
	Long: `Compute the lexical benchmark metrics for a prediction file.

Datasets:
  logicnlg   claim generation; NLI-Acc, ROUGE-L, BLEU
  lotnlg     claim generation with logical labels; adds Type EM
             (label presence is auto-detected from the gold file)
  fetaqa     table QA; ROUGE-1/2/L and smoothed BLEU

The NLI metric calls a hosted roberta-large-mnli endpoint and needs
HF_API_TOKEN (or nli.api_key in the config); pass --nli=false to skip it.`,
	RunE: runLexical,
}

func init() {
	f := lexicalCmd.Flags()
	f.StringVar(&lexicalFlags.predFile, "pred-file", "", "Path to predictions JSON file")
	f.StringVar(&lexicalFlags.goldFile, "gold-file", "", "Path to gold data JSON file")
	f.StringVar(&lexicalFlags.datasetName, "dataset", "lotnlg", "Dataset: logicnlg, lotnlg, fetaqa")
	f.IntVar(&lexicalFlags.concurrency, "concurrency", 4, "Examples scored in parallel")
	f.BoolVar(&lexicalFlags.withNLI, "nli", true, "Run the NLI faithfulness check (claims datasets)")
	lexicalCmd.MarkFlagRequired("pred-file")
	lexicalCmd.MarkFlagRequired("gold-file")
}

func runLexical(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(rootFlags.configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	preds, err := dataset.LoadPredictions(lexicalFlags.predFile)
	if err != nil {
		return err
	}
	gold, err := dataset.LoadGold(lexicalFlags.goldFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var report run.Report
	switch lexicalFlags.datasetName {
	case "fetaqa":
		report, err = run.QA(ctx, run.QAOptions{
			Predictions: preds,
			Gold:        gold,
			Concurrency: lexicalFlags.concurrency,
			Logger:      logger,
		})
	case "logicnlg", "lotnlg":
		opts := run.ClaimsOptions{
			Predictions: preds,
			Gold:        gold,
			Concurrency: lexicalFlags.concurrency,
			Logger:      logger,
		}
		if lexicalFlags.withNLI {
			opts.Classifier = hfinference.NewClient(hfinference.Config{
				BaseURL: cfg.NLI.BaseURL,
				APIKey:  cfg.NLI.APIKey,
				Model:   cfg.NLI.Model,
			})
		}
		report, err = run.Claims(ctx, opts)
	default:
		return fmt.Errorf("unknown dataset %q", lexicalFlags.datasetName)
	}
	if err != nil {
		return err
	}

	fmt.Println(report.String())
	return nil
}
