package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/blessedrishabh/tabeval/dataset"
	"github.com/blessedrishabh/tabeval/perplexity"
	"github.com/blessedrishabh/tabeval/run"
)

var judgeFlags struct {
	predFile    string
	goldFile    string
	datasetName string
	model       string
}

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Run the chain-of-thought judge over a prediction file",
	Long: `Judge every matched prediction with a reasoning model.

Claims datasets (logicnlg, lotnlg) get a FAITHFUL / NOT FAITHFUL verdict
against the table; fetaqa gets a CORRECT / INCORRECT verdict against the
question and reference answer.

The judge calls the Perplexity API and needs PERPLEXITY_API_KEY (or
judge.api_key in the config). Calls are paced to one per 500ms by
default; tune with judge.pacing / judge.lanes in the config.`,
	RunE: runJudge,
}

func init() {
	f := judgeCmd.Flags()
	f.StringVar(&judgeFlags.predFile, "pred-file", "", "Path to predictions JSON file")
	f.StringVar(&judgeFlags.goldFile, "gold-file", "", "Path to gold data JSON file")
	f.StringVar(&judgeFlags.datasetName, "dataset", "lotnlg", "Dataset: logicnlg, lotnlg, fetaqa")
	f.StringVar(&judgeFlags.model, "model", "sonar", "Judge model: sonar, sonar-pro, sonar-reasoning")
	judgeCmd.MarkFlagRequired("pred-file")
	judgeCmd.MarkFlagRequired("gold-file")
}

func runJudge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(rootFlags.configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	preds, err := dataset.LoadPredictions(judgeFlags.predFile)
	if err != nil {
		return err
	}
	gold, err := dataset.LoadGold(judgeFlags.goldFile)
	if err != nil {
		return err
	}

	pacing, err := cfg.Judge.PacingDuration()
	if err != nil {
		return err
	}
	callTimeout, err := cfg.Judge.CallTimeoutDuration()
	if err != nil {
		return err
	}

	opts := run.JudgeOptions{
		Predictions: preds,
		Gold:        gold,
		Completer: perplexity.NewClient(perplexity.Config{
			BaseURL: cfg.Judge.BaseURL,
			APIKey:  cfg.Judge.APIKey,
		}),
		Model:       judgeFlags.model,
		Lanes:       cfg.Judge.Lanes,
		CallTimeout: callTimeout,
		Logger:      logger,
	}
	if pacing > 0 {
		opts.Limiter = rate.NewLimiter(rate.Every(pacing), 1)
	}

	ctx := cmd.Context()
	var report run.Report
	switch judgeFlags.datasetName {
	case "fetaqa":
		report, err = run.JudgeQA(ctx, opts)
	case "logicnlg", "lotnlg":
		if judgeFlags.datasetName == "lotnlg" {
			opts.Title = "CoT EVALUATION RESULTS (LoTNLG)"
		}
		report, err = run.JudgeClaims(ctx, opts)
	default:
		return fmt.Errorf("unknown dataset %q", judgeFlags.datasetName)
	}
	if err != nil {
		return err
	}

	fmt.Println(report.String())
	return nil
}
