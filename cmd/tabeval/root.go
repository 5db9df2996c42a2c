// tabeval is the benchmark CLI: lexical metrics and chain-of-thought
// judging for table-to-text predictions.
//
// Usage:
//
//	tabeval lexical --pred-file preds.json --gold-file gold.json --dataset lotnlg
//	tabeval judge --pred-file preds.json --gold-file gold.json --dataset fetaqa --model sonar-pro
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	verbose    bool
}

var rootCmd = &cobra.Command{
	Use:   "tabeval",
	Short: "Evaluate table-to-text and table-QA predictions against gold references",
	Long: "tabeval reproduces the LLM-T2T benchmark metrics: lexical overlap\n" +
		"(BLEU, ROUGE), NLI faithfulness, logical-type matching and\n" +
		"chain-of-thought LLM judging over LogicNLG, LoTNLG and FeTaQA.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "Path to YAML config (default: tabeval.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Per-example debug logging")
	rootCmd.AddCommand(lexicalCmd)
	rootCmd.AddCommand(judgeCmd)
	rootCmd.Version = version
}

// newLogger builds the CLI logger. Diagnostics go to stderr so the summary
// banner on stdout stays machine-readable.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if rootFlags.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
