// Command n2words converts numbers to words from the command line.
//
// Examples:
//
//	n2words convert 2300095
//	n2words convert --lang az -- -3.14
//	n2words languages
//	n2words check table.yaml
//
// The default language comes from N2WORDS_LANG or a config file passed
// with --config.
package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	n2words "github.com/forzagreen/n2words-sub002"
)

type config struct {
	Language string `yaml:"language" env:"N2WORDS_LANG" env-default:"en"`
	Verbose  bool   `yaml:"verbose" env:"N2WORDS_VERBOSE" env-default:"false"`
}

var (
	cfg        config
	configPath string
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "n2words",
	Short:         "Convert numbers to their written-word form",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return fmt.Errorf("reading config %s: %w", configPath, err)
			}
		} else if err := cleanenv.ReadEnv(&cfg); err != nil {
			return fmt.Errorf("reading environment: %w", err)
		}

		zapCfg := zap.NewProductionConfig()
		if cfg.Verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(checkCmd)

	convertCmd.Flags().StringVar(&convertLang, "lang", "", "language code (default from config/env)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "n2words: %v\n", err)
		os.Exit(1)
	}
}

var convertLang string

var convertCmd = &cobra.Command{
	Use:   "convert [number]...",
	Short: "Convert one or more numbers to words",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := convertLang
		if lang == "" {
			lang = cfg.Language
		}
		logger.Debug("converting", zap.String("lang", lang), zap.Int("count", len(args)))

		for _, arg := range args {
			out, err := n2words.Convert(lang, arg)
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
		return nil
	},
}

var languagesYAML bool

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the registered languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if languagesYAML {
			return printLanguagesYAML(cmd)
		}
		for _, code := range n2words.Languages() {
			p, err := n2words.Profile(code)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %s\n", code, p.Name)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <table.yaml>",
	Short: "Validate a scale-table file",
	Long: "Validate a YAML scale table: a list of {value, word} entries that " +
		"must be strictly descending and end at magnitude zero.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(args[0])
		if err != nil {
			return err
		}
		logger.Debug("table validated", zap.Int("entries", len(table)))
		fmt.Printf("%s: ok (%d entries)\n", args[0], len(table))
		return nil
	},
}

func init() {
	languagesCmd.Flags().BoolVar(&languagesYAML, "yaml", false, "emit YAML")
}
