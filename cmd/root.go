package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/julianunes2703/ipp/extractor"
)

// Embedded default configuration (from .ipp.yaml)
const defaultConfigYAML = `
source:
  # URL or file path of the DRE export. Can also be given as a CLI argument.
  url: ""
  # csv, xlsx or pdf; empty means detect from the target's extension.
  format: ""
engine:
  header_scan_rows: 5
  header_month_hits: 3
  fallback_header_row: 1
  fallback_title_column: 1
  fallback_month_start: 2
  aux_value_max: 5
# aliases merge over the built-in table, e.g.:
# aliases:
#   ebitda:
#     - ebitda ajustado
`

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "ipp [target]",
		Short: "DRE spreadsheet extraction engine",
		Long: `ipp fetches a DRE (income statement) spreadsheet export and normalizes
it into named accounts with a value per calendar month, queryable by
semantic account keys regardless of how the source labels its lines.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				viper.Set("target", args[0])
				runExtract(extractCmd, []string{})
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.ipp.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory and home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".ipp")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found, use embedded default configuration
			if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
				fmt.Printf("Error loading embedded configuration: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}

// target resolves the extraction target: CLI argument first, then the
// configured source URL.
func target() string {
	if t := viper.GetString("target"); t != "" {
		return t
	}
	return viper.GetString("source.url")
}

// sourceFormat resolves the source format for a target: config first,
// extension detection second.
func sourceFormat(tgt string) string {
	if f := viper.GetString("source.format"); f != "" {
		return f
	}
	return extractor.DetectFormat(tgt)
}
