package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/browser"
	"bikeshare/dataset"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/explorer/config"
	"bikeshare/output"
	"bikeshare/prompt"
	"bikeshare/publisher"
	"bikeshare/reporters/factory"
	"bikeshare/session"
)

type commandOptions struct {
	configPath string
	dataDir    string
	logLevel   string
	noColor    bool
}

func newRootCommand() *cobra.Command {
	options := &commandOptions{}

	rootCmd := &cobra.Command{
		Use:   "bikeshare-explorer",
		Short: "Explore US bikeshare data from the console",
		Long: `bikeshare-explorer asks for a city, a month and a day of the week and shows
statistics of the bikeshare trips that match: popular times of travel, popular
stations, trip durations and user demographics. The raw trips can be browsed too.

Example usage:
  bikeshare-explorer --data-dir ./data
  bikeshare-explorer --config explorer.yaml --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplorer(cmd, options)
		},
	}

	rootCmd.Flags().StringVar(&options.configPath, "config", "", "config file (default is the embedded config)")
	rootCmd.Flags().StringVar(&options.dataDir, "data-dir", "", "directory with the city CSV files")
	rootCmd.Flags().StringVar(&options.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.Flags().BoolVar(&options.noColor, "no-color", false, "disable colored output")

	return rootCmd
}

func runExplorer(cmd *cobra.Command, options *commandOptions) error {
	explorerConfig, err := config.LoadConfig(options.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if options.dataDir != "" {
		explorerConfig.Dataset.DataDir = options.dataDir
	}
	if options.logLevel != "" {
		explorerConfig.LogLevel = options.logLevel
	}

	if err = InitLogger(explorerConfig.LogLevel, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	printer := output.NewPrinterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(options.noColor))
	console := prompt.NewConsole(cmd.InOrStdin(), printer, explorerConfig.Input)

	reporters, err := factory.NewReporters(explorerConfig.Reporters)
	if err != nil {
		return err
	}

	reportPublisher, err := publisher.NewPublisher(explorerConfig.Publisher)
	if err != nil {
		log.Warnf("[component: explorer][method: runExplorer][status: ERROR] reports will not be published: %s", err.Error())
	}
	defer func() {
		if closeErr := reportPublisher.Close(); closeErr != nil {
			log.Warnf("[component: explorer][method: runExplorer][status: ERROR] error closing publisher: %s", closeErr.Error())
		}
	}()

	explorerSession := session.NewSession(
		explorerConfig.Dataset.GetCityNames(),
		console,
		printer,
		dataset.NewLoader(explorerConfig.Dataset),
		reporters,
		browser.NewRawDataBrowser(console, printer, explorerConfig.PageSize),
		reportPublisher,
	)

	err = explorerSession.Run()
	if errors.Is(err, dataErrors.ErrInputRead) {
		// already reported to the user, the session just ends
		return nil
	}
	return err
}
