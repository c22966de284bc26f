package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewkroh/gqljavagen/internal/generator"
	"github.com/andrewkroh/gqljavagen/internal/pathutil"
)

const envPrefix = "GQLJAVAGEN"

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Java GraphQL client classes from an introspection result",
		Long: heredoc.Doc(`
			Reads the JSON result of a GraphQL introspection query and writes one
			Java source file per schema type into the output directory. Every file
			starts with the rendered license header and declares the given package.
		`),
		Example: heredoc.Doc(`
			# Generate into src/main/java/com/example/api
			$ generate --schema schema.json --license-header LICENSE.txt \
			    --package com.example.api --output src/main/java/com/example/api

			# Same, with settings taken from .gqljavagen.yaml
			$ generate
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cmd, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromViper(v)
			if err != nil {
				return err
			}
			return generator.Run(cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is .gqljavagen.yaml in the working or home directory)")
	cmd.Flags().String("schema", "", "Path to the introspection result JSON file")
	cmd.Flags().String("license-header", "", "Path to the license header prepended to every file")
	cmd.Flags().Bool("license-template", false, "Render the license header as a pongo2 template (variables: package, type, year)")
	cmd.Flags().String("package", "", "Java package of the generated classes")
	cmd.Flags().String("output", ".", "Output directory for generated Java files")
	cmd.Flags().String("scalars", "", "Path to a YAML file with extra custom scalar mappings (optional)")
	cmd.Flags().String("nest-under", "", "Name of the entry-point class (default \"Schema\")")
	cmd.Flags().Bool("include-deprecated", false, "Generate deprecated fields and enum values")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// initConfig layers flags over environment variables over the config file.
func initConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".gqljavagen")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func configFromViper(v *viper.Viper) (generator.Config, error) {
	var missing []string
	for _, key := range []string{"schema", "license-header", "package"} {
		if v.GetString(key) == "" {
			missing = append(missing, "--"+key)
		}
	}
	if len(missing) > 0 {
		return generator.Config{}, fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return generator.Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stdout, log.Options{Level: level})
	log.SetDefault(logger)

	return generator.Config{
		SchemaPath:        v.GetString("schema"),
		LicenseHeaderPath: v.GetString("license-header"),
		LicenseTemplate:   v.GetBool("license-template"),
		PackageName:       v.GetString("package"),
		OutputDir:         v.GetString("output"),
		ScalarsFile:       v.GetString("scalars"),
		NestUnder:         v.GetString("nest-under"),
		IncludeDeprecated: v.GetBool("include-deprecated"),
		Separators:        pathutil.HostSeparators(),
		Logger:            logger,
	}, nil
}
