package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphlib/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var initPath string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after --config and flag overrides are applied.
With --init PATH, write the built-in defaults to PATH instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if initPath != "" {
				if err := config.Save(initPath, config.Default()); err != nil {
					return err
				}
				a.log.Info("config written", "path", initPath)
				return nil
			}
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().StringVar(&initPath, "init", "", "write the default config to this path")

	return cmd
}
