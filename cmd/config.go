/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"fmt"

	"github.com/macaroni-os/jessica/pkg/logger"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/spf13/cobra"
)

func configCmdCommand(config *specs.JessicaConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the configuration.",
		Long:  `Prints the effective configuration in YAML format.`,
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			data, err := config.Yaml()
			if err != nil {
				log.Fatal(err.Error())
			}

			fmt.Println(string(data))
		},
	}
}
