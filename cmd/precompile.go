/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"fmt"

	"github.com/macaroni-os/jessica/pkg/compiler"
	"github.com/macaroni-os/jessica/pkg/logger"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/spf13/cobra"
)

func precompileCmdCommand(config *specs.JessicaConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "precompile <text> [values...]",
		Aliases: []string{"p"},
		Short:   "Precompile an inline template and run it.",
		Long: `Binds the template text to the parameter names and evaluates it
with the positional values.

  $ jessica precompile '${a}-${b}' --params a,b x y
`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()
			params, _ := cmd.Flags().GetString("params")
			extra, _ := cmd.Flags().GetStringArray("arg")

			values := make([]interface{}, 0, len(args)-1+len(extra))
			for _, a := range append(args[1:], extra...) {
				values = append(values, a)
			}

			out, err := compiler.Precompile(args[0], params)(values...)
			if err != nil {
				log.Fatal(err.Error())
			}

			fmt.Print(out)
		},
	}

	flags := cmd.Flags()
	flags.String("params", "", "Comma separated parameter names. Default: $.")
	flags.StringArray("arg", []string{},
		"Positional value appended after the arguments.")

	return cmd
}
