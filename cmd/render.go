/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/macaroni-os/jessica/pkg/engine"
	"github.com/macaroni-os/jessica/pkg/helpers"
	"github.com/macaroni-os/jessica/pkg/loader"
	"github.com/macaroni-os/jessica/pkg/logger"
	"github.com/macaroni-os/jessica/pkg/resolver"
	specs "github.com/macaroni-os/jessica/pkg/specs"

	"github.com/spf13/cobra"
)

type renderTask struct {
	Engine  *engine.Engine
	Loader  loader.Loader
	Source  string
	Options *engine.Options
	To      string
}

func (t *renderTask) Run(ctx context.Context) error {
	out, err := t.Engine.Render(ctx, t.Source, t.Options, nil).Wait(ctx)
	if err != nil {
		return err
	}

	if t.To != "" {
		return helpers.WriteFile(t.To, out)
	}

	fmt.Print(out)
	return nil
}

// WatchedFiles returns the local files the render depends on.
func (t *renderTask) WatchedFiles() []string {
	dl, ok := t.Loader.(*loader.DirLoader)
	if !ok {
		return nil
	}

	ans := []string{}
	if !t.Options.Template {
		ans = append(ans, dl.GetFilePath(t.Source))
	}
	for _, name := range resolver.SortedNames(t.Options.Partials) {
		for _, c := range t.Options.Settings.GetCandidates(t.Options.Partials[name]) {
			ans = append(ans, dl.GetFilePath(c))
		}
	}
	return ans
}

func viewSettings(config *specs.JessicaConfig, views []string, viewEngine string) *specs.ViewSettings {
	var ans *specs.ViewSettings

	switch {
	case len(views) > 1:
		ans = specs.NewViewSearch(viewEngine, views...)
	case len(views) == 1:
		ans = specs.NewViewDir(views[0], viewEngine)
	default:
		ans = config.ViewSettings()
		if ans != nil && viewEngine != "" {
			ans.ViewEngine = viewEngine
		}
	}

	return ans
}

func renderCmdCommand(config *specs.JessicaConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "render <template>",
		Aliases: []string{"r"},
		Short:   "Render a template file or an inline template.",
		Long: `Render a template with the locals of a values file and of the
--set flags. Partials are resolved from the view directories.

  $ jessica render index.tpl --values values.yml --set title=Home \
      --partial header=header --views ./views --view-engine tpl

  $ jessica render --inline 'Hello ${name}' --set name=World
`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()
			backend, _ := cmd.Flags().GetString("backend")
			watch, _ := cmd.Flags().GetBool("watch")

			if backend == "" {
				backend = config.GetLoader().Backend
			}
			if watch && backend != "" && backend != "dir" {
				log.Fatal("Watch mode is available only with the dir backend.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			inline, _ := cmd.Flags().GetBool("inline")
			valuesFiles, _ := cmd.Flags().GetStringArray("values")
			sets, _ := cmd.Flags().GetStringArray("set")
			partials, _ := cmd.Flags().GetStringArray("partial")
			views, _ := cmd.Flags().GetStringArray("views")
			viewEngine, _ := cmd.Flags().GetString("view-engine")
			backend, _ := cmd.Flags().GetString("backend")
			to, _ := cmd.Flags().GetString("to")
			watch, _ := cmd.Flags().GetBool("watch")

			if backend == "" {
				backend = config.GetLoader().Backend
			}

			opts := config.LoaderOpts()
			for _, k := range []string{
				"dir-root",
				"minio-endpoint", "minio-bucket", "minio-keyid",
				"minio-secret", "minio-region", "minio-prefix",
				"http-base-url",
			} {
				if v, _ := cmd.Flags().GetString(k); v != "" {
					opts[k] = v
				}
			}

			values := []map[string]interface{}{}
			for _, f := range valuesFiles {
				v, err := helpers.LoadValuesFile(f)
				if err != nil {
					log.Fatal(err.Error())
				}
				values = append(values, v)
			}

			pairs, err := helpers.ParsePairs(sets)
			if err != nil {
				log.Fatal(err.Error())
			}
			setValues := make(map[string]interface{}, len(pairs))
			for k, v := range pairs {
				setValues[k] = v
			}
			values = append(values, setValues)

			partialsMap, err := helpers.ParsePairs(partials)
			if err != nil {
				log.Fatal(err.Error())
			}

			l, err := loader.NewLoader(config, backend, opts)
			if err != nil {
				log.Fatal(err.Error())
			}
			l.SetLogger(log)

			e := engine.NewEngine(l)
			e.SetLogger(log)

			task := &renderTask{
				Engine: e,
				Loader: l,
				Source: args[0],
				Options: &engine.Options{
					Locals:   engine.Locals(helpers.MergeValues(values...)),
					Partials: engine.Partials(partialsMap),
					Settings: viewSettings(config, views, viewEngine),
					Template: inline,
				},
				To: to,
			}

			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer cancel()

			err = task.Run(ctx)
			if !watch {
				if err != nil {
					log.Fatal(err.Error())
				}
				return
			}
			if err != nil {
				log.Error(err.Error())
			}

			files := task.WatchedFiles()
			if len(files) == 0 {
				log.Fatal("No files to watch.")
			}

			log.InfoC(log.Aurora.Bold(
				fmt.Sprintf(":eyes:Watching %d files...", len(files))))

			err = helpers.Watch(ctx, files, func(f string) {
				log.Debug(fmt.Sprintf("File %s changed.", f))
				if err := task.Run(ctx); err != nil {
					log.Error(err.Error())
				}
			})
			if err != nil {
				log.Fatal(err.Error())
			}
		},
	}

	flags := cmd.Flags()
	flags.Bool("inline", false, "The argument is the template text.")
	flags.StringArray("values", []string{},
		"Values file (yaml, json, toml) with the locals.")
	flags.StringArray("set", []string{}, "Set a local with name=value.")
	flags.StringArray("partial", []string{},
		"Define a partial with name=locator.")
	flags.StringArray("views", []string{},
		"View directory. Repeat the flag to define a search list.")
	flags.String("view-engine", "", "Extension of the template files.")
	flags.String("backend", "", "Loader backend: dir|s3|http.")
	flags.String("to", "", "Write the rendered text to the specified file.")
	flags.Bool("watch", false, "Render again on change of the local files.")

	flags.String("dir-root", "", "Root directory of the dir backend.")
	flags.String("minio-endpoint", "", "Set minio endpoint.")
	flags.String("minio-bucket", "", "Set minio bucket.")
	flags.String("minio-keyid", "", "Set minio Key ID.")
	flags.String("minio-secret", "", "Set minio Secret.")
	flags.String("minio-region", "", "Set minio region.")
	flags.String("minio-prefix", "", "Set minio object prefix.")
	flags.String("http-base-url", "", "Base URL of the http backend.")

	return cmd
}
