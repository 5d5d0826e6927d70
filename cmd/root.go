package cmd

import (
	"fmt"
	"os"

	"github.com/flytaly/mdnodes/cmd/app"
	"github.com/flytaly/mdnodes/pkg/render"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func getConfig(cmd *cobra.Command) (app.ProgramCfg, error) {
	formatName, _ := cmd.Flags().GetString("format")
	logPath, _ := cmd.Flags().GetString("log")
	skipBlank, _ := cmd.Flags().GetBool("skip-blank")
	noColor, _ := cmd.Flags().GetBool("no-color")
	interval, _ := cmd.Flags().GetDuration("interval")

	format, err := render.ParseFormat(formatName)
	if err != nil {
		return app.ProgramCfg{}, err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		noColor = true
	}
	return app.ProgramCfg{
		Format:    format,
		LogPath:   logPath,
		SkipBlank: skipBlank,
		NoColor:   noColor,
		Interval:  interval,
	}, nil
}

func newProgram(cmd *cobra.Command) *app.Program {
	cfg, err := getConfig(cmd)
	if err != nil {
		exit(err)
	}
	p, err := app.NewProgram(cfg, os.Stdin, os.Stdout)
	if err != nil {
		exit(err)
	}
	return p
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdnodes [file...]",
	Short: "Parse Markdown files into a list of document nodes",
	Long: `Parse Markdown files into a list of document nodes

Every line of a file becomes one node (heading, paragraph, list item, quote,
rule or image) with its inline runs, and every fenced code block becomes a
single code block node. Reads standard input if no file or "-" is given.
`,
	Run: func(cmd *cobra.Command, args []string) {
		p := newProgram(cmd)
		err := p.Run(args)
		p.Close()
		if err != nil {
			exit(err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version string) {
	rootCmd.Version = version
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", string(render.FormatTree), "output format: tree, yaml or html")
	rootCmd.PersistentFlags().StringP("log", "l", "", "path to the log file")
	rootCmd.PersistentFlags().Bool("skip-blank", false, "don't output blank lines as empty paragraphs")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}
