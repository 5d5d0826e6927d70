package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and print the nodes of Markdown files when they change",
	Long:  `Watch a directory and print the nodes of Markdown files when they change`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		p := newProgram(cmd)

		stop := make(chan struct{})
		sign := make(chan os.Signal, 1)
		signal.Notify(sign, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sign
			close(stop)
		}()

		err := p.Watch(os.DirFS(root), stop)
		p.Close()
		if err != nil {
			exit(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationP("interval", "i", 500*time.Millisecond, "poll interval duration (e.g. 1s, 500ms...)")
}
