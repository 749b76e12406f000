package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/draftmark/contentstate/internal/log"
)

var (
	fileName string
	debug    bool
)

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "contentstate",
		Short:         "Decode range-annotated raw documents into a linked block model",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Set(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	setRootFlags(cmd.PersistentFlags())

	cmd.AddCommand(decodeCmd())
	cmd.AddCommand(jsonCmd())

	return &cmd
}

func setRootFlags(pflags *pflag.FlagSet) {
	pflags.StringVar(&fileName, "filename", "content.json", "A path to the raw document file.")
	pflags.BoolVar(&debug, "debug", false, "Enable debug logging.")
}
