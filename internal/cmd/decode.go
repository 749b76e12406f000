package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/draftmark/contentstate/pkg/content"
)

func decodeCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "decode",
		Short: "Print the decoded block outline.",
		Long:  "Decode prints one line per block, in reading order, indented by nesting level.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := decodeFile()
			if err != nil {
				return err
			}

			keyColor := color.New(color.FgCyan)
			typeColor := color.New(color.FgYellow)

			blocks := state.BlockMap()
			for _, block := range blocks.Blocks() {
				line := fmt.Sprintf(
					"%s%s %s %q",
					strings.Repeat("  ", nestingLevel(blocks, block)),
					keyColor.Sprint(block.Key()),
					typeColor.Sprint(block.Type()),
					block.Text(),
				)
				if n := countEntities(block); n > 0 {
					line += fmt.Sprintf(" (%d entity chars)", n)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			_, _ = fmt.Fprintf(
				cmd.OutOrStdout(),
				"%d blocks, %d entities\n",
				blocks.Len(),
				state.EntityStore().Len(),
			)
			return nil
		},
	}

	return &cmd
}

func nestingLevel(blocks *content.BlockMap, block *content.BlockNode) int {
	level := 0
	for block.ParentKey() != "" {
		parent, ok := blocks.Get(block.ParentKey())
		if !ok {
			break
		}
		block = parent
		level++
	}
	return level
}

func countEntities(block *content.BlockNode) int {
	count := 0
	for _, c := range block.CharacterList() {
		if c.HasEntity() {
			count++
		}
	}
	return count
}
