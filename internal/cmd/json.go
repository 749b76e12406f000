package cmd

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/draftmark/contentstate/pkg/content"
)

func jsonCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "json",
		Short: "Print the decoded model as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := decodeFile()
			if err != nil {
				return err
			}

			entities := make([]*content.Entity, 0, state.EntityStore().Len())
			for _, key := range state.EntityStore().Keys() {
				if e, ok := state.Entity(key); ok {
					entities = append(entities, e)
				}
			}

			out := struct {
				Blocks   []*content.BlockNode `json:"blocks"`
				Entities []*content.Entity    `json:"entities"`
			}{
				Blocks:   state.BlockMap().Blocks(),
				Entities: entities,
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return errors.Wrap(encoder.Encode(out), "failed to write to stdout")
		},
	}

	return &cmd
}
