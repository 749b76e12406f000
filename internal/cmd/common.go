package cmd

import (
	"os"

	"github.com/pkg/errors"

	"github.com/draftmark/contentstate/internal/log"
	"github.com/draftmark/contentstate/pkg/content"
	"github.com/draftmark/contentstate/pkg/content/rawconv"
)

func decodeFile() (*content.State, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", fileName)
	}

	return rawconv.DecodeJSON(data, rawconv.Options{Logger: log.Get()})
}
