package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	streamio "github.com/qianyuzh/stream-gadgets/stream-io"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	text, err := streamio.ReadLine(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to drain stdin")
	}
	fmt.Print(text)
}
