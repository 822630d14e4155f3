package main

import (
	"errors"
	"fmt"
	"os"

	mqsnicmd "github.com/telekom/mq-sni/pkg/mqsni/cmd"
	"github.com/telekom/mq-sni/pkg/sni"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := mqsnicmd.DefaultConfig()
	root := mqsnicmd.NewRootCommand(cfg)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		// The rejection line for an invalid channel name is already on stdout.
		if !errors.Is(err, sni.ErrInvalidChannelName) {
			_, _ = fmt.Fprintf(cfg.ErrorWriter, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
