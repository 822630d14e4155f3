package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telekom/mq-sni/pkg/mqsni/output"
	"github.com/telekom/mq-sni/pkg/sni"
)

func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decode SNI",
		Short:   "Recover the IBM MQ channel name from an SNI hostname",
		Example: "  mqsni decode system2e-def2e-svrconn.chl.mq.ibm.com",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			name, err := sni.Decode(args[0])
			if err != nil {
				rt.log.Debugw("Failed to decode SNI", "sni", args[0], "error", err)
				return fmt.Errorf("cannot decode %s: %w", args[0], err)
			}
			rt.log.Debugw("Decoded SNI", "sni", args[0], "channel", name)
			return output.WriteDecoded(rt.Writer(), rt.format, args[0], name)
		},
	}
}
