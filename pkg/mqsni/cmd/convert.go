package cmd

import (
	"errors"

	"github.com/telekom/mq-sni/pkg/mqsni/output"
	"github.com/telekom/mq-sni/pkg/sni"
)

func (rt *runtimeState) convert(src ChannelSource) error {
	name, err := src.Channel()
	if err != nil {
		rt.log.Errorw("Failed to read channel name", "error", err)
		return err
	}

	res, err := rt.converter.Run(name)
	if err != nil {
		if errors.Is(err, sni.ErrInvalidChannelName) {
			output.WriteInvalid(rt.Writer(), name)
		}
		return err
	}
	if res.URLWarning {
		rt.log.Infow("Generated SNI is not a valid URL hostname", "channel", res.Channel, "sni", res.SNI, "problems", res.URLProblems)
	}
	return output.WriteResult(rt.Writer(), rt.format, res)
}
