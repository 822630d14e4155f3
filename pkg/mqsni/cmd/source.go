package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const channelPrompt = "Enter IBM MQ channel name: "

// ChannelSource yields the channel name to convert.
type ChannelSource interface {
	Channel() (string, error)
}

// argSource returns a channel name given on the command line.
type argSource string

func (a argSource) Channel() (string, error) {
	return string(a), nil
}

// promptSource asks for the channel name and reads a single line.
type promptSource struct {
	in     io.Reader
	prompt io.Writer
}

func (p promptSource) Channel() (string, error) {
	_, _ = fmt.Fprint(p.prompt, channelPrompt)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read channel name: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (rt *runtimeState) source(args []string) (ChannelSource, error) {
	switch {
	case rt.channel != "" && len(args) > 0:
		return nil, fmt.Errorf("channel given both as --channel %q and argument %q", rt.channel, args[0])
	case rt.channel != "":
		return argSource(rt.channel), nil
	case len(args) > 0:
		return argSource(args[0]), nil
	}
	return promptSource{in: rt.input, prompt: rt.promptWriter()}, nil
}
