package main

import (
	"fmt"
	"strings"

	"github.com/dnakit/athena/b64"

	"github.com/scott-cotton/cli"
)

func b64Cmd(cfg *B64Config, cc *cli.Context, args []string) error {
	args, err := cfg.B64.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: b64 takes at most one file, got %v", cli.ErrUsage, args)
	}
	in, err := readInput(cc, inputs(args)[0])
	if err != nil {
		return err
	}
	if !cfg.Decode {
		_, err = fmt.Fprintln(cc.Out, b64.Encode(in))
		return err
	}
	text := strings.Join(strings.Fields(string(in)), "")
	if !b64.Valid(text) {
		theLog.Warn("input is not canonical base64, decoding its valid prefix")
	}
	_, err = cc.Out.Write(b64.Decode(text))
	return err
}
