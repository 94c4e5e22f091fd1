package main

import (
	"fmt"

	"github.com/dnakit/athena/yamldoc"

	"github.com/scott-cotton/cli"
)

func peek(cfg *PeekConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Peek.Parse(cc, args)
	if err != nil {
		return err
	}
	mismatch := false
	for _, file := range inputs(args) {
		in, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if cfg.Type != "" {
			ok, err := yamldoc.PeekClassType(in, cfg.Type)
			if err != nil {
				return fmt.Errorf("error peeking %s: %w", file, err)
			}
			if !ok {
				theLog.Warn("class type mismatch", "file", file, "want", cfg.Type)
				mismatch = true
			}
			continue
		}
		name, err := yamldoc.ClassType(in)
		if err != nil {
			return fmt.Errorf("error peeking %s: %w", file, err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s: %s\n", file, name); err != nil {
			return err
		}
	}
	if mismatch {
		return cli.ExitCodeErr(1)
	}
	return nil
}
