package main

import (
	"fmt"
	"io"

	"github.com/dnakit/athena/encode"
	"github.com/dnakit/athena/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		in, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := viewDocs(cfg, cc.Out, in); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func viewDocs(cfg *ViewConfig, w io.Writer, in []byte) error {
	docs, err := parse.ParseAll(in, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if cfg.Check {
		return nil
	}
	opts := append(cfg.encOpts(w), encode.DocStart(true))
	for i, doc := range docs {
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
	}
	return nil
}
