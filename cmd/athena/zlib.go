package main

import (
	"fmt"

	"github.com/dnakit/athena/binio"
	"github.com/dnakit/athena/compression"

	"github.com/scott-cotton/cli"
)

func zlibCmd(cfg *ZlibConfig, cc *cli.Context, args []string) error {
	cfg.Level = compression.DefaultCompression
	args, err := cfg.Zlib.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: zlib requires 2 args, got %v", cli.ErrUsage, args)
	}
	in, out := args[0], args[1]
	opts := []binio.Option{
		binio.WithLogger(theLog),
		binio.WithBlockSize(cfg.Block),
		binio.WithProgress(func(done, total int64) {
			theLog.Debug("progress", "done", done, "total", total)
		}),
	}
	r, err := binio.LoadFile(in, opts...)
	if err != nil {
		return err
	}
	var data []byte
	if cfg.Decompress {
		zr, err := compression.InflateReader(r, opts...)
		if err != nil {
			return fmt.Errorf("error inflating %s: %w", in, err)
		}
		if !r.AtEnd() {
			theLog.Warn("trailing data after zlib stream", "file", in, "at", r.Position(), "length", r.Length())
		}
		data = zr.Data()
	} else {
		data, err = compression.Deflate(r.Data(), cfg.Level)
		if err != nil {
			return fmt.Errorf("error deflating %s: %w", in, err)
		}
	}
	w := binio.NewGrowableWriter(len(data), opts...)
	w.WriteBytes(data)
	if err := w.Save(out); err != nil {
		return err
	}
	theLog.Debug("wrote", "file", out, "bytes", w.Length())
	return nil
}
