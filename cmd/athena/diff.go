package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dnakit/athena/encode"
	"github.com/dnakit/athena/ir"
	"github.com/dnakit/athena/libdiff"
	"github.com/dnakit/athena/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cfg, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cfg, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	var differs bool
	if cfg.Text {
		differs, err = diffText(cfg, cc.Out, a, b)
	} else {
		differs, err = diffTrees(cfg, cc.Out, a, b)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func readDoc(cfg *DiffConfig, cc *cli.Context, file string) (*ir.Node, error) {
	in, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	y, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return y, nil
}

type painter struct {
	ins, del, rep func(string, ...any) string
}

func newPainter(on bool) *painter {
	if !on {
		return &painter{fmt.Sprintf, fmt.Sprintf, fmt.Sprintf}
	}
	return &painter{
		ins: color.New(color.FgGreen).SprintfFunc(),
		del: color.New(color.FgRed).SprintfFunc(),
		rep: color.New(color.FgYellow).SprintfFunc(),
	}
}

func diffTrees(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	changes := libdiff.Diff(a, b)
	p := newPainter(cfg.useColor(w))
	for _, c := range changes {
		var line string
		switch c.Op {
		case libdiff.Insert:
			line = p.ins("%s %s: %s", c.Op, c.Path, inline(c.To))
		case libdiff.Delete:
			line = p.del("%s %s: %s", c.Op, c.Path, inline(c.From))
		default:
			line = p.rep("%s %s: %s -> %s", c.Op, c.Path, inline(c.From), inline(c.To))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return false, err
		}
	}
	return len(changes) != 0, nil
}

// inline renders a node on one line where the emitter allows it.
func inline(n *ir.Node) string {
	s := strings.TrimSuffix(encode.MustString(n), "\n")
	if strings.Contains(s, "\n") {
		return "\n  " + strings.ReplaceAll(s, "\n", "\n  ")
	}
	return s
}

func diffText(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	opts := []encode.EncodeOption{}
	if cfg.Indent != 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	diffs := libdiff.Lines(encode.MustString(a, opts...)+"\n", encode.MustString(b, opts...)+"\n")
	p := newPainter(cfg.useColor(w))
	differs := false
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint, differs = "+", p.ins, true
		case diffpatch.DiffDelete:
			prefix, paint, differs = "-", p.del, true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, paint("%s%s", prefix, line)); err != nil {
				return false, err
			}
		}
	}
	return differs, nil
}
