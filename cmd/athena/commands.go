package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "athena").
		WithSynopsis("athena [opts] command [opts]").
		WithDescription("athena is a tool for working with DNA record documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return athenaMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			PeekCommand(cfg),
			DiffCommand(cfg),
			B64Command(cfg),
			ZlibCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("normalize YAML documents, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func PeekCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PeekConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("peek").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("peek [-t type] [files]").
		WithDescription("print the DNAType of documents, or check it with -t").
		WithRun(func(cc *cli.Context, args []string) error {
			return peek(cfg, cc, args)
		})
	cfg.Peek = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-text] <file1> <file2>").
		WithDescription("compare two documents field by field, or line by line with -text").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func B64Command(mainCfg *MainConfig) *cli.Command {
	cfg := &B64Config{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("b64").
		WithOpts(opts...).
		WithSynopsis("b64 [-d] [file]").
		WithDescription("encode or decode Base64 as byte fields are stored in YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return b64Cmd(cfg, cc, args)
		})
	cfg.B64 = cmd
	return cmd
}

func ZlibCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ZlibConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("zlib").
		WithAliases("z").
		WithOpts(opts...).
		WithSynopsis("zlib [-d] [-level n] [-block n] <in> <out>").
		WithDescription("compress or decompress a binary record file").
		WithRun(func(cc *cli.Context, args []string) error {
			return zlibCmd(cfg, cc, args)
		})
	cfg.Zlib = cmd
	return cmd
}
