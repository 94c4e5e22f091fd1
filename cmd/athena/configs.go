package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/dnakit/athena/encode"
	"github.com/dnakit/athena/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	NoColor bool `cli:"name=nocolor desc='never encode with color'"`
	Indent  int  `cli:"name=indent desc='indentation width, 1 to 9'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug records'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseLogger(theLog)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent != 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) setLogLevel() {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
}

type ViewConfig struct {
	*MainConfig

	Check bool `cli:"name=check desc='only check that documents parse'"`
	View  *cli.Command
}

type PeekConfig struct {
	*MainConfig

	Type string `cli:"name=t aliases=type desc='expected DNAType'"`
	Peek *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='diff the normalized text line by line'"`
	Diff    *cli.Command
}

type B64Config struct {
	*MainConfig

	Decode bool `cli:"name=d desc='decode'"`
	B64    *cli.Command
}

type ZlibConfig struct {
	*MainConfig

	Decompress bool `cli:"name=d desc='decompress'"`
	Level      int  `cli:"name=level desc='compression level, -1 to 9'"`
	Block      int  `cli:"name=block desc='file i/o block size in bytes'"`
	Zlib       *cli.Command
}
