// Package parse provides YAML parsing into ir node trees.
package parse

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/dnakit/athena/ir"
	"github.com/dnakit/athena/stream"
)

// Parse parses one YAML document. On failure the returned tree is an empty
// mapping, never nil, and the error wraps ErrParse.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{logger: slog.Default()}
	for _, f := range opts {
		f(pOpts)
	}
	dec := stream.NewDecoder(bytes.NewReader(d), pOpts.streamOpts()...)
	for i := 0; i <= pOpts.document; i++ {
		if err := dec.NextDocument(); err != nil {
			if err == io.EOF {
				err = fmt.Errorf("%w: %w: document %d", ErrParse, ErrNoInput, pOpts.document)
			}
			return failed(pOpts, err)
		}
	}
	res, err := build(dec)
	if err != nil {
		return failed(pOpts, err)
	}
	return res, nil
}

// ParseAll parses every document of d.
func ParseAll(d []byte, opts ...ParseOption) ([]*ir.Node, error) {
	pOpts := &parseOpts{logger: slog.Default()}
	for _, f := range opts {
		f(pOpts)
	}
	dec := stream.NewDecoder(bytes.NewReader(d), pOpts.streamOpts()...)
	var res []*ir.Node
	for i := 0; ; i++ {
		if err := dec.NextDocument(); err != nil {
			if err == io.EOF {
				return res, nil
			}
			return res, fmt.Errorf("document %d: %w", i, err)
		}
		node, err := build(dec)
		if err != nil {
			return res, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, node)
	}
}

func build(r stream.EventReader) (*ir.Node, error) {
	b := stream.NewBuilder()
	if err := stream.Copy(b, r); err != nil {
		return nil, err
	}
	return b.Root()
}

func failed(o *parseOpts, err error) (*ir.Node, error) {
	o.logger.Debug("parse failed", "err", err)
	return ir.NewMapping(), err
}
