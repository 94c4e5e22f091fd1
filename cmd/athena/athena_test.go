package main

import (
	"bytes"
	"testing"

	"github.com/dnakit/athena/parse"
	"github.com/google/go-cmp/cmp"
)

func TestViewDocs(t *testing.T) {
	cfg := &ViewConfig{MainConfig: &MainConfig{}}
	var buf bytes.Buffer
	in := "DNAType: T\nc:\n  - 1\n  - 2\n---\n[a, b]\n"
	if err := viewDocs(cfg, &buf, []byte(in)); err != nil {
		t.Fatal(err)
	}
	want := "---\nDNAType: T\nc: [\"1\", \"2\"]\n---\n[a, b]\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffOutput(t *testing.T) {
	a, _ := parse.Parse([]byte("a: 1\nb: [x, y]\n"))
	b, _ := parse.Parse([]byte("a: 2\nb: [x, z, y]\nc: {k: v}\n"))
	cfg := &DiffConfig{MainConfig: &MainConfig{}}

	var buf bytes.Buffer
	differs, err := diffTrees(cfg, &buf, a, b)
	if err != nil || !differs {
		t.Fatalf("differs %v, err %v", differs, err)
	}
	want := "~ $.a: \"1\" -> \"2\"\n+ $.b[1]: z\n+ $.c: {k: v}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	differs, err = diffText(cfg, &buf, a, a)
	if err != nil || differs || buf.String() != " a: \"1\"\n b: [x, y]\n" {
		t.Errorf("same text: differs %v, err %v, out %q", differs, err, buf.String())
	}
}
