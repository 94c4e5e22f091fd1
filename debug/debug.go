package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	YAML   bool
	Size   bool
	Binary bool
}

var d *debug

func init() {
	d = &debug{}
	d.YAML = boolEnv("ATHENA_DEBUG_YAML")
	d.Size = boolEnv("ATHENA_DEBUG_SIZE")
	d.Binary = boolEnv("ATHENA_DEBUG_BINARY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// YAML reports whether document navigation is traced.
func YAML() bool {
	return d.YAML
}

// Size reports whether size accumulation is traced.
func Size() bool {
	return d.Size
}

// Binary reports whether record-level binary marshalling is traced.
func Binary() bool {
	return d.Binary
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
