package yamldoc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

var classTypePath = mustPath("$." + ClassTypeKey)

func mustPath(s string) *yaml.Path {
	p, err := yaml.PathString(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ClassType returns the DNAType of the document in data without building a
// node tree. A document without one yields "" and a nil error.
func ClassType(data []byte) (string, error) {
	var v any
	if err := classTypePath.Read(bytes.NewReader(data), &v); err != nil {
		if errors.Is(err, yaml.ErrNotFoundNode) {
			return "", nil
		}
		return "", fmt.Errorf("peek %s: %w", ClassTypeKey, err)
	}
	s, ok := v.(string)
	if !ok {
		return "", nil
	}
	return s, nil
}

// PeekClassType reports whether the document in data declares the DNAType
// expected. data is not modified.
func PeekClassType(data []byte, expected string) (bool, error) {
	s, err := ClassType(data)
	if err != nil {
		return false, err
	}
	return s == expected, nil
}
