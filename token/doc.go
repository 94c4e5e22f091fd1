// Package token holds the lexical rules the YAML emitter needs: when a
// plain scalar would be misread and how to quote it.
package token
