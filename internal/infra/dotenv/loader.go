// Package dotenv reads NAME=VALUE definitions files.
//
// Values are taken literally: no unquoting, no escapes, no interpolation and
// no inline comments. Only surrounding whitespace is trimmed.
package dotenv

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.DefinitionsLoader = (*Loader)(nil)

// LoadDefinitions parses the file at path. A missing file yields a
// KindMissingDefinitions error.
func (l *Loader) LoadDefinitions(path string) (domain.Definitions, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.MissingDefinitions("dotenv.load", path)
		}
		return nil, domain.Execution("dotenv.load", path, err)
	}
	defer f.Close()

	defs, err := Parse(f)
	if err != nil {
		return nil, domain.Execution("dotenv.read", path, err)
	}
	return defs, nil
}

// Parse reads definitions line by line. Blank lines, # comments and lines
// without '=' are skipped. The first '=' splits name from value and the last
// occurrence of a name wins. Line length is unbounded.
func Parse(r io.Reader) (domain.Definitions, error) {
	defs := domain.Definitions{}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if key, value, ok := ParseLine(line); ok {
			defs[key] = value
		}
		if errors.Is(err, io.EOF) {
			return defs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ParseLine splits a single definitions line. ok is false for lines that
// carry no definition.
func ParseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}
