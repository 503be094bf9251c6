package script

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a script file from the filesystem.
// Files with .yaml/.yml extension are parsed as YAML, others as text.
func Load(fs afero.Fs, path string) (*Script, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read script %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(bytes.NewReader(data))
	}
}

// Parse reads a text script: one operation per line, "<op> [values...]".
// Empty lines and lines starting with '#' are skipped.
// The optional "type <key type>" directive sets the script key type.
func Parse(r io.Reader) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[0] == "type" {
			if len(fields) != 2 {
				return nil, errors.Wrapf(ErrInvalidScript, "line %d: type directive takes one argument", line)
			}
			keyType, err := ParseKeyType(fields[1])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			s.Type = keyType
			continue
		}
		op, err := newOp(fields[0], fields[1:], line)
		if err != nil {
			return nil, err
		}
		s.Ops = append(s.Ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return s, nil
}

type yamlScript struct {
	Type string      `yaml:"type"`
	Ops  []yaml.Node `yaml:"ops"`
}

type yamlOp struct {
	Op     string      `yaml:"op"`
	Value  yaml.Node   `yaml:"value"`
	Values []yaml.Node `yaml:"values"`
}

// ParseYAML reads a YAML script:
//
//	type: int
//	ops:
//	  - op: add
//	    values: [5, 3, 8]
//	  - op: remove
//	    value: 3
//	  - op: list
//
// Values are taken verbatim from the scalar text, so big numbers keep their precision.
func ParseYAML(data []byte) (*Script, error) {
	var doc yamlScript
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrInvalidScript, err.Error())
	}
	s := &Script{}
	if doc.Type != "" {
		keyType, err := ParseKeyType(doc.Type)
		if err != nil {
			return nil, err
		}
		s.Type = keyType
	}
	for i := range doc.Ops {
		node := &doc.Ops[i]
		var raw yamlOp
		if err := node.Decode(&raw); err != nil {
			return nil, errors.Wrapf(ErrInvalidScript, "line %d: %v", node.Line, err)
		}
		valueNodes := raw.Values
		if raw.Value.Kind != 0 {
			valueNodes = append([]yaml.Node{raw.Value}, valueNodes...)
		}
		values := make([]string, 0, len(valueNodes))
		for _, v := range valueNodes {
			if v.Kind != yaml.ScalarNode {
				return nil, errors.Wrapf(ErrInvalidValue, "line %d: value must be a scalar", v.Line)
			}
			values = append(values, v.Value)
		}
		op, err := newOp(raw.Op, values, node.Line)
		if err != nil {
			return nil, err
		}
		s.Ops = append(s.Ops, op)
	}
	return s, nil
}

func newOp(kind string, values []string, line int) (Op, error) {
	op := Op{
		Kind: OpKind(strings.ToLower(kind)),
		Line: line,
	}
	if !op.Kind.Valid() {
		return Op{}, errors.Wrapf(ErrUnknownOp, "line %d: %q", line, kind)
	}
	if len(values) > 0 {
		op.Values = values
	}
	return op, nil
}
