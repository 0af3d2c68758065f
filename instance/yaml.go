package instance

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"q.log/tableau/model"
)

type document struct {
	A     [][]float64 `yaml:"a"`
	B     []float64   `yaml:"b"`
	C     []float64   `yaml:"c"`
	Z     float64     `yaml:"z"`
	Basis []int       `yaml:"basis,omitempty"`
}

// ReadYAML reads a problem stored as
//
//	a: [[1, 1, 1, 0], [1, -1, 0, 1]]
//	b: [4, 2]
//	c: [3, 2, 0, 0]
//	z: 0
//	basis: [2, 3]   # optional
func ReadYAML(r io.Reader) (*Instance, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrSyntax, "yaml: %v", err)
	}

	p, err := model.NewProblem(doc.A, doc.B, doc.C, doc.Z)
	if err != nil {
		return nil, err
	}
	return &Instance{Problem: p, Basis: doc.Basis}, nil
}
