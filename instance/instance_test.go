package instance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/tableau/model"
)

const twoVariableText = `2 4
1 1 1 0
1 -1 0 1
4 2
3 2 0 0
0
`

func TestReadText(t *testing.T) {
	inst, err := ReadText(strings.NewReader(twoVariableText))
	require.NoError(t, err)
	p := inst.Problem
	assert.Equal(t, 2, p.NumRows)
	assert.Equal(t, 4, p.NumCols)
	assert.Equal(t, [][]float64{{1, 1, 1, 0}, {1, -1, 0, 1}}, p.Rows())
	assert.Equal(t, 2.0, p.B.AtVec(1))
	assert.Equal(t, 3.0, p.C.AtVec(0))
	assert.Nil(t, inst.Basis)
}

func TestReadTextCommentsAndDecimals(t *testing.T) {
	in := "# header only has m\n1\n\n-1 1 1\n0.5\n1 0 0\n-2.25\n"
	inst, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 0.5, inst.Problem.B.AtVec(0))
	assert.Equal(t, -2.25, inst.Problem.Z)
}

func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "", want: ErrSyntax},
		{name: "bad number", in: "1\n1 x\n", want: ErrSyntax},
		{name: "fractional dimension", in: "1.5\n", want: ErrSyntax},
		{name: "too many header values", in: "1 2 3\n", want: ErrSyntax},
		{name: "truncated", in: "2\n1 0\n0 1\n1 1\n", want: ErrSyntax},
		{name: "two values for z", in: "1\n1 1\n1\n1 0\n0 0\n", want: ErrSyntax},
		{name: "header column mismatch", in: "1 3\n1 1\n1\n1 0\n0\n", want: model.ErrInvalidDimensions},
		{name: "b length", in: "1\n1 1\n1 2\n1 0\n0\n", want: model.ErrInvalidDimensions},
		{name: "c length", in: "1\n1 1\n1\n1 0 0\n0\n", want: model.ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReadYAML(t *testing.T) {
	in := `
a: [[1, 1, 1, 0], [1, -1, 0, 1]]
b: [4, 2]
c: [3, 2, 0, 0]
z: 1.5
basis: [2, 3]
`
	inst, err := ReadYAML(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, inst.Problem.NumCols)
	assert.Equal(t, 1.5, inst.Problem.Z)
	assert.Equal(t, []int{2, 3}, inst.Basis)
}

func TestReadYAMLErrors(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("a: [[1]]\nb: [1]\nc: [1]\nextra: 1\n"))
	assert.True(t, errors.Is(err, ErrSyntax), "got %v", err)

	_, err = ReadYAML(strings.NewReader("a: [[1, 0]]\nb: [1, 2]\nc: [1, 0]\n"))
	assert.True(t, errors.Is(err, model.ErrInvalidDimensions), "got %v", err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	inst, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, inst.Problem.NumCols)

	txt := filepath.Join(dir, "lp.txt")
	require.NoError(t, os.WriteFile(txt, []byte(twoVariableText), 0o600))
	inst, err = Load(txt)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.Problem.NumCols)

	yml := filepath.Join(dir, "lp.YML")
	require.NoError(t, os.WriteFile(yml, []byte("a: [[1, 1]]\nb: [1]\nc: [1, 0]\nbasis: [1]\n"), 0o600))
	inst, err = Load(yml)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, inst.Basis)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadRegisteredReader(t *testing.T) {
	want := &Instance{Problem: model.Default()}
	Register(".fake", func(path string) (*Instance, error) {
		assert.Equal(t, "problem.fake", path)
		return want, nil
	})

	got, err := Load("problem.fake")
	require.NoError(t, err)
	assert.Same(t, want, got)
}
