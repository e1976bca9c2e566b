// SPDX-License-Identifier: MIT

package csvio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvrank/internal/csvio"
	"github.com/katalvlaran/lvrank/topsis"
	"github.com/stretchr/testify/require"
)

const laptopsCSV = "Model,Price,Storage,Camera,Looks\n" +
	"A,250,16,12,5\n" +
	"B,200,16,8,3\n" +
	"C,300,32,16,4\n" +
	"D,275,32,8,4\n"

func TestRead(t *testing.T) {
	dm, err := csvio.Read(strings.NewReader("\xEF\xBB\xBF" + laptopsCSV))
	require.NoError(t, err)
	require.Equal(t, []string{"Model", "Price", "Storage", "Camera", "Looks"}, dm.Columns)
	require.Len(t, dm.Rows, 4)
	require.Equal(t, topsis.Row{ID: "C", Values: []float64{300, 32, 16, 4}}, dm.Rows[2])
}

func TestRead_Errors(t *testing.T) {
	_, err := csvio.Read(strings.NewReader(""))
	require.ErrorIs(t, err, csvio.ErrNoHeader)

	_, err = csvio.Read(strings.NewReader("Model,Price\nA,1\nB,2\n"))
	require.ErrorIs(t, err, csvio.ErrTooFewColumns)

	_, err = csvio.Read(strings.NewReader("Model,P,Q\nA,1,x\n"))
	require.ErrorIs(t, err, topsis.ErrNonNumeric)
	var ve *topsis.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, 0, ve.Row)
	require.Equal(t, 1, ve.Column)

	_, err = csvio.Read(strings.NewReader("Model,P,Q\nA,\"1,2\n"))
	require.ErrorIs(t, err, csvio.ErrMalformed)
}

func TestRead_RaggedRowReachesValidate(t *testing.T) {
	dm, err := csvio.Read(strings.NewReader("Model,P,Q\nA,1,2\nB,3\n"))
	require.NoError(t, err)

	_, err = topsis.Validate(dm, topsis.WeightVector{1, 1}, topsis.ImpactVector{topsis.Benefit, topsis.Benefit})
	require.ErrorIs(t, err, topsis.ErrRaggedRow)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := csvio.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, csvio.ErrNotFound)
}

func TestRoundTripThroughFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	out := filepath.Join(dir, "result.csv")
	require.NoError(t, os.WriteFile(in, []byte(laptopsCSV), 0o600))

	dm, err := csvio.ReadFile(in)
	require.NoError(t, err)
	w, err := topsis.ParseWeights("1,1,1,1", 4)
	require.NoError(t, err)
	imp, err := topsis.ParseImpacts("+,+,+,-", 4)
	require.NoError(t, err)
	res, err := topsis.Evaluate(dm, w, imp)
	require.NoError(t, err)

	require.NoError(t, csvio.WriteFile(out, res))
	b, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "Model,Price,Storage,Camera,Looks,Topsis Score,Rank", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "A,250,16,12,5,0.30789"), lines[1])
	require.True(t, strings.HasSuffix(lines[1], ",4"), lines[1])
	require.True(t, strings.HasSuffix(lines[3], ",1"), lines[3])

	enc, err := csvio.Encode(res)
	require.NoError(t, err)
	require.Equal(t, b, enc)
}
