// SPDX-License-Identifier: MIT

package instance_test

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/MEGORD/t-methods-calculator/instance"
	"github.com/MEGORD/t-methods-calculator/modi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textbook() *instance.Instance {
	return &instance.Instance{
		Costs: [][]int64{
			{19, 30, 50, 10},
			{70, 30, 40, 60},
			{40, 8, 70, 20},
		},
		Supply: []int64{7, 9, 18},
		Demand: []int64{5, 8, 7, 14},
	}
}

// TestLoad reads every testdata encoding into the same shape.
func TestLoad(t *testing.T) {
	for _, name := range []string{"data_file.txt", "textbook.yaml"} {
		t.Run(name, func(t *testing.T) {
			in, err := instance.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, textbook(), in)
			assert.NoError(t, in.Validate())
			assert.Equal(t, 3, in.Suppliers())
			assert.Equal(t, 4, in.Consumers())
		})
	}

	in, err := instance.Load(filepath.Join("testdata", "two_by_two.json"))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{4, 6}, {8, 4}}, in.Costs)
	assert.Equal(t, []int64{20, 30}, in.Supply)
	assert.Equal(t, []int64{25, 25}, in.Demand)
}

// TestLoad_Errors reports missing files and syntax errors with the path.
func TestLoad_Errors(t *testing.T) {
	_, err := instance.Load(filepath.Join("testdata", "missing.txt"))
	assert.Error(t, err)

	_, err = instance.Load(filepath.Join("testdata", "bad_token.txt"))
	require.ErrorIs(t, err, instance.ErrSyntax)
	assert.Contains(t, err.Error(), "bad_token.txt")
	assert.Contains(t, err.Error(), "line 2")
}

// TestParseText_Lenient skips what it does not understand.
func TestParseText_Lenient(t *testing.T) {
	src := strings.Join([]string{
		"",
		"COSTS",             // too short
		"WEIGHTS 1 2",       // unknown keyword
		"costs 9 9",         // keywords are case-sensitive
		"COSTS 1 2 # first", // trailing comment
		"   COSTS   3 4",
		"# SUPPLY 100",
		"SUPPLY 3",
		"SUPPLY 4",
		"DEMAND 5 2",
	}, "\n")

	in, err := instance.ParseText(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 2}, {3, 4}}, in.Costs)
	assert.Equal(t, []int64{3, 4}, in.Supply)
	assert.Equal(t, []int64{5, 2}, in.Demand)
}

// TestParseText_Empty yields an empty instance that fails validation.
func TestParseText_Empty(t *testing.T) {
	in, err := instance.ParseText(strings.NewReader(""))
	require.NoError(t, err)
	assert.ErrorIs(t, in.Validate(), modi.ErrEmptyInstance)
}

// TestParseText_WideRows reads rows longer than bufio's default token size.
func TestParseText_WideRows(t *testing.T) {
	const consumers = 20000
	costs := "COSTS" + strings.Repeat(" 12345", consumers)
	require.Greater(t, len(costs), 64*1024)
	src := costs + "\n" +
		"SUPPLY " + strconv.Itoa(consumers) + "\n" +
		"DEMAND" + strings.Repeat(" 1", consumers) + "\n"

	in, err := instance.ParseText(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, in.Costs, 1)
	assert.Len(t, in.Costs[0], consumers)
	assert.Len(t, in.Demand, consumers)
	assert.Equal(t, []int64{consumers}, in.Supply)
	require.NoError(t, in.Validate())

	var buf bytes.Buffer
	require.NoError(t, instance.WriteText(&buf, in))
	back, err := instance.ParseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

// TestParseYAML_Errors rejects unknown keys and empty documents.
func TestParseYAML_Errors(t *testing.T) {
	_, err := instance.ParseYAML(strings.NewReader("costs: [[1]]\nsupply: [1]\ndemand: [1]\nweights: [2]\n"))
	assert.ErrorIs(t, err, instance.ErrSyntax)

	_, err = instance.ParseYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, instance.ErrSyntax)

	_, err = instance.ParseYAML(strings.NewReader("supply: [one]\n"))
	assert.ErrorIs(t, err, instance.ErrSyntax)
}

// TestWriteRoundTrip re-parses what the writers produce.
func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, instance.WriteText(&buf, textbook()))
	in, err := instance.ParseText(&buf)
	require.NoError(t, err)
	assert.Equal(t, textbook(), in)

	buf.Reset()
	require.NoError(t, instance.WriteYAML(&buf, textbook()))
	in, err = instance.ParseYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, textbook(), in)
}

// TestClone produces an independent copy.
func TestClone(t *testing.T) {
	orig := textbook()
	cp := orig.Clone()
	cp.Costs[0][0] = 99
	cp.Supply[0] = 99
	cp.Demand[0] = 99

	assert.Equal(t, textbook(), orig)
}

// TestSolve leaves the instance untouched.
func TestSolve(t *testing.T) {
	in := textbook()
	plan := in.NorthwestCorner()
	assert.Equal(t, int64(1015), modi.TotalCost(in.Costs, plan))

	res, err := in.Solve()
	require.NoError(t, err)
	assert.Equal(t, int64(743), res.Cost)
	assert.Equal(t, textbook(), in)
}
