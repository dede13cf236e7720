package evaluate

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudoping01/bambara-text-normalization/contraction"
	"github.com/sudoping01/bambara-text-normalization/normalize"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name       string           `json:"name"`
	Mode       contraction.Mode `json:"mode"`
	Reference  string           `json:"reference"`
	Hypothesis string           `json:"hypothesis"`
	Words      Counts           `json:"words"`
	Chars      Counts           `json:"chars"`
}

const goldenPath = "../data/golden/evaluate.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	require.NoError(t, json.Unmarshal(data, &cases))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			r := New(normalize.ForWEREvaluation(tc.Mode)).Evaluate(tc.Reference, tc.Hypothesis)
			assert.Equal(t, tc.Words, r.Words, "words")
			assert.Equal(t, tc.Chars, r.Chars, "chars")
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "reading golden file for update")

	var cases []goldenCase
	require.NoError(t, json.Unmarshal(data, &cases))

	for i := range cases {
		tc := &cases[i]
		r := New(normalize.ForWEREvaluation(tc.Mode)).Evaluate(tc.Reference, tc.Hypothesis)
		tc.Words, tc.Chars = r.Words, r.Chars
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	require.NoError(t, err)
	out = append(out, '\n')
	require.NoError(t, os.WriteFile(goldenPath, out, 0644))

	t.Log("golden file updated, review with: git diff data/golden/evaluate.json")
}
