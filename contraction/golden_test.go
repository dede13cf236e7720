package contraction

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name       string `json:"name"`
	Input      string `json:"input"`
	Expanded   string `json:"expanded"`
	Contracted string `json:"contracted"`
}

const goldenPath = "../data/golden/contraction.json"

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
			assert.Equal(t, tc.Expanded, ExpandText(tc.Input), "ExpandText(%q)", tc.Input)
			assert.Equal(t, tc.Contracted, ContractText(tc.Expanded), "ContractText(%q)", tc.Expanded)
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
		tc.Expanded = ExpandText(tc.Input)
		tc.Contracted = ContractText(tc.Expanded)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	require.NoError(t, err)
	out = append(out, '\n')
	require.NoError(t, os.WriteFile(goldenPath, out, 0644))

	t.Log("golden file updated, review with: git diff data/golden/contraction.json")
}
