package normalize

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudoping01/bambara-text-normalization/contraction"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name   string           `json:"name"`
	Preset string           `json:"preset"`
	Mode   contraction.Mode `json:"mode"`
	Input  string           `json:"input"`
	Want   string           `json:"want"`
}

const goldenPath = "../data/golden/normalize.json"

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
			cfg, err := Preset(tc.Preset, tc.Mode)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, Normalize(tc.Input, cfg), "Normalize(%q) with %s/%s", tc.Input, tc.Preset, tc.Mode)
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
		cfg, err := Preset(tc.Preset, tc.Mode)
		require.NoError(t, err)
		tc.Want = Normalize(tc.Input, cfg)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	require.NoError(t, err)
	out = append(out, '\n')
	require.NoError(t, os.WriteFile(goldenPath, out, 0644))

	t.Log("golden file updated, review with: git diff data/golden/normalize.json")
}
