package testsuite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinbergen/chesscore/testsuite"
)

const jsonSuite = `{
	"description": "pawn pushes",
	"testCases": [
		{
			"start": {"description": "start position", "fen": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
			"expected": [
				{"move": "e4", "fen": "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"}
			]
		}
	]
}`

const yamlSuite = `
description: pawn pushes
testCases:
  - start:
      description: start position
      fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
    expected:
      - move: e4
        fen: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
`

func TestLoadAndRunJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonSuite), 0o644))

	s, err := testsuite.Load(path)
	require.NoError(t, err)

	results := testsuite.Run(s)
	require.Len(t, results, 1)
	assert.Empty(t, testsuite.Failed(results))
}

func TestLoadAndRunYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSuite), 0o644))

	s, err := testsuite.Load(path)
	require.NoError(t, err)

	results := testsuite.Run(s)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)
}

func TestRunReportsWrongExpectedFEN(t *testing.T) {
	s := testsuite.Suite{
		TestCases: []testsuite.TestCase{
			{
				Start: testsuite.StartCondition{
					FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
				},
				Expected: []testsuite.ExpectedCondition{
					{Move: "e4", FEN: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"},
				},
			},
		},
	}
	results := testsuite.Run(s)
	failed := testsuite.Failed(results)
	require.Len(t, failed, 1)
	assert.NotEmpty(t, failed[0].Reason)
}
