// Package testsuite drives JSON- or YAML-encoded move generation test
// suites: a starting FEN plus the expected resulting FEN for each SAN
// move played from it. Grounded on
// original_source/bin/test_move_generation.rs's TestSuit/TestCase shape.
package testsuite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/google/go-cmp/cmp"

	"github.com/tinbergen/chesscore/fen"
	"github.com/tinbergen/chesscore/san"
)

// StartCondition names the position a TestCase begins from.
type StartCondition struct {
	Description string `json:"description" yaml:"description"`
	FEN         string `json:"fen" yaml:"fen"`
}

// ExpectedCondition pairs a SAN move with the FEN it must produce.
type ExpectedCondition struct {
	Move string `json:"move" yaml:"move"`
	FEN  string `json:"fen" yaml:"fen"`
}

// TestCase is one starting position and its expected post-move FENs.
type TestCase struct {
	Start    StartCondition      `json:"start" yaml:"start"`
	Expected []ExpectedCondition `json:"expected" yaml:"expected"`
}

// Suite is a named collection of test cases.
type Suite struct {
	Description string     `json:"description" yaml:"description"`
	TestCases   []TestCase `json:"testCases" yaml:"testCases"`
}

// Load reads a Suite from a .json or .yaml/.yml file, dispatching on the
// file extension.
func Load(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("testsuite: %s: %w", path, err)
	}

	var s Suite
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return Suite{}, fmt.Errorf("testsuite: %s: %w", path, err)
	}
	return s, nil
}

// CaseResult is the outcome of checking one expected move against the
// generator and move-applier.
type CaseResult struct {
	StartDescription string
	Move             string
	Passed           bool
	Reason           string
}

// Run checks every test case in s against the real generator, returning
// one CaseResult per expected move.
func Run(s Suite) []CaseResult {
	var results []CaseResult
	for _, tc := range s.TestCases {
		start, err := fen.Parse(tc.Start.FEN)
		if err != nil {
			results = append(results, CaseResult{
				StartDescription: tc.Start.Description,
				Passed:           false,
				Reason:           fmt.Sprintf("invalid start FEN: %v", err),
			})
			continue
		}

		for _, exp := range tc.Expected {
			m, err := san.Parse(&start, exp.Move)
			if err != nil {
				results = append(results, CaseResult{
					StartDescription: tc.Start.Description,
					Move:             exp.Move,
					Passed:           false,
					Reason:           fmt.Sprintf("parse failed: %v", err),
				})
				continue
			}

			got := start.Apply(m)
			want, err := fen.Parse(exp.FEN)
			if err != nil {
				results = append(results, CaseResult{
					StartDescription: tc.Start.Description,
					Move:             exp.Move,
					Passed:           false,
					Reason:           fmt.Sprintf("invalid expected FEN: %v", err),
				})
				continue
			}

			if diff := cmp.Diff(want, got); diff != "" {
				results = append(results, CaseResult{
					StartDescription: tc.Start.Description,
					Move:             exp.Move,
					Passed:           false,
					Reason:           diff,
				})
				continue
			}

			results = append(results, CaseResult{
				StartDescription: tc.Start.Description,
				Move:             exp.Move,
				Passed:           true,
			})
		}
	}
	return results
}

// Failed returns the subset of results that did not pass.
func Failed(results []CaseResult) []CaseResult {
	var failed []CaseResult
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
