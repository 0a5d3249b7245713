package n2words

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Want  string `json:"want"`
}

func goldenPath(code string) string {
	return fmt.Sprintf("data/golden/%s.json", code)
}

func TestGolden(t *testing.T) {
	for _, code := range Languages() {
		t.Run(code, func(t *testing.T) {
			if *updateGolden {
				updateGoldenFile(t, code)
				return
			}

			data, err := os.ReadFile(goldenPath(code))
			if err != nil {
				if os.IsNotExist(err) {
					t.Skip("golden file not found, run with -update to generate")
				}
				t.Fatalf("reading golden file: %v", err)
			}

			var cases []goldenCase
			if err := json.Unmarshal(data, &cases); err != nil {
				t.Fatalf("parsing golden file: %v", err)
			}

			for _, tc := range cases {
				t.Run(tc.Name, func(t *testing.T) {
					t.Parallel()

					got, err := Convert(code, tc.Input)
					if err != nil {
						t.Fatalf("Convert(%s, %q): %v", code, tc.Input, err)
					}
					if got != tc.Want {
						t.Errorf("Convert(%s, %q) = %q, want %q", code, tc.Input, got, tc.Want)
					}
				})
			}
		})
	}
}

func updateGoldenFile(t *testing.T, code string) {
	t.Helper()

	data, err := os.ReadFile(goldenPath(code))
	if err != nil {
		if os.IsNotExist(err) {
			t.Skipf("no golden file for %s, nothing to update", code)
		}
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		got, err := Convert(code, tc.Input)
		if err != nil {
			t.Fatalf("Convert(%s, %q): %v", code, tc.Input, err)
		}
		tc.Want = got
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath(code), out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Logf("golden file updated, review with: git diff %s", goldenPath(code))
}
