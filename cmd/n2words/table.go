// YAML scale-table loading and language listing for the CLI.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	n2words "github.com/forzagreen/n2words-sub002"
	"github.com/forzagreen/n2words-sub002/profile"
)

// tableEntry is one YAML scale-table row. Value is a string so magnitudes
// past int64 range survive the trip.
type tableEntry struct {
	Value string `yaml:"value"`
	Word  string `yaml:"word"`
}

// loadTable reads a YAML entry list and validates it as a ScaleTable.
func loadTable(path string) (profile.ScaleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw []tableEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	entries := make([]profile.ScaleEntry, len(raw))
	for i, e := range raw {
		v, ok := new(big.Int).SetString(e.Value, 10)
		if !ok {
			return nil, fmt.Errorf("%s: entry %d: %q is not an integer", path, i, e.Value)
		}
		entries[i] = profile.ScaleEntry{Value: v, Word: e.Word}
	}
	return profile.NewScaleTable(entries)
}

// languageInfo is the YAML shape emitted by "languages --yaml".
type languageInfo struct {
	Code     string `yaml:"code"`
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"`
	Decimals string `yaml:"decimals"`
}

func printLanguagesYAML(cmd *cobra.Command) error {
	infos := make([]languageInfo, 0, len(n2words.Languages()))
	for _, code := range n2words.Languages() {
		p, err := n2words.Profile(code)
		if err != nil {
			return err
		}
		info := languageInfo{Code: p.Code, Name: p.Name}
		switch p.Strategy {
		case profile.Greedy:
			info.Strategy = "greedy"
		case profile.Segment:
			info.Strategy = "segment"
		}
		switch p.DecimalMode {
		case profile.GroupedDecimal:
			info.Decimals = "grouped"
		case profile.PerDigitDecimal:
			info.Decimals = "per-digit"
		}
		infos = append(infos, info)
	}

	out, err := yaml.Marshal(infos)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
