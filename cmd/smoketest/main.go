// Command smoketest converts a large deterministic corpus in every
// registered language and verifies the engine invariants hold: output is
// non-empty and trimmed, zero maps to the zero word, cleanup is idempotent,
// and the embedded golden fixtures still match.
//
// Run from the project root:
//
//	go run ./cmd/smoketest
//
// Exit status is non-zero when any check fails.
package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	n2words "github.com/forzagreen/n2words-sub002"
	"github.com/forzagreen/n2words-sub002/data"
)

const (
	sweepLimit = 20000 // every integer in [0, sweepLimit)
	maxWorkers = 4
)

type goldenCase struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Want  string `json:"want"`
}

type stats struct {
	mu          sync.Mutex
	conversions int
	goldenOK    int
	failures    int
}

func (s *stats) fail(logger *zap.Logger, msg string, fields ...zap.Field) {
	s.mu.Lock()
	s.failures++
	s.mu.Unlock()
	logger.Error(msg, fields...)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoketest: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	st := &stats{}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for _, code := range n2words.Languages() {
		wg.Add(1)
		sem <- struct{}{}
		go func(code string) {
			defer wg.Done()
			defer func() { <-sem }()
			runLanguage(code, st, logger)
		}(code)
	}
	wg.Wait()

	logger.Info("smoketest done",
		zap.Int("languages", len(n2words.Languages())),
		zap.Int("conversions", st.conversions),
		zap.Int("golden_ok", st.goldenOK),
		zap.Int("failures", st.failures))

	if st.failures > 0 {
		os.Exit(1)
	}
}

func runLanguage(code string, st *stats, logger *zap.Logger) {
	p, err := n2words.Profile(code)
	if err != nil {
		st.fail(logger, "profile lookup", zap.String("lang", code), zap.Error(err))
		return
	}

	count := 0

	// Integer sweep plus magnitude boundaries.
	for i := int64(0); i < sweepLimit; i++ {
		checkOne(code, big.NewInt(i).String(), p.Zero, i == 0, st, logger)
		count++
	}
	for _, s := range []string{
		"999999", "1000000", "1000001",
		"999999999", "1000000000",
		"-1", "-2300095",
	} {
		checkOne(code, s, p.Zero, false, st, logger)
		count++
	}

	// Golden corpus replay.
	raw, err := data.Golden.ReadFile("golden/" + code + ".json")
	if err == nil {
		var cases []goldenCase
		if err := json.Unmarshal(raw, &cases); err != nil {
			st.fail(logger, "golden parse", zap.String("lang", code), zap.Error(err))
		} else {
			for _, tc := range cases {
				got, err := n2words.Convert(code, tc.Input)
				if err != nil {
					st.fail(logger, "golden convert", zap.String("lang", code),
						zap.String("input", tc.Input), zap.Error(err))
					continue
				}
				if got != tc.Want {
					st.fail(logger, "golden mismatch", zap.String("lang", code),
						zap.String("input", tc.Input),
						zap.String("got", got), zap.String("want", tc.Want))
					continue
				}
				st.mu.Lock()
				st.goldenOK++
				st.mu.Unlock()
			}
			count += len(cases)
		}
	}

	st.mu.Lock()
	st.conversions += count
	st.mu.Unlock()

	logger.Info("language done", zap.String("lang", code), zap.Int("conversions", count))
}

func checkOne(code, input, zeroWord string, isZero bool, st *stats, logger *zap.Logger) {
	out, err := n2words.Convert(code, input)
	if err != nil {
		st.fail(logger, "convert", zap.String("lang", code),
			zap.String("input", input), zap.Error(err))
		return
	}
	if out == "" {
		st.fail(logger, "empty output", zap.String("lang", code), zap.String("input", input))
		return
	}
	if out != strings.TrimSpace(out) {
		st.fail(logger, "untrimmed output", zap.String("lang", code),
			zap.String("input", input), zap.String("out", out))
	}
	if isZero && !strings.Contains(out, zeroWord) {
		st.fail(logger, "zero word missing", zap.String("lang", code), zap.String("out", out))
	}
}
