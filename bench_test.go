package ctab_test

import (
	"testing"
	"time"

	"github.com/sky-flux/ctab"
)

// BenchmarkCompile measures resolving and parsing a typical expression.
func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ctab.Compile("*/15 9-17 * jan-jun mon-fri"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatches measures a single match check.
func BenchmarkMatches(b *testing.B) {
	s, err := ctab.Compile("*/15 9-17 * * mon-fri")
	if err != nil {
		b.Fatal(err)
	}
	now := time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Matches(now)
	}
}

// BenchmarkNextDaily measures finding one occurrence of a daily schedule,
// which scans up to a day of minutes.
func BenchmarkNextDaily(b *testing.B) {
	s, err := ctab.Compile("30 4 * * *")
	if err != nil {
		b.Fatal(err)
	}
	start := time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Iterate(start).Next()
	}
}
