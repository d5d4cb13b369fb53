package docseg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAbbreviation(t *testing.T) {
	tests := []struct {
		span string
		want bool
	}{
		// Listed.
		{"Mr.", true},
		{"MR.", true},
		{"etc.", true},
		{"e.g.", true},
		{"bzw.", true},
		{"Mr", false},
		{"cat.", false},
		{"", false},

		// After a slash.
		{"and/etc.", true},
		{"and/", false},

		// Times of day.
		{"5:07P.M.", true},
		{"2a.m.", true},
		{"11p.m.", true},
		{"12:5p.m.", false},
		{"123a.m.", false},
		{"5:07pm.", false},

		// Compounds.
		{"std.err.", true},
		{"std.err", false},
		{"ab.cd.", false},

		// Consonant runs.
		{"bldgs.", true},
		{"rhythm.", false},
		{"bldg", false},
	}
	for _, tt := range tests {
		t.Run(tt.span, func(t *testing.T) {
			require.Equal(t, tt.want, IsAbbreviation([]rune(tt.span)))
		})
	}
}

func TestAbbreviationTable_Veto(t *testing.T) {
	table := DefaultAbbreviations().Clone()
	require.True(t, table.IsAbbreviation([]rune("fig.")))
	require.True(t, table.IsAbbreviation([]rune("bldgs.")))

	table.AddNonAbbreviations("Fig", "bldgs.")
	require.False(t, table.IsAbbreviation([]rune("fig.")))
	require.False(t, table.IsAbbreviation([]rune("FIG.")))
	require.False(t, table.IsAbbreviation([]rune("bldgs.")))

	// The default table is untouched.
	require.True(t, IsAbbreviation([]rune("fig.")))
}

func TestAbbreviationTable_AddAndClone(t *testing.T) {
	table := NewAbbreviationTable("Zzq")
	require.Equal(t, 1, table.Len())
	require.True(t, table.IsAbbreviation([]rune("ZZQ.")))
	require.False(t, table.IsAbbreviation([]rune("mr.")))

	table.Add("zzq.", " zzq ")
	require.Equal(t, 1, table.Len())

	clone := table.Clone()
	clone.Add("qqz")
	require.Equal(t, 2, clone.Len())
	require.Equal(t, 1, table.Len())
	require.False(t, table.IsAbbreviation([]rune("qqz.")))
}

func TestDefaultAbbreviations(t *testing.T) {
	require.Same(t, DefaultAbbreviations(), DefaultAbbreviations())
	require.Equal(t, len(builtinAbbreviations), DefaultAbbreviations().Len())
}

func TestAbbreviationTable_ConcurrentReads(t *testing.T) {
	table := DefaultAbbreviations()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !table.IsAbbreviation([]rune("etc.")) {
					t.Error("etc. not recognized")
					return
				}
			}
		}()
	}
	wg.Wait()
}
