package nfa

import (
	"strings"
	"testing"
)

// buildFrag finalizes a single fragment or fails the test.
func buildFrag(t *testing.T, b *Builder, f Fragment) *NFA {
	t.Helper()
	n, err := b.Build(f)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return n
}

// TestBuilder_Epsilon checks the empty-string fragment.
func TestBuilder_Epsilon(t *testing.T) {
	b := NewBuilder()
	n := buildFrag(t, b, b.Epsilon())

	if !n.MatchString("") {
		t.Error("epsilon automaton rejects the empty string")
	}
	if n.MatchString("x") {
		t.Error("epsilon automaton accepts \"x\"")
	}
}

// TestBuilder_Symbol checks the single-symbol fragment.
func TestBuilder_Symbol(t *testing.T) {
	b := NewBuilder()
	n := buildFrag(t, b, b.Symbol('a'))

	tests := []struct {
		word string
		want bool
	}{
		{"a", true},
		{"b", false},
		{"", false},
		{"aa", false},
	}
	for _, tt := range tests {
		if got := n.MatchString(tt.word); got != tt.want {
			t.Errorf("Symbol('a').Match(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

// TestBuilder_Union checks that union accepts exactly the words either
// operand accepts.
func TestBuilder_Union(t *testing.T) {
	b := NewBuilder()
	n := buildFrag(t, b, b.Union(b.Symbol('a'), b.Symbol('b')))

	tests := []struct {
		word string
		want bool
	}{
		{"a", true},
		{"b", true},
		{"ab", false},
		{"", false},
		{"c", false},
	}
	for _, tt := range tests {
		if got := n.MatchString(tt.word); got != tt.want {
			t.Errorf("Union(a, b).Match(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

// TestBuilder_Concat checks that concatenation accepts exactly the
// words splittable into a prefix from the first operand and a suffix
// from the second.
func TestBuilder_Concat(t *testing.T) {
	b := NewBuilder()
	// (a|b)(b|c)
	left := b.Union(b.Symbol('a'), b.Symbol('b'))
	right := b.Union(b.Symbol('b'), b.Symbol('c'))
	n := buildFrag(t, b, b.Concat(left, right))

	tests := []struct {
		word string
		want bool
	}{
		{"ab", true},
		{"ac", true},
		{"bb", true},
		{"bc", true},
		{"a", false},
		{"c", false},
		{"", false},
		{"abc", false},
	}
	for _, tt := range tests {
		if got := n.MatchString(tt.word); got != tt.want {
			t.Errorf("Concat.Match(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

// TestBuilder_Closure checks Kleene star: empty word plus any
// repetition count.
func TestBuilder_Closure(t *testing.T) {
	b := NewBuilder()
	n := buildFrag(t, b, b.Closure(b.Symbol('a')))

	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aaaa", true},
		{strings.Repeat("a", 200), true},
		{"b", false},
		{"aab", false},
	}
	for _, tt := range tests {
		if got := n.MatchString(tt.word); got != tt.want {
			t.Errorf("Closure(a).Match(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

// TestBuilder_ZeroOrOne checks the optional fragment.
func TestBuilder_ZeroOrOne(t *testing.T) {
	b := NewBuilder()
	n := buildFrag(t, b, b.ZeroOrOne(b.Symbol('a')))

	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aa", false},
		{"b", false},
	}
	for _, tt := range tests {
		if got := n.MatchString(tt.word); got != tt.want {
			t.Errorf("ZeroOrOne(a).Match(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

// TestBuilder_OneOrMore checks the plus fragment: like closure but the
// empty word is rejected.
func TestBuilder_OneOrMore(t *testing.T) {
	b := NewBuilder()
	n := buildFrag(t, b, b.OneOrMore(b.Symbol('a')))

	tests := []struct {
		word string
		want bool
	}{
		{"", false},
		{"a", true},
		{"aaa", true},
		{"b", false},
	}
	for _, tt := range tests {
		if got := n.MatchString(tt.word); got != tt.want {
			t.Errorf("OneOrMore(a).Match(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

// TestBuilder_SingleAcceptInvariant checks that after any composition
// exactly one arena state carries the accept flag, and it is the
// fragment's end state.
func TestBuilder_SingleAcceptInvariant(t *testing.T) {
	compose := []struct {
		name  string
		build func(b *Builder) Fragment
	}{
		{"concat", func(b *Builder) Fragment { return b.Concat(b.Symbol('a'), b.Symbol('b')) }},
		{"union", func(b *Builder) Fragment { return b.Union(b.Symbol('a'), b.Symbol('b')) }},
		{"closure", func(b *Builder) Fragment { return b.Closure(b.Symbol('a')) }},
		{"zero or one", func(b *Builder) Fragment { return b.ZeroOrOne(b.Symbol('a')) }},
		{"one or more", func(b *Builder) Fragment { return b.OneOrMore(b.Symbol('a')) }},
		{"nested", func(b *Builder) Fragment {
			return b.Concat(b.Closure(b.Union(b.Symbol('a'), b.Symbol('b'))), b.Symbol('c'))
		}},
	}

	for _, tt := range compose {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			f := tt.build(b)

			accepts := 0
			for i := 0; i < b.States(); i++ {
				if b.states[i].accept {
					accepts++
					if StateID(i) != f.End {
						t.Errorf("accept flag on state %d, fragment end is %d", i, f.End)
					}
				}
			}
			if accepts != 1 {
				t.Errorf("accept states = %d, want 1", accepts)
			}
			if err := b.Validate(f); err != nil {
				t.Errorf("Validate error: %v", err)
			}
		})
	}
}

// TestBuilder_Validate checks arena integrity failures.
func TestBuilder_Validate(t *testing.T) {
	t.Run("out of bounds fragment", func(t *testing.T) {
		b := NewBuilder()
		if err := b.Validate(Fragment{Start: 3, End: 4}); err == nil {
			t.Error("Validate accepted an out-of-bounds fragment")
		}
	})

	t.Run("two fragments share an arena", func(t *testing.T) {
		b := NewBuilder()
		f1 := b.Symbol('a')
		b.Symbol('b') // dangling second accept state
		if err := b.Validate(f1); err == nil {
			t.Error("Validate accepted an arena with two accept states")
		}
	})
}
