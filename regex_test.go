package thompson

import (
	"errors"
	"testing"

	"github.com/coregx/thompson/nfa"
	"github.com/coregx/thompson/syntax"
)

// TestCompile tests basic compilation
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"alternation", "foo|bar", false},
		{"quantifiers", "a*b+c?", false},
		{"grouping", "(a|b)*c", false},
		{"escapes", `a\*b\\c`, false},
		{"empty pattern", "", false},
		{"unclosed group", "(a", true},
		{"leading quantifier", "*a", true},
		{"trailing alternation", "a|", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && n == nil {
				t.Error("Compile() returned nil")
			}
		})
	}
}

// TestCompile_EmptyPattern tests that the empty pattern yields the
// empty-string automaton without going through the parser (which
// rejects an empty input).
func TestCompile_EmptyPattern(t *testing.T) {
	n, err := Compile("")
	if err != nil {
		t.Fatalf("Compile(\"\") error: %v", err)
	}
	if !n.MatchString("") {
		t.Error("empty pattern rejects the empty word")
	}
	if n.MatchString("x") {
		t.Error("empty pattern accepts \"x\"")
	}

	if _, err := Parse(""); !errors.Is(err, syntax.ErrUnexpectedEOF) {
		t.Errorf("Parse(\"\") error = %v, want ErrUnexpectedEOF", err)
	}
}

// TestMustCompile tests panic on invalid pattern
func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile("(") // Should panic
}

// TestParse_Errors tests the error surface promised by Parse.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"(a", syntax.ErrUnexpectedEOF},
		{"*a", syntax.ErrUnexpectedSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

// TestMatch tests the package-level match entry point against the
// documented acceptance examples.
func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "ab", false},
		{"a|b", "", false},
		{"(a|b)*c", "c", true},
		{"(a|b)*c", "ac", true},
		{"(a|b)*c", "bbac", true},
		{"(a|b)*c", "d", false},
		{"(a|b)*c", "ca", false},
		{`a\*`, "a*", true},
		{`a\*`, "aaaa", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.word, func(t *testing.T) {
			n := MustCompile(tt.pattern)
			if got := Match(n, tt.word); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.word, got, tt.want)
			}
		})
	}
}

// TestCompileTree tests the tree entry point with a parsed tree.
func TestCompileTree(t *testing.T) {
	tree, err := Parse("a|b")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	n, err := CompileTree(tree)
	if err != nil {
		t.Fatalf("CompileTree error: %v", err)
	}
	if !n.MatchString("a") || !n.MatchString("b") || n.MatchString("ab") {
		t.Error("CompileTree automaton accepts the wrong language")
	}
}

// TestCompilePostfix tests the postfix entry point including its
// fail-fast behavior.
func TestCompilePostfix(t *testing.T) {
	n, err := CompilePostfix("ab|*c.")
	if err != nil {
		t.Fatalf("CompilePostfix error: %v", err)
	}
	if !n.MatchString("bbac") || n.MatchString("ca") {
		t.Error("CompilePostfix automaton accepts the wrong language")
	}

	if _, err := CompilePostfix("*"); !errors.Is(err, nfa.ErrMissingOperand) {
		t.Errorf("CompilePostfix(\"*\") error = %v, want ErrMissingOperand", err)
	}
}

// TestQuoteMeta tests that quoting turns any string into a pattern
// matching exactly that string.
func TestQuoteMeta(t *testing.T) {
	tests := []string{
		"plain",
		"a*",
		"(a|b)+c?",
		`back\slash`,
		"",
	}

	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			quoted := QuoteMeta(s)
			if s == "" {
				if quoted != "" {
					t.Errorf("QuoteMeta(\"\") = %q", quoted)
				}
				return
			}
			n := MustCompile(quoted)
			if !n.MatchString(s) {
				t.Errorf("compiled QuoteMeta(%q) rejects %q", s, s)
			}
			if n.MatchString(s + "x") {
				t.Errorf("compiled QuoteMeta(%q) accepts %q", s, s+"x")
			}
		})
	}
}
