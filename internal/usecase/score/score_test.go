package score

import (
	"context"
	"math"
	"testing"

	"github.com/bitext-tools/realign/internal/domain"
	"github.com/bitext-tools/realign/internal/usecase/feature"
)

func input(tokens ...string) Input {
	text := ""
	for i, tok := range tokens {
		if i > 0 {
			text += " "
		}
		text += tok
	}
	sent := domain.Sentence{Text: text, Tokens: tokens}
	return Input{Sentence: sent, Features: feature.Extract(sent)}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func inUnitRange(v float64) bool { return v >= 0 && v <= 1 }

// --- length scorers ---

func TestCharLenPerfectRatio(t *testing.T) {
	s := charLen{expected: 1.0}
	a := input("same", "length", "here")
	if got := s.Score(a, a); !almostEqual(got, 1.0) {
		t.Errorf("identical sentences should score 1.0, got %v", got)
	}
}

func TestCharLenDecays(t *testing.T) {
	s := charLen{expected: 1.0}
	short := input("hi")
	long := input("a", "considerably", "longer", "sentence", "than", "the", "other")
	got := s.Score(short, long)
	if !inUnitRange(got) {
		t.Fatalf("score %v out of [0,1]", got)
	}
	if got > 0.5 {
		t.Errorf("wildly different lengths should score low, got %v", got)
	}
	near := input("hi", "yo")
	if s.Score(short, near) <= got {
		t.Error("closer lengths should score higher")
	}
}

func TestCharLenInversionSymmetricDecay(t *testing.T) {
	s := charLen{expected: 1.0}
	a := input("aaaa")       // 4 chars
	b := input("bbbbbbbbb")  // 9 chars
	// (1+4)/(1+9) = 0.5 and its inverse drift the same distance in log space.
	if got, inv := s.Score(a, b), s.Score(b, a); !almostEqual(got, inv) {
		t.Errorf("log-ratio decay should treat 1:2 as 2:1, got %v vs %v", got, inv)
	}
}

func TestCharLenExpectedRatio(t *testing.T) {
	// A language pair where source text runs twice as long as target.
	s := charLen{expected: 2.0}
	src := input("aaaaaaaacareer") // 14 chars -> ratio (1+14)/(1+6) ≈ 2.14
	tgt := input("short1")         // 6 chars
	even := charLen{expected: 1.0}
	if s.Score(src, tgt) <= even.Score(src, tgt) {
		t.Error("matching the expected ratio should raise the score")
	}
}

func TestTokLenPerfectAndDecay(t *testing.T) {
	s := tokLen{expected: 1.0}
	a := input("one", "two", "three")
	if got := s.Score(a, a); !almostEqual(got, 1.0) {
		t.Errorf("equal token counts should score 1.0, got %v", got)
	}
	b := input("one")
	if got := s.Score(a, b); got >= 1.0 || !inUnitRange(got) {
		t.Errorf("unequal token counts should decay below 1, got %v", got)
	}
}

// --- copy pattern / ascii ---

func TestCopyPatternNeutralWithoutEvidence(t *testing.T) {
	s := copyPattern{}
	a := input("no", "literals", "here")
	b := input("none", "there", "either")
	if got := s.Score(a, b); !almostEqual(got, Neutral) {
		t.Errorf("no numeric/URL tokens on either side must yield the midpoint, got %v", got)
	}
}

func TestCopyPatternOverlap(t *testing.T) {
	s := copyPattern{}
	a := input("tour", "on", "2018/07/04", "at", "12:30")
	b := input("visite", "le", "2018/07/04", "à", "12:30")
	if got := s.Score(a, b); !almostEqual(got, 1.0) {
		t.Errorf("full literal overlap should score 1.0, got %v", got)
	}
	c := input("visite", "le", "1999/01/01")
	if got := s.Score(a, c); !almostEqual(got, 0.0) {
		t.Errorf("disjoint literals should score 0.0, got %v", got)
	}
}

func TestCopyPatternOneSidedEvidence(t *testing.T) {
	s := copyPattern{}
	a := input("pay", "25", "dollars")
	b := input("just", "words")
	got := s.Score(a, b)
	if !almostEqual(got, 0.0) {
		t.Errorf("literal on one side only is disagreement, got %v", got)
	}
}

func TestCopyPatternSymmetric(t *testing.T) {
	s := copyPattern{}
	a := input("a", "25", "http://x.org/p")
	b := input("b", "25")
	if got, inv := s.Score(a, b), s.Score(b, a); !almostEqual(got, inv) {
		t.Errorf("copy pattern must be symmetric: %v vs %v", got, inv)
	}
}

func TestAsciiOverlapAndSymmetry(t *testing.T) {
	s := asciiOverlap{}
	a := input("NASA", "ने", "कहा")
	b := input("NASA", "said")
	got := s.Score(a, b)
	if !almostEqual(got, 0.5) { // {NASA} vs {NASA, said}
		t.Errorf("ascii overlap = %v, want 0.5", got)
	}
	if inv := s.Score(b, a); !almostEqual(got, inv) {
		t.Errorf("ascii scorer must be symmetric: %v vs %v", got, inv)
	}
}

func TestAsciiNeutralWithoutEvidence(t *testing.T) {
	s := asciiOverlap{}
	a := input("ने")
	b := input("कहा")
	if got := s.Score(a, b); !almostEqual(got, Neutral) {
		t.Errorf("no ASCII tokens on either side must yield the midpoint, got %v", got)
	}
}

// --- mcss ---

func withVector(in Input, vec []float32) Input {
	in.Vector = vec
	return in
}

func TestMCSSIdenticalVectors(t *testing.T) {
	s := mcss{}
	a := withVector(input("x"), []float32{1, 2, 3})
	if got := s.Score(a, a); !almostEqual(got, 1.0) {
		t.Errorf("identical vectors should score 1.0, got %v", got)
	}
}

func TestMCSSOppositeAndOrthogonal(t *testing.T) {
	s := mcss{}
	a := withVector(input("x"), []float32{1, 0})
	b := withVector(input("y"), []float32{-1, 0})
	if got := s.Score(a, b); !almostEqual(got, 0.0) {
		t.Errorf("opposite vectors should score 0.0, got %v", got)
	}
	c := withVector(input("z"), []float32{0, 1})
	if got := s.Score(a, c); !almostEqual(got, 0.5) {
		t.Errorf("orthogonal vectors should score 0.5, got %v", got)
	}
}

func TestMCSSNeutralWithoutVector(t *testing.T) {
	s := mcss{}
	a := withVector(input("x"), []float32{1, 0})
	oov := input("unseen")
	if got := s.Score(a, oov); !almostEqual(got, Neutral) {
		t.Errorf("unresolvable sentence must yield the midpoint, got %v", got)
	}
}

func TestMCSSSymmetric(t *testing.T) {
	s := mcss{}
	a := withVector(input("x"), []float32{1, 2, 0})
	b := withVector(input("y"), []float32{0, 1, 1})
	if got, inv := s.Score(a, b), s.Score(b, a); !almostEqual(got, inv) {
		t.Errorf("cosine must be symmetric: %v vs %v", got, inv)
	}
}

func TestMeanVectorizer(t *testing.T) {
	space := domain.NewVectorSpace(2)
	mustAdd(t, space, "cat", []float32{1, 0})
	mustAdd(t, space, "dog", []float32{0, 1})
	v := NewMeanVectorizer(space)

	vec, err := v.SentenceVector(context.Background(), domain.Sentence{Tokens: []string{"Cat", "DOG", "unknown"}})
	if err != nil {
		t.Fatalf("SentenceVector: %v", err)
	}
	if len(vec) != 2 || !almostEqual(float64(vec[0]), 0.5) || !almostEqual(float64(vec[1]), 0.5) {
		t.Errorf("mean vector = %v, want [0.5 0.5] (case-folded lookups, OOV skipped)", vec)
	}

	vec, err = v.SentenceVector(context.Background(), domain.Sentence{Tokens: []string{"nothing", "matches"}})
	if err != nil {
		t.Fatalf("SentenceVector: %v", err)
	}
	if vec != nil {
		t.Errorf("all-OOV sentence should yield nil vector, got %v", vec)
	}
}

func mustAdd(t *testing.T, space *domain.VectorSpace, tok string, vec []float32) {
	t.Helper()
	if err := space.Add(tok, vec); err != nil {
		t.Fatalf("Add(%q): %v", tok, err)
	}
}

// --- ttab ---

func testTable() *domain.TranslationTable {
	fwd := map[string]map[string]float64{
		"chat":  {"cat": 0.8, "kitty": 0.2},
		"noir":  {"black": 0.9},
		"grand": {"big": 0.6, "tall": 0.3},
	}
	inv := map[string]map[string]float64{
		"cat":   {"chat": 0.7},
		"black": {"noir": 0.9},
		"big":   {"grand": 0.5},
	}
	return domain.NewTranslationTable(fwd, inv)
}

func TestTTabTranslatedPairScoresHigh(t *testing.T) {
	s := ttab{table: testTable()}
	src := input("chat", "noir")
	tgt := input("black", "cat")
	other := input("big", "words")
	good, bad := s.Score(src, tgt), s.Score(src, other)
	if !inUnitRange(good) || !inUnitRange(bad) {
		t.Fatalf("scores out of range: %v, %v", good, bad)
	}
	if good <= bad {
		t.Errorf("true translation (%v) should outscore mismatch (%v)", good, bad)
	}
}

func TestTTabOOVCopiedOver(t *testing.T) {
	s := ttab{table: domain.NewTranslationTable(nil, nil)}
	src := input("NASA", "42")
	tgt := input("NASA", "42")
	if got := s.Score(src, tgt); !almostEqual(got, 1.0) {
		t.Errorf("verbatim-copied OOV tokens are full evidence, got %v", got)
	}
	if got := s.Score(src, input("other")); !almostEqual(got, 0.0) {
		t.Errorf("OOV tokens with no copy are zero evidence, got %v", got)
	}
}

func TestTTabSymmetricByConstruction(t *testing.T) {
	// The two directional likelihoods differ, but the geometric mean
	// must not depend on argument order given the mirrored tables.
	s := ttab{table: testTable()}
	mirrored := ttab{table: domain.NewTranslationTable(
		map[string]map[string]float64{
			"cat":   {"chat": 0.7},
			"black": {"noir": 0.9},
			"big":   {"grand": 0.5},
		},
		map[string]map[string]float64{
			"chat":  {"cat": 0.8, "kitty": 0.2},
			"noir":  {"black": 0.9},
			"grand": {"big": 0.6, "tall": 0.3},
		},
	)}
	src := input("chat", "noir")
	tgt := input("black", "cat")
	if got, inv := s.Score(src, tgt), mirrored.Score(tgt, src); !almostEqual(got, inv) {
		t.Errorf("combined directional score must be symmetric: %v vs %v", got, inv)
	}
}
