package score

import (
	"errors"
	"testing"

	"github.com/bitext-tools/realign/internal/domain"
)

// fixedScorer returns a constant, for combination arithmetic tests.
type fixedScorer struct {
	name  string
	value float64
}

func (s fixedScorer) Name() string            { return s.name }
func (s fixedScorer) Score(_, _ Input) float64 { return s.value }

func TestBuilderEqualWeightMean(t *testing.T) {
	b, err := NewBuilder([]Scorer{
		fixedScorer{name: "a", value: 1.0},
		fixedScorer{name: "b", value: 0.0},
	}, nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	combined, perScorer := b.Build([]Input{input("x")}, []Input{input("y")})
	if got := combined.At(0, 0); got != 0.5 {
		t.Errorf("combined = %v, want arithmetic mean 0.5", got)
	}
	if len(perScorer) != 2 {
		t.Fatalf("got %d per-scorer matrices, want 2", len(perScorer))
	}
	if perScorer[0].At(0, 0) != 1.0 || perScorer[1].At(0, 0) != 0.0 {
		t.Error("per-scorer matrices must keep raw scores")
	}
}

func TestBuilderWeightedMean(t *testing.T) {
	b, err := NewBuilder([]Scorer{
		fixedScorer{name: "a", value: 1.0},
		fixedScorer{name: "b", value: 0.0},
	}, map[string]float64{"a": 3})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	combined, _ := b.Build([]Input{input("x")}, []Input{input("y")})
	if got := combined.At(0, 0); got != 0.75 {
		t.Errorf("combined = %v, want (3*1+1*0)/4 = 0.75", got)
	}
}

func TestBuilderNeutralMidpointNotVeto(t *testing.T) {
	// An inapplicable copy-pattern signal must contribute the midpoint,
	// never drag a strong signal to zero.
	b, err := NewBuilder([]Scorer{copyPattern{}, fixedScorer{name: "strong", value: 1.0}}, nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	combined, _ := b.Build([]Input{input("plain", "words")}, []Input{input("mots", "simples")})
	if got := combined.At(0, 0); got != 0.75 {
		t.Errorf("combined = %v, want (0.5+1.0)/2 = 0.75", got)
	}
}

func TestBuilderScorersKeepsConfiguredOrder(t *testing.T) {
	b, err := NewBuilder([]Scorer{
		fixedScorer{name: "b", value: 1},
		fixedScorer{name: "a", value: 1},
	}, nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	got := b.Scorers()
	if len(got) != 2 || got[0].Name() != "b" || got[1].Name() != "a" {
		t.Errorf("Scorers() = %v, want configured order b, a", got)
	}
}

func TestBuilderRejectsBadWeights(t *testing.T) {
	scorers := []Scorer{fixedScorer{name: "a", value: 1}}
	if _, err := NewBuilder(scorers, map[string]float64{"a": 0}); !errors.Is(err, domain.ErrInvalidWeight) {
		t.Errorf("zero weight: err = %v, want ErrInvalidWeight", err)
	}
	if _, err := NewBuilder(scorers, map[string]float64{"ghost": 1}); !errors.Is(err, domain.ErrInvalidWeight) {
		t.Errorf("weight for inactive scorer: err = %v, want ErrInvalidWeight", err)
	}
	if _, err := NewBuilder(nil, nil); err == nil {
		t.Error("builder without scorers must fail")
	}
}

func TestBuilderMatrixShapeAndDeterminism(t *testing.T) {
	scorers, err := Build([]string{NameCharLen, NameTokLen, NameAscii}, Options{ExpectedLengthRatio: 1}, Resources{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := NewBuilder(scorers, nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	src := []Input{input("one", "small"), input("and", "another", "one"), input("third")}
	tgt := []Input{input("un", "petit"), input("et", "un", "autre")}

	first, _ := b.Build(src, tgt)
	if first.Rows() != 3 || first.Cols() != 2 {
		t.Fatalf("matrix %dx%d, want 3x2", first.Rows(), first.Cols())
	}
	second, _ := b.Build(src, tgt)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			v := first.At(i, j)
			if v < 0 || v > 1 {
				t.Errorf("cell (%d,%d) = %v out of [0,1]", i, j, v)
			}
			if v != second.At(i, j) {
				t.Errorf("cell (%d,%d) differs across runs", i, j)
			}
		}
	}
}
