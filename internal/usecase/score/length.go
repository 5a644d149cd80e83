package score

import "math"

// charLen scores surface-length plausibility: how close the observed
// character-length ratio is to the expected per-language-pair ratio.
type charLen struct {
	expected float64
}

func (charLen) Name() string { return NameCharLen }

func (s charLen) Score(src, tgt Input) float64 {
	r := float64(1+src.Features.CharLen) / float64(1+tgt.Features.CharLen)
	return lengthCloseness(r, s.expected)
}

// tokLen applies the same closeness decay to token counts.
type tokLen struct {
	expected float64
}

func (tokLen) Name() string { return NameTokLen }

func (s tokLen) Score(src, tgt Input) float64 {
	r := float64(1+src.Features.TokenCount) / float64(1+tgt.Features.TokenCount)
	return lengthCloseness(r, s.expected)
}

// lengthCloseness decays from 1 as the observed ratio drifts from the
// expected one. The log-ratio form treats a 2:1 drift the same as 1:2.
func lengthCloseness(observed, expected float64) float64 {
	if expected <= 0 {
		expected = 1
	}
	return math.Exp(-math.Abs(math.Log(observed / expected)))
}
