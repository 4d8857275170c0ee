package pipeline

import (
	"strings"
	"testing"
	"unicode"

	"github.com/patrickprogramme/transcribrr/pkg/model"
)

// helper : fabrique des fragments à partir de textes bruts
func frags(texts ...string) []model.Fragment {
	out := make([]model.Fragment, 0, len(texts))
	for i, txt := range texts {
		out = append(out, model.Fragment{
			Text:       txt,
			StartMs:    int64(i) * 1000,
			DurationMs: 1000,
		})
	}
	return out
}

func TestAssembleFlatJoinsThenNormalizes(t *testing.T) {
	// la contraction coupée entre fragments doit être réparée :
	// c'est tout l'intérêt du mode flat.
	got := AssembleFlat(frags("hes", "going", "home."))
	want := "he's going home."
	if got != want {
		t.Fatalf("AssembleFlat = %q; want %q", got, want)
	}
}

func TestAssembleEmptyInput(t *testing.T) {
	if got := AssembleFlat(nil); got != "" {
		t.Errorf("AssembleFlat(nil) = %q; want empty", got)
	}
	if got := AssembleChunked(nil); got != "" {
		t.Errorf("AssembleChunked(nil) = %q; want empty", got)
	}
}

func TestAssembleChunkedParagraphCount(t *testing.T) {
	tests := []struct {
		count int
		want  int // ceil(count/4)
	}{
		{1, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
		{13, 4},
	}

	for _, tc := range tests {
		texts := make([]string, tc.count)
		for i := range texts {
			texts[i] = "word"
		}
		out := AssembleChunked(frags(texts...))
		got := len(strings.Split(out, "\n\n"))
		if got != tc.want {
			t.Errorf("%d fragments: %d paragraphes; want %d", tc.count, got, tc.want)
		}
	}
}

func TestAssembleChunkedPreservesOrder(t *testing.T) {
	out := AssembleChunked(frags("one", "two", "three", "four", "five"))
	want := "one two three four\n\nfive"
	if out != want {
		t.Fatalf("AssembleChunked = %q; want %q", out, want)
	}
}

// wordSet : mots en minuscules, ponctuation et espaces ignorés
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		w = strings.ToLower(strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Les deux modes diffèrent par la structure, pas par le contenu.
func TestFlatAndChunkedSameWordSet(t *testing.T) {
	in := frags("so today", "were going to", "talk about", "the dont panic", "approach.", "its simple")

	flat := wordSet(AssembleFlat(in))
	chunked := wordSet(AssembleChunked(in))

	for w := range flat {
		if _, ok := chunked[w]; !ok {
			t.Errorf("mot %q présent en flat, absent en chunked", w)
		}
	}
	for w := range chunked {
		if _, ok := flat[w]; !ok {
			t.Errorf("mot %q présent en chunked, absent en flat", w)
		}
	}
}

func TestAssembleDispatch(t *testing.T) {
	in := frags("a", "b", "c", "d", "e")
	if got, want := Assemble(model.AssembleChunked, in), AssembleChunked(in); got != want {
		t.Errorf("Assemble(chunked) = %q; want %q", got, want)
	}
	if got, want := Assemble(model.AssembleFlat, in), AssembleFlat(in); got != want {
		t.Errorf("Assemble(flat) = %q; want %q", got, want)
	}
}
