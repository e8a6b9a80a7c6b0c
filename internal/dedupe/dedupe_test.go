package dedupe

import (
	"reflect"
	"testing"
)

func TestNormalizedLevenshtein_Identical(t *testing.T) {
	if sim := NormalizedLevenshtein("hello", "hello"); sim != 1 {
		t.Errorf("Expected similarity 1, got %v", sim)
	}
}

func TestNormalizedLevenshtein_Disjoint(t *testing.T) {
	if sim := NormalizedLevenshtein("abc", "xyz"); sim != 0 {
		t.Errorf("Expected similarity 0, got %v", sim)
	}
}

func TestNormalizedLevenshtein_BothEmpty(t *testing.T) {
	if sim := NormalizedLevenshtein("", ""); sim != 1 {
		t.Errorf("Expected similarity 1 for two empty strings, got %v", sim)
	}
}

func TestNormalizedLevenshtein_CountsRunesNotBytes(t *testing.T) {
	// One substitution across five runes, though "héllo" is six bytes
	if sim := NormalizedLevenshtein("héllo", "hello"); sim != 0.8 {
		t.Errorf("Expected similarity 0.8, got %v", sim)
	}
}

func TestDeduper_Reduce_CollapsesNearDuplicates(t *testing.T) {
	d := NewDeduper(0.8, nil)

	final, dropped := d.Reduce([]string{"connect", "connecta", "zebra"}, nil)

	if !reflect.DeepEqual(final, []string{"connect", "zebra"}) {
		t.Errorf("Unexpected survivors: %v", final)
	}
	if !reflect.DeepEqual(dropped, []string{"connecta"}) {
		t.Errorf("Unexpected drops: %v", dropped)
	}
}

func TestDeduper_Reduce_SurvivorAbsorbsRun(t *testing.T) {
	d := NewDeduper(0.8, nil)

	final, dropped := d.Reduce([]string{"buffer_pool_1", "buffer_pool_2", "buffer_pool_3"}, nil)

	if !reflect.DeepEqual(final, []string{"buffer_pool_1"}) {
		t.Errorf("Expected the first of the run to survive, got %v", final)
	}
	if len(dropped) != 2 {
		t.Errorf("Expected 2 drops, got %v", dropped)
	}
}

func TestDeduper_Reduce_ExactThresholdDrops(t *testing.T) {
	d := NewDeduper(0.8, nil)

	// Distance 2 over 10 runes is a similarity of exactly 0.8
	final, dropped := d.Reduce([]string{"aaaaaaaaaa", "aaaaaaaabb"}, nil)

	if !reflect.DeepEqual(final, []string{"aaaaaaaaaa"}) {
		t.Errorf("Expected similarity at the threshold to drop, got %v", final)
	}
	if !reflect.DeepEqual(dropped, []string{"aaaaaaaabb"}) {
		t.Errorf("Unexpected drops: %v", dropped)
	}
}

func TestDeduper_Reduce_NeighborsFoundCaseInsensitively(t *testing.T) {
	d := NewDeduper(0.8, nil)

	final, dropped := d.Reduce([]string{"Zebra", "Apple pie", "apple pies"}, nil)

	if !reflect.DeepEqual(final, []string{"Apple pie", "Zebra"}) {
		t.Errorf("Unexpected survivors: %v", final)
	}
	if !reflect.DeepEqual(dropped, []string{"apple pies"}) {
		t.Errorf("Unexpected drops: %v", dropped)
	}
}

func TestDeduper_Reduce_ResultSortedCaseInsensitively(t *testing.T) {
	d := NewDeduper(0.8, nil)

	final, _ := d.Reduce([]string{"zebra crossing", "Banana split", "apple pie"}, nil)

	want := []string{"apple pie", "Banana split", "zebra crossing"}
	if !reflect.DeepEqual(final, want) {
		t.Errorf("Expected %v, got %v", want, final)
	}
}

func TestDeduper_Reduce_SingleString(t *testing.T) {
	d := NewDeduper(0.8, nil)

	final, dropped := d.Reduce([]string{"only one"}, nil)

	if !reflect.DeepEqual(final, []string{"only one"}) {
		t.Errorf("Unexpected survivors: %v", final)
	}
	if len(dropped) != 0 {
		t.Errorf("Expected no drops, got %v", dropped)
	}
}

func TestDeduper_Reduce_EmptyInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty input, got none")
		}
	}()

	NewDeduper(0.8, nil).Reduce(nil, nil)
}

func TestDeduper_Reduce_TickPerString(t *testing.T) {
	d := NewDeduper(0.8, nil)

	ticks := 0
	in := []string{"one", "two", "three", "four"}
	d.Reduce(in, func() { ticks++ })

	if ticks != len(in) {
		t.Errorf("Expected %d ticks, got %d", len(in), ticks)
	}
}

func TestDeduper_Reduce_CustomSimilarity(t *testing.T) {
	everythingMatches := func(a, b string) float64 { return 1 }
	d := NewDeduper(0.8, everythingMatches)

	final, dropped := d.Reduce([]string{"apple", "zebra", "mango"}, nil)

	if len(final) != 1 {
		t.Errorf("Expected a single survivor, got %v", final)
	}
	if len(dropped) != 2 {
		t.Errorf("Expected 2 drops, got %v", dropped)
	}
}
