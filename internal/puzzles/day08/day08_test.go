package day08

import "testing"

var example = []string{
	"be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe",
	"edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc",
	"fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg",
	"fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb",
	"aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea",
	"fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb",
	"dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe",
	"bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef",
	"egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb",
	"gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce",
}

func TestEntryValue(t *testing.T) {
	e, err := ParseEntry("acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf")
	if err != nil {
		t.Fatal(err)
	}
	v, err := e.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if v != 5353 {
		t.Errorf("Value() = %d, expected 5353", v)
	}
}

func TestSolve(t *testing.T) {
	ans, err := New().Solve(example)
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if ans.Part1 != "26" {
		t.Errorf("Part1 = %s, expected 26", ans.Part1)
	}
	if ans.Part2 != "61229" {
		t.Errorf("Part2 = %s, expected 61229", ans.Part2)
	}
}

func TestPattern(t *testing.T) {
	p, err := ParsePattern("gab")
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", p.Len())
	}
	q, _ := ParsePattern("ba")
	if !p.Contains(q) || q.Contains(p) {
		t.Error("Contains() mismatch")
	}
	if _, err := ParsePattern("abz"); err == nil {
		t.Error("expected error for segment outside a-g")
	}
}

func TestParseEntryErrors(t *testing.T) {
	for _, s := range []string{"ab cd", "ab | cd", ""} {
		if _, err := ParseEntry(s); err == nil {
			t.Errorf("ParseEntry(%q) expected error", s)
		}
	}
}
