package day02

import "testing"

var exampleLines = []string{
	"forward 5",
	"down 5",
	"forward 8",
	"up 3",
	"down 8",
	"forward 2",
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    Command
		wantErr bool
	}{
		{"forward 5", Command{Forward, 5}, false},
		{"down 12", Command{Down, 12}, false},
		{" up 3 ", Command{Up, 3}, false},
		{"sideways 3", Command{}, true},
		{"forward", Command{}, true},
		{"up x", Command{}, true},
	}
	for _, tc := range tests {
		got, err := ParseCommand(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseCommand(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCommand(%q) = %+v, expected %+v", tc.in, got, tc.want)
		}
	}
}

func TestSolve(t *testing.T) {
	ans, err := New().Solve(append(exampleLines, "garbage"))
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if ans.Part1 != "150" {
		t.Errorf("Part1 = %s, expected 150", ans.Part1)
	}
	if ans.Part2 != "900" {
		t.Errorf("Part2 = %s, expected 900", ans.Part2)
	}
}

func TestHeadingApply(t *testing.T) {
	h := Heading{}.Apply(Command{Down, 5}).Apply(Command{Forward, 8})
	if h != (Heading{Position: 8, Depth: 40, Aim: 5}) {
		t.Errorf("Apply() = %+v", h)
	}
}
