package rules

import "testing"

func TestNextMatchesConwayRules(t *testing.T) {
	for state := uint8(0); state <= 1; state++ {
		for sum := uint8(0); sum <= 8; sum++ {
			want := uint8(0)
			if applyConwayRules(int(sum), state == 1) {
				want = 1
			}
			if got := Next(state, sum); got != want {
				t.Fatalf("Next(%d, %d) = %d, want %d", state, sum, got, want)
			}
		}
	}
}

func TestNextBirthAndSurvival(t *testing.T) {
	tests := []struct {
		name  string
		state uint8
		sum   uint8
		want  uint8
	}{
		{"dead with three is born", 0, 3, 1},
		{"live with three survives", 1, 3, 1},
		{"live with two survives", 1, 2, 1},
		{"dead with two stays dead", 0, 2, 0},
		{"live with one dies", 1, 1, 0},
		{"live with four dies", 1, 4, 0},
		{"live with eight dies", 1, 8, 0},
		{"dead with six stays dead", 0, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.state, tt.sum); got != tt.want {
				t.Fatalf("Next(%d, %d) = %d, want %d", tt.state, tt.sum, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	if got := Key(0, 8); got != 8 {
		t.Fatalf("Key(0, 8) = %d, want 8", got)
	}
	if got := Key(1, 0); got != 16 {
		t.Fatalf("Key(1, 0) = %d, want 16", got)
	}
	if got := Key(1, 8); int(got) != len(transitions)-1 {
		t.Fatalf("Key(1, 8) = %d, want last table index %d", got, len(transitions)-1)
	}
}

func TestUnreachableSlotsAreZero(t *testing.T) {
	for i := 9; i < 1<<StateShift; i++ {
		if transitions[i] != 0 {
			t.Fatalf("slot %d = %d, want 0", i, transitions[i])
		}
	}
}
