package identity

import (
	"testing"

	"github.com/go-ember/ember/pkg/geometry"
)

func TestHashDeterministic(t *testing.T) {
	a := Hash("Save")
	b := Hash("Save")
	if a != b {
		t.Errorf("Hash not deterministic: %#x vs %#x", a, b)
	}
	if a == None {
		t.Error("Hash returned the None sentinel")
	}
}

func TestHashDistinctSeeds(t *testing.T) {
	if Hash("Save") == Hash("Cancel") {
		t.Error("distinct labels hashed to the same identity")
	}
}

func TestHashPosQuantization(t *testing.T) {
	// Sub-pixel jitter rounds to the same whole pixel.
	if HashPos(10.4, 20.4) != HashPos(10.0, 20.0) {
		t.Error("sub-pixel jitter changed the identity")
	}
	if HashPos(10.6, 20.0) == HashPos(10.0, 20.0) {
		t.Error("a full pixel of movement did not change the identity")
	}
}

func TestForWidgetDisambiguates(t *testing.T) {
	r1 := geometry.RectFromLTWH(0, 0, 100, 40)
	r2 := geometry.RectFromLTWH(0, 100, 100, 40)

	if ForWidget("OK", r1) == ForWidget("OK", r2) {
		t.Error("same label at different positions collided")
	}
	if ForWidget("OK", r1) == ForWidget("Cancel", r1) {
		t.Error("different labels at the same position collided")
	}
	if ForWidget("OK", r1) != ForWidget("OK", r1) {
		t.Error("identical declarations produced different identities")
	}
}

func TestForKindDisambiguates(t *testing.T) {
	if ForKind("slider", 10, 10) == ForKind("textfield", 10, 10) {
		t.Error("different kinds at the same position collided")
	}
}

func TestMasked(t *testing.T) {
	raw := ID(0x80001234)
	m := Masked(raw)
	if uint32(m)&(1<<31) != 0 {
		t.Errorf("Masked(%#x) = %#x, bit 31 still set", raw, m)
	}
	if m != ID(0x00001234) {
		t.Errorf("Masked(%#x) = %#x, want %#x", raw, m, 0x1234)
	}
	// Masking an identity that is exactly the mode bit must not yield None.
	if Masked(ID(1<<31)) == None {
		t.Error("Masked produced the None sentinel")
	}
}

func TestMaskedIdempotent(t *testing.T) {
	id := ForKind("slider", 42, 7)
	if Masked(Masked(id)) != Masked(id) {
		t.Error("Masked is not idempotent")
	}
}

func TestPackRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		owner     ID
		animating bool
	}{
		{"drag", Masked(ForKind("slider", 5, 5)), false},
		{"animate", Masked(ForKind("slider", 5, 5)), true},
		{"high-bit owner", ID(0x80000001), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Pack(tt.owner, tt.animating)
			if got, want := w.Owner(), Masked(tt.owner); got != want {
				t.Errorf("Owner() = %#x, want %#x", got, want)
			}
			if w.Animating() != tt.animating {
				t.Errorf("Animating() = %v, want %v", w.Animating(), tt.animating)
			}
		})
	}
}

func TestZeroWordIsIdle(t *testing.T) {
	var w Word
	if w.Owner() != None {
		t.Errorf("zero word Owner() = %#x, want None", w.Owner())
	}
	if w.Animating() {
		t.Error("zero word reports animating")
	}
}
