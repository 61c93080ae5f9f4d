// Package identity derives frame-stable widget identities without persistent
// objects.
//
// An identity is recomputed on every declaration from the same semantic
// inputs (a widget-kind tag plus either the label text or the layout
// position), so equality across frames means "same logical widget". Zero is
// reserved as the None sentinel and is never produced by the hashers.
//
// Bit 31 of the identity space is reserved: the transition engine packs a
// one-bit mode discriminator into the same word as the owner identity (see
// Pack). Identities that participate in that scheme must first pass through
// Masked so a hash with bit 31 set (about half of them) cannot be mistaken
// for an animating entry. This halves the effective identity space; the
// narrowing is deliberate and kept for compatibility with the packed-word
// layout.
package identity

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/go-ember/ember/pkg/geometry"
)

// ID is an opaque widget identity. Compare for equality only; never
// dereference it as ownership of anything.
type ID uint32

// None is the reserved sentinel meaning "no identity".
const None ID = 0

const (
	// modeBit is reserved for the transition-mode discriminator.
	modeBit uint32 = 1 << 31
	// idMask selects the identity bits below the discriminator.
	idMask uint32 = modeBit - 1
	// zeroRemap replaces a raw hash of zero so None stays unambiguous.
	zeroRemap ID = 1
)

// Hash returns the identity hash of a seed string (typically a widget label
// or a short widget-kind tag). Deterministic, non-cryptographic FNV-1a.
// Never returns None.
func Hash(seed string) ID {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return nonZero(ID(h.Sum32()))
}

// HashPos returns an identity hash derived from a layout position, quantized
// to whole pixels so sub-pixel jitter between frames cannot change the
// identity. Never returns None.
func HashPos(x, y float64) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(int32(math.Round(x))))
	binary.LittleEndian.PutUint32(buf[4:], uint32(int32(math.Round(y))))
	h := fnv.New32a()
	h.Write(buf[:])
	return nonZero(ID(h.Sum32()))
}

// ForWidget combines a label with the widget's rectangle position, so two
// widgets with the same label at different positions (or different labels at
// the same position) still get distinct identities. Never returns None.
func ForWidget(label string, r geometry.Rect) ID {
	return nonZero(Hash(label) ^ HashPos(r.Left, r.Top))
}

// ForKind combines a widget-kind tag with a layout position, for widgets
// that carry no label of their own (sliders, text fields). Never returns
// None.
func ForKind(kind string, x, y float64) ID {
	return nonZero(Hash(kind) ^ HashPos(x, y))
}

// Masked strips the identity to the bits below the mode discriminator.
// All identities stored in or compared against a packed Word must be masked
// first; comparing a raw identity against a masked one fails for roughly
// half of all hashes. Never returns None.
func Masked(id ID) ID {
	return nonZero(ID(uint32(id) & idMask))
}

func nonZero(id ID) ID {
	if id == None {
		return zeroRemap
	}
	return id
}

// Word packs a masked owner identity together with a one-bit transition-mode
// discriminator. The zero Word means "idle, no owner": Masked never returns
// zero, so an idle word cannot collide with a real owner.
type Word uint32

// Pack builds a Word from a masked owner identity and the animating flag.
// The owner is masked again here so the discipline holds even if a caller
// forgets; Pack and the Word accessors are the only places that touch the
// discriminator bit.
func Pack(owner ID, animating bool) Word {
	w := uint32(Masked(owner))
	if animating {
		w |= modeBit
	}
	return Word(w)
}

// Owner returns the masked owner identity, or None for the idle word.
func (w Word) Owner() ID {
	if w == 0 {
		return None
	}
	return ID(uint32(w) & idMask)
}

// Animating reports whether the discriminator bit marks an
// animate-to-target transition rather than a live drag.
func (w Word) Animating() bool {
	return uint32(w)&modeBit != 0
}
