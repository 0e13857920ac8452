package art

import (
	"fmt"
	"math/big"
)

// Record is the input contract from the issuance layer: one art item,
// fully resolved. The rendering core never stores a Record and never
// mutates one; every render call is a pure function over it.
//
// Entropy is the sole source of per-item visual variation. It is carried
// as *big.Int because the expected range is 256 bits, but any unsigned
// value is accepted - unusual widths change the picture, never the
// validity.
type Record struct {
	Identity      Identity
	Entropy       *big.Int
	Category      Category
	SequenceIndex uint64
}

// NewRecord builds a Record for the given identity and entropy, deriving
// the category via SelectCategory. This is the constructor the issuance
// layer is expected to call once per item; the copied entropy keeps the
// record immutable even if the caller reuses its big.Int.
func NewRecord(id Identity, ent *big.Int, sequenceIndex uint64) (Record, error) {
	if ent == nil {
		return Record{}, fmt.Errorf("record: nil entropy")
	}
	if ent.Sign() < 0 {
		return Record{}, fmt.Errorf("record: negative entropy %s", ent)
	}
	return Record{
		Identity:      id,
		Entropy:       new(big.Int).Set(ent),
		Category:      SelectCategory(id),
		SequenceIndex: sequenceIndex,
	}, nil
}

// Validate checks the contract preconditions on a caller-built Record.
// A nil or negative entropy is a recoverable input error; an out-of-range
// category is not (the render path panics on it), but it is reported here
// so callers that assemble records by hand can catch it early.
func (r Record) Validate() error {
	if r.Entropy == nil {
		return fmt.Errorf("record: nil entropy")
	}
	if r.Entropy.Sign() < 0 {
		return fmt.Errorf("record: negative entropy %s", r.Entropy)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("record: invalid category %s", r.Category)
	}
	return nil
}
