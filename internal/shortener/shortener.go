package shortener

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var base = big.NewInt(int64(len(alphabet)))

// Shortener derives codes from freshly minted ObjectIDs. An ObjectID carries
// a timestamp, per-process randomness and a counter, so the full encoding is
// unique without coordination.
type Shortener struct {
	length int
	seed   func() [12]byte
}

// New returns a Shortener. A positive length keeps only the trailing length
// characters of each code; callers must then handle collisions.
func New(length int) *Shortener {
	return &Shortener{
		length: max(0, length),
		seed:   func() [12]byte { return primitive.NewObjectID() },
	}
}

func (s *Shortener) Generate() string {
	seed := s.seed()
	code := Encode(new(big.Int).SetBytes(seed[:]))
	if s.length > 0 && len(code) > s.length {
		// The leading characters come from the timestamp and repeat for every
		// code minted in the same second.
		code = code[len(code)-s.length:]
	}
	return code
}

// Encode writes n in base62, most significant digit first.
func Encode(n *big.Int) string {
	if n.Sign() == 0 {
		return alphabet[:1]
	}

	num := new(big.Int).Set(n)
	rem := new(big.Int)
	var out []byte
	for num.Sign() > 0 {
		num.QuoRem(num, base, rem)
		out = append(out, alphabet[rem.Int64()])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
