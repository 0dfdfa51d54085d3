package shortener_test

import (
	"math/big"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkly/internal/shortener"
)

func TestEncode_Zero(t *testing.T) {
	assert.Equal(t, "0", shortener.Encode(big.NewInt(0)))
}

func TestEncode_KnownValues(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{1, "1"},
		{61, "z"},
		{62, "10"},
		{3843, "zz"},
		{3844, "100"},
		{12345, "3D7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shortener.Encode(big.NewInt(tt.in)), "encode(%d)", tt.in)
	}
}

func TestEncode_DoesNotMutateInput(t *testing.T) {
	n := big.NewInt(987654321)
	shortener.Encode(n)
	assert.Equal(t, int64(987654321), n.Int64())
}

func TestGenerate_Deterministic(t *testing.T) {
	seed := [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x30, 0x39}
	s := shortener.NewWithSeed(0, func() [12]byte { return seed })

	assert.Equal(t, "3D7", s.Generate())
}

func TestGenerate_FullLengthURLSafe(t *testing.T) {
	s := shortener.New(0)
	urlSafe := regexp.MustCompile(`^[0-9A-Za-z]+$`)

	for range 100 {
		code := s.Generate()
		assert.Regexp(t, urlSafe, code)
		// 96 bits need at most 17 base62 digits.
		assert.LessOrEqual(t, len(code), 17)
	}
}

func TestGenerate_UniqueUnderConcurrency(t *testing.T) {
	s := shortener.New(0)

	const workers, perWorker = 8, 500
	codes := make(chan string, workers*perWorker)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				codes <- s.Generate()
			}
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]struct{}, workers*perWorker)
	for c := range codes {
		_, dup := seen[c]
		require.False(t, dup, "duplicate code %q", c)
		seen[c] = struct{}{}
	}
}

func TestGenerate_TruncatesToTrailingCharacters(t *testing.T) {
	full := shortener.NewWithSeed(0, func() [12]byte {
		return [12]byte{0x65, 0x1f, 0x00, 0x00, 1, 2, 3, 4, 5, 0, 0, 7}
	}).Generate()

	short := shortener.NewWithSeed(5, func() [12]byte {
		return [12]byte{0x65, 0x1f, 0x00, 0x00, 1, 2, 3, 4, 5, 0, 0, 7}
	}).Generate()

	require.Len(t, short, 5)
	assert.Equal(t, full[len(full)-5:], short)
}

func TestGenerate_TruncatedCodesDifferWithinSameSecond(t *testing.T) {
	s := shortener.New(5)

	a := s.Generate()
	b := s.Generate()

	assert.Len(t, a, 5)
	assert.NotEqual(t, a, b)
}
