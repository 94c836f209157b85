package cache

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/ronanh/intcomp"
	"golang.org/x/crypto/sha3"

	"github.com/consensys/groebner/poly"
)

// SystemKey returns the cache key of a generator set: a hex encoded
// SHA3-256 digest over the field name, the monomial order, the variable
// list and the canonical encodings of the generators. Generator order,
// duplicates and zero generators do not change the key, mirroring what the
// basis computation ignores.
func SystemKey[E any](r *poly.Ring[E], gens []poly.Polynomial[E], o poly.Order) string {
	encs := make([][]byte, 0, len(gens))
	for _, g := range gens {
		if g.IsZero() {
			continue
		}
		encs = append(encs, encodePoly(r, g))
	}
	sort.Slice(encs, func(i, j int) bool { return bytes.Compare(encs[i], encs[j]) < 0 })

	h := sha3.New256()
	writeString(h, r.Field().Name())
	h.Write([]byte{byte(o)})
	for _, v := range r.Vars() {
		writeString(h, v)
	}
	var prev []byte
	for _, enc := range encs {
		if bytes.Equal(enc, prev) {
			continue
		}
		h.Write(enc)
		prev = enc
	}
	return hex.EncodeToString(h.Sum(nil))
}

// encodePoly is a deterministic binary encoding of a canonical polynomial:
// term count, then per term the length prefixed coefficient bytes and the
// exponent row.
func encodePoly[E any](r *poly.Ring[E], p poly.Polynomial[E]) []byte {
	f := r.Field()
	var buf bytes.Buffer
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(p.NumTerms()))
	buf.Write(scratch[:])
	for i := 0; i < p.NumTerms(); i++ {
		t := p.Term(i)
		cb := f.Marshal(t.Coeff)
		binary.LittleEndian.PutUint64(scratch[:], uint64(len(cb)))
		buf.Write(scratch[:])
		buf.Write(cb)
		for v := 0; v < r.NbVars(); v++ {
			binary.LittleEndian.PutUint32(scratch[:4], expAt(t.Mono, v))
			buf.Write(scratch[:4])
		}
	}
	return buf.Bytes()
}

func writeString(w io.Writer, s string) {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(len(s)))
	w.Write(scratch[:])
	w.Write([]byte(s))
}

func expAt(m poly.Monomial, v int) uint32 {
	if v < len(m) {
		return m[v]
	}
	return 0
}

// basisBlob is the cbor envelope of an encoded basis. Term counts and the
// exponent matrix are integer packed before encoding; coefficients use the
// field's own marshalling.
type basisBlob struct {
	Field  string
	Order  uint8
	Vars   []string
	Counts []byte
	Exps   []byte
	Coeffs [][]byte
}

// MarshalBasis encodes a basis computed in r under o into a self describing
// blob suitable for a Store.
func MarshalBasis[E any](r *poly.Ring[E], basis []poly.Polynomial[E], o poly.Order) ([]byte, error) {
	f := r.Field()
	nb := r.NbVars()
	counts := make([]uint64, len(basis))
	exps := make([]uint32, 0, 16*nb)
	coeffs := make([][]byte, 0, 16)
	for i, p := range basis {
		counts[i] = uint64(p.NumTerms())
		for j := 0; j < p.NumTerms(); j++ {
			t := p.Term(j)
			coeffs = append(coeffs, f.Marshal(t.Coeff))
			for v := 0; v < nb; v++ {
				exps = append(exps, expAt(t.Mono, v))
			}
		}
	}

	countsBuf := new(bytes.Buffer)
	if err := writeUints64(countsBuf, counts); err != nil {
		return nil, err
	}
	expsBuf := new(bytes.Buffer)
	if err := writeUints32(expsBuf, exps); err != nil {
		return nil, err
	}

	blob := basisBlob{
		Field:  f.Name(),
		Order:  uint8(o),
		Vars:   slices.Clone(r.Vars()),
		Counts: countsBuf.Bytes(),
		Exps:   expsBuf.Bytes(),
		Coeffs: coeffs,
	}
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return enc.Marshal(blob)
}

// UnmarshalBasis decodes a blob produced by MarshalBasis. The blob must
// have been produced for the same field, variable list and monomial order;
// replaying a basis in a different ring would silently change its meaning.
func UnmarshalBasis[E any](r *poly.Ring[E], data []byte, o poly.Order) ([]poly.Polynomial[E], error) {
	dec, err := cbor.DecOptions{
		MaxArrayElements: 2147483647,
		MaxMapPairs:      2147483647,
	}.DecMode()
	if err != nil {
		return nil, err
	}
	var blob basisBlob
	if err := dec.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("cache: decoding basis blob: %w", err)
	}
	if blob.Field != r.Field().Name() {
		return nil, fmt.Errorf("cache: blob encodes a basis over %q, ring is over %q", blob.Field, r.Field().Name())
	}
	if poly.Order(blob.Order) != o {
		return nil, fmt.Errorf("cache: blob encodes a %s basis, want %s", poly.Order(blob.Order), o)
	}
	if !slices.Equal(blob.Vars, r.Vars()) {
		return nil, fmt.Errorf("cache: blob variables %v do not match ring variables %v", blob.Vars, r.Vars())
	}

	counts, err := readUints64(bytes.NewReader(blob.Counts))
	if err != nil {
		return nil, fmt.Errorf("cache: decoding term counts: %w", err)
	}
	exps, err := readUints32(bytes.NewReader(blob.Exps))
	if err != nil {
		return nil, fmt.Errorf("cache: decoding exponents: %w", err)
	}

	nb := r.NbVars()
	var total uint64
	for _, n := range counts {
		total += n
	}
	if uint64(len(blob.Coeffs)) != total || uint64(len(exps)) != total*uint64(nb) {
		return nil, fmt.Errorf("cache: malformed basis blob: %d terms, %d coefficients, %d exponents", total, len(blob.Coeffs), len(exps))
	}

	f := r.Field()
	basis := make([]poly.Polynomial[E], len(counts))
	ti := 0
	for i, n := range counts {
		terms := make([]poly.Term[E], 0, n)
		for j := uint64(0); j < n; j++ {
			c, err := f.Unmarshal(blob.Coeffs[ti])
			if err != nil {
				return nil, fmt.Errorf("cache: coefficient %d: %w", ti, err)
			}
			m := make(poly.Monomial, nb)
			copy(m, exps[ti*nb:(ti+1)*nb])
			terms = append(terms, poly.Term[E]{Coeff: c, Mono: m})
			ti++
		}
		basis[i] = r.FromTerms(terms)
	}
	return basis, nil
}

func writeUints32(w io.Writer, input []uint32) error {
	buf := intcomp.CompressUint32(input, nil)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(buf))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, buf)
}

func readUints32(r io.Reader) ([]uint32, error) {
	var length uint64
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, err
	}
	buf := make([]uint32, length)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, err
	}
	return intcomp.UncompressUint32(buf, nil), nil
}

func writeUints64(w io.Writer, input []uint64) error {
	buf := intcomp.CompressUint64(input, nil)
	if err := binary.Write(w, binary.LittleEndian, uint64(len(buf))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, buf)
}

func readUints64(r io.Reader) ([]uint64, error) {
	var length uint64
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, err
	}
	buf := make([]uint64, length)
	if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
		return nil, err
	}
	return intcomp.UncompressUint64(buf, nil), nil
}
