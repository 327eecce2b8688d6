package pcgx

import (
	stdjson "encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// UseNumber keeps non-integer elements detectable instead of silently
// truncating them to ints.
var json = jsoniter.Config{UseNumber: true, SortMapKeys: true}.Froze()

/*
DecodeError reports a portable seed whose shape does not match
[[state, increment], [ext...]] or whose elements are not 32-bit integers.
*/
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return "pcgx: decode seed: " + e.Reason + ": " + e.Err.Error()
	}
	return "pcgx: decode seed: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

/*
Portable converts the seed to its portable form,
[[state, increment], [ext_0 .. ext_{N-1}]], for persistence across process
runs. FromPortable reconstructs a bit-identical seed from it.
*/
func (s ExtendedSeed) Portable() [][]int64 {
	ext := make([]int64, len(s.ext))
	for i, w := range s.ext {
		ext[i] = int64(w)
	}
	return [][]int64{
		{int64(s.base.state), int64(s.base.increment)},
		ext,
	}
}

/*
FromPortable rebuilds an ExtendedSeed from its portable form. Elements may
be written in signed or unsigned 32-bit form; anything outside that range,
or a shape other than a 2-element base followed by the extension, fails
with a *DecodeError.
*/
func FromPortable(data [][]int64) (ExtendedSeed, error) {
	if len(data) != 2 {
		return ExtendedSeed{}, &DecodeError{Reason: fmt.Sprintf("outer arity %d, want 2", len(data))}
	}
	if len(data[0]) != 2 {
		return ExtendedSeed{}, &DecodeError{Reason: fmt.Sprintf("base seed arity %d, want 2", len(data[0]))}
	}
	state, err := normalize(data[0][0])
	if err != nil {
		return ExtendedSeed{}, &DecodeError{Reason: "base state", Err: err}
	}
	increment, err := normalize(data[0][1])
	if err != nil {
		return ExtendedSeed{}, &DecodeError{Reason: "base increment", Err: err}
	}
	ext := make([]uint32, len(data[1]))
	for i, v := range data[1] {
		if ext[i], err = normalize(v); err != nil {
			return ExtendedSeed{}, &DecodeError{Reason: fmt.Sprintf("extension element %d", i), Err: err}
		}
	}
	return ExtendedSeed{base: Seed{state, increment}, ext: ext}, nil
}

// Decode-time normalization: accept any value a 32-bit word round-trips
// through in signed or unsigned form.
func normalize(v int64) (uint32, error) {
	if v < -2147483648 || v > 4294967295 {
		return 0, errors.Errorf("value %d outside 32-bit range", v)
	}
	return uint32(v), nil
}

/*
MarshalJSON encodes the portable form as a nested JSON array, e.g.
[[1266345812,1013904223],[1,2,3]].
*/
func (s ExtendedSeed) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Portable())
}

/*
UnmarshalJSON decodes the textual portable form. Malformed input fails with
a *DecodeError; the receiver is only written on success.
*/
func (s *ExtendedSeed) UnmarshalJSON(data []byte) error {
	var raw [][]stdjson.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Reason: "malformed portable seed", Err: errors.Wrap(err, "parse")}
	}
	port := make([][]int64, len(raw))
	for i, row := range raw {
		port[i] = make([]int64, len(row))
		for j, n := range row {
			v, err := n.Int64()
			if err != nil {
				return &DecodeError{
					Reason: fmt.Sprintf("non-integer element at [%d][%d]", i, j),
					Err:    errors.Wrap(err, "parse"),
				}
			}
			port[i][j] = v
		}
	}
	decoded, err := FromPortable(port)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

/*
EncodeSeed serializes a seed to its textual portable format.
*/
func EncodeSeed(s ExtendedSeed) ([]byte, error) {
	return s.MarshalJSON()
}

/*
DecodeSeed parses the textual portable format produced by EncodeSeed. On a
*DecodeError the caller decides the fallback, typically regenerating from a
fresh integer seed.
*/
func DecodeSeed(data []byte) (ExtendedSeed, error) {
	var s ExtendedSeed
	if err := s.UnmarshalJSON(data); err != nil {
		return ExtendedSeed{}, err
	}
	return s, nil
}
