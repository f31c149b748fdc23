package nist

import (
	"bufio"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Vector is one known-answer entry. Len is the message length in bits;
// NIST writes a placeholder Msg for Len = 0, so Msg is empty whenever
// the entry has a "Len = 0" line. Entries without a Len line (the
// variable-output files) keep Len at 0 and Msg as written. MD holds the
// digest, or the expected output for SHAKE vectors, whose bit length is
// then in OutputLen.
type Vector struct {
	Len       int
	Msg       []byte
	MD        []byte
	OutputLen int
}

// MonteCarlo is a parsed Monte Carlo seed file: the seed and the 100
// checkpoint digests.
type MonteCarlo struct {
	Seed        []byte
	Checkpoints [][]byte
}

// ParseVectors reads every vector from an .rsp stream. Comment lines
// (#), bracketed section headers, blank lines and unknown key = value
// metadata are skipped. A vector is emitted when its MD or Output line
// is seen.
func ParseVectors(r io.Reader) ([]Vector, error) {
	var (
		out     []Vector
		cur     Vector
		lenSeen bool
	)
	sc := newScanner(r)
	for sc.Scan() {
		key, val, ok := splitLine(sc.Text())
		if !ok {
			continue
		}
		switch key {
		case "Len":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "bad Len %q", val)
			}
			cur.Len = n
			lenSeen = true
		case "Outputlen", "OutputLen":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "bad Outputlen %q", val)
			}
			cur.OutputLen = n
		case "Msg":
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, errors.Wrap(err, "bad Msg hex")
			}
			cur.Msg = b
		case "MD", "Output":
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, errors.Wrap(err, "bad MD hex")
			}
			cur.MD = b
			// NIST writes a placeholder Msg for the empty message;
			// variable-output files carry no Len lines at all.
			if lenSeen && cur.Len == 0 {
				cur.Msg = nil
			}
			out = append(out, cur)
			cur, lenSeen = Vector{}, false
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseMonteCarlo reads a Monte Carlo seed file: one Seed line followed
// by COUNT/MD (or COUNT/Output) checkpoint pairs.
func ParseMonteCarlo(r io.Reader) (*MonteCarlo, error) {
	mc := &MonteCarlo{}
	sc := newScanner(r)
	for sc.Scan() {
		key, val, ok := splitLine(sc.Text())
		if !ok {
			continue
		}
		switch key {
		case "Seed", "Msg":
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, errors.Wrap(err, "bad Seed hex")
			}
			mc.Seed = b
		case "MD", "Output":
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, errors.Wrap(err, "bad MD hex")
			}
			mc.Checkpoints = append(mc.Checkpoints, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if mc.Seed == nil {
		return nil, errors.New("no Seed line in Monte Carlo file")
	}
	return mc, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	// LongMsg vectors run to tens of kilobytes of hex on one line.
	sc.Buffer(make([]byte, 0, 1<<16), 1<<22)
	return sc
}

// splitLine parses "key = value", reporting false for comments, section
// headers, blanks and anything else that is not a key/value pair.
func splitLine(line string) (key, val string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
		return "", "", false
	}
	key, val, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(val), true
}
