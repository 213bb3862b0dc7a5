// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Scanner buffer sizes. A single COSTS row holds one value per consumer, so
// lines may grow far past bufio's default token limit.
const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = math.MaxInt32
)

// Keywords of the text format.
const (
	keyCosts  = "COSTS"
	keySupply = "SUPPLY"
	keyDemand = "DEMAND"
)

// ParseText decodes the line-oriented text format described in the package doc.
func ParseText(r io.Reader) (*Instance, error) {
	var (
		in   = &Instance{}
		sc   = bufio.NewScanner(r)
		line int
	)
	sc.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.IndexByte(text, '#'); k >= 0 {
			text = text[:k]
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			continue
		}

		switch fields[0] {
		case keyCosts, keySupply, keyDemand:
		default:
			continue
		}
		values, err := parseInts(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
		}
		switch fields[0] {
		case keyCosts:
			in.Costs = append(in.Costs, values)
		case keySupply:
			in.Supply = append(in.Supply, values...)
		case keyDemand:
			in.Demand = append(in.Demand, values...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read text: %w", err)
	}

	return in, nil
}

func parseInts(tokens []string) ([]int64, error) {
	out := make([]int64, len(tokens))
	for k, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", tok)
		}
		out[k] = v
	}

	return out, nil
}

// WriteText encodes in in the text format accepted by ParseText.
func WriteText(w io.Writer, in *Instance) error {
	bw := bufio.NewWriter(w)
	for _, row := range in.Costs {
		writeLine(bw, keyCosts, row)
	}
	writeLine(bw, keySupply, in.Supply)
	writeLine(bw, keyDemand, in.Demand)

	return bw.Flush()
}

func writeLine(w *bufio.Writer, key string, values []int64) {
	w.WriteString(key)
	for _, v := range values {
		w.WriteByte(' ')
		w.WriteString(strconv.FormatInt(v, 10))
	}
	w.WriteByte('\n')
}
