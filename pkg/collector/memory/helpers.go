package memory

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// parseMeminfo reads "Key:   value kB" lines. Lines that do not parse are skipped.
func parseMeminfo(r io.Reader) (map[string]uint64, error) {
	counters := make(map[string]uint64)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, rest, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		counters[strings.TrimSpace(key)] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return counters, nil
}
