package pwned

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// findSuffixCount scans a range response body for suffix and returns its
// count when present.
//
// The body carries one "SUFFIX:COUNT" entry per line. The scan tolerates LF
// and CRLF endings, skips blank lines, and ignores entries with no separator
// or a wrong-length suffix field instead of failing the whole body. Suffix
// comparison is case-insensitive and the first matching line wins.
//
// A matching line whose count field is not a non-negative decimal integer
// fails the scan: a corrupted count on the one line that answers the question
// must not be misread as absence.
func findSuffixCount(body, suffix string) (int, bool, error) {
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		candidate, countField, ok := strings.Cut(line, ":")
		if !ok || len(candidate) != len(suffix) {
			continue
		}
		if !strings.EqualFold(candidate, suffix) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(countField))
		if err != nil {
			return 0, false, fmt.Errorf("malformed count on matched entry: %v", err)
		}
		if count < 0 {
			return 0, false, fmt.Errorf("negative count %d on matched entry", count)
		}

		return count, true, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, false, fmt.Errorf("scan range response: %v", err)
	}

	return 0, false, nil
}
