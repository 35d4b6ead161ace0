package modfile

import (
	"bytes"
	"strings"
)

func convertCstring(data []byte) string {
	i := bytes.IndexByte(data, 0)
	if i == -1 {
		return strings.TrimRight(string(data), " ")
	}
	return strings.TrimRight(string(data[:i]), " ")
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
