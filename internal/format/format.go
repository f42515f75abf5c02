package format

import (
	"math"
	"strconv"
	"strings"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FileSize renders bytes in the largest unit keeping the magnitude below
// 1024, rounded to two decimals: 1536 -> "1.5 KB".
func FileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := 0
	for v := bytes; v >= 1024 && i < len(sizeUnits)-1; v /= 1024 {
		i++
	}

	value := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}

// WordCount counts whitespace separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
