package util

import (
	"fmt"
	"path"
	"strings"
)

const BLACK = "\033[0;0m"
const RED = "\033[0;31m"
const YELLOW = "\033[0;33m"
const BLUE = "\033[94m"
const GREEN = "\033[92m"

// Location converts a rune offset into a 1-based line and column.
func Location(source string, offset int) (int, int) {
	line, col := 1, 1
	i := 0
	for _, ch := range source {
		if i == offset {
			break
		}
		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i++
	}
	return line, col
}

// FormattedAnnotation renders msg against the source line containing the rune
// at offset, highlighting that rune, with contextSize lines on either side.
// An offset at the end of the line is marked with a caret. An empty color
// disables highlighting.
func FormattedAnnotation(filename string, source string, prefix string, msg string, offset int, color string, contextSize int) string {
	line, col := Location(source, offset)
	highlight, restore := "", ""
	if color != "" {
		highlight = color + "\033[1m"
		restore = BLACK + "\033[0m"
	}
	loc := fmt.Sprintf("%d:%d", line, col)
	if filename != "" {
		loc = path.Base(filename) + ":" + loc
	}
	if source == "" || contextSize < 0 {
		return fmt.Sprintf("%s%s: %s", prefix, loc, msg)
	}
	lines := strings.Split(source, "\n")
	begin := max(0, line-1-contextSize)
	end := min(len(lines), line+contextSize)
	tmp := ""
	for i := begin; i < end; i++ {
		l := []rune(lines[i])
		if i != line-1 {
			tmp += fmt.Sprintf("%3d\t%s\n", i+1, string(l))
			continue
		}
		if col-1 < len(l) {
			left, mid, right := string(l[:col-1]), string(l[col-1]), string(l[col:])
			tmp += fmt.Sprintf("%3d\t%s%s%s%s%s\n", i+1, left, highlight, mid, restore, right)
		} else {
			tmp += fmt.Sprintf("%3d\t%s%s^%s\n", i+1, string(l), highlight, restore)
		}
	}
	return fmt.Sprintf("%s%s: %s%s%s\n%s", prefix, loc, highlight, msg, restore, tmp)
}
