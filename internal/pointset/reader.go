package pointset

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ReadFile reads all points from the named file.
func ReadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return pts, nil
}

// Read parses points from r, one per line. Fields may be separated by
// commas, whitespace, or any mix of the two. Blank lines are skipped.
// Lines with fewer than four fields or unparsable coordinates are skipped
// with a warning rather than aborting the read; extra trailing fields are
// ignored.
func Read(r io.Reader) ([]Point, error) {
	sc := bufio.NewScanner(r)

	var pts []Point
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) < 4 {
			log.Printf("WARNING: line %d: expected label and 3 coordinates, got %d fields", lineNo, len(fields))
			continue
		}

		var coords [3]float64
		ok := true
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				log.Printf("WARNING: line %d: bad coordinate %q", lineNo, fields[i+1])
				ok = false
				break
			}
			coords[i] = v
		}
		if !ok {
			continue
		}

		pts = append(pts, Point{
			Label: fields[0],
			X:     coords[0],
			Y:     coords[1],
			Z:     coords[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}
