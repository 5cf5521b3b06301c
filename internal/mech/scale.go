package mech

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadScaleFactors reads a scale-factor vector from a text file: one
// positive real per line, blank lines and '#' comments ignored. Length
// consistency with a mechanism is checked by the writer, not here.
func ReadScaleFactors(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read scale factors: %w", err)
	}
	defer f.Close()

	var factors []float64
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("scale factors %s:%d: %w", path, lineNo, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("scale factors %s:%d: factor must be positive, got %g", path, lineNo, v)
		}
		factors = append(factors, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scale factors: %w", err)
	}
	return factors, nil
}
