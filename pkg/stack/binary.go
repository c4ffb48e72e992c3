package stack

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// isBinaryFile checks whether a file is likely binary by sniffing its first
// bytes for null bytes or a high ratio of non-printable characters. Binary
// files get a placeholder in the stack instead of their raw contents.
func isBinaryFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buffer = buffer[:n]

	if len(buffer) == 0 {
		return false, nil // Empty files are text
	}
	if bytes.Contains(buffer, []byte{0}) {
		return true, nil
	}

	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(buffer)) > 0.3, nil
}

func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
