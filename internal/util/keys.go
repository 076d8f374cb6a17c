package util

import (
	"bufio"
	"io"
	"log"
	"strconv"
)

// SafeReadLine blocks until a whole line can be read or
// r returns an error.
// ***warning: expects lines to be \n separated***
func SafeReadLine(r *bufio.Reader) (line []byte, err error) {
	line, err = r.ReadBytes('\n')
	if n := len(line); n > 0 && line[n-1] == '\n' {
		// strip the \n
		line = line[:n-1]
	}
	return
}

// ReadKeys exhausts up to n keys out of r.
// The format of a key is a decimal uint64 followed by \n, blank lines
// are skipped. A line that does not parse stops the stream.
func ReadKeys(n int64, r io.Reader) <-chan uint64 {
	// make the output channel
	var keys = make(chan uint64)
	// wrap r in a bufio reader
	src := bufio.NewReader(r)
	go func() {
		defer close(keys)
		for i := int64(0); i < n; {
			line, err := SafeReadLine(src)
			if len(line) != 0 {
				key, perr := strconv.ParseUint(string(line), 10, 64)
				if perr != nil {
					log.Printf("error parsing key %q: %v", line, perr)
					return
				}
				keys <- key
				i++
			}
			if err != nil {
				if err != io.EOF {
					log.Printf("error reading keys: %v", err)
				}
				return
			}
		}
	}()

	return keys
}

// Count counts the number of keys in a file, one key per line.
func Count(r io.Reader) (int64, error) {
	var n int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(scanner.Bytes()) != 0 {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}

	return n, nil
}
