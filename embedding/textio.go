package embedding

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single embedding line; 4MB covers wide embeddings
// with long tokens.
const maxLineBytes = 4 << 20

// ReadText parses embeddings in the word2vec text format: one word per line
// followed by its vector components, optionally preceded by a "count dim"
// header line. Dimensions are validated against the first vector (or the
// header when present).
func ReadText(r io.Reader) (*MemoryStore, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	store := NewMemoryStore(0)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		// Optional "count dim" header.
		if lineNo == 1 && len(fields) == 2 {
			if _, err1 := strconv.Atoi(fields[0]); err1 == nil {
				if dim, err2 := strconv.Atoi(fields[1]); err2 == nil {
					store.dim = dim
					continue
				}
			}
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("embedding: line %d: expected word and vector, got %q", lineNo, line)
		}
		word := fields[0]
		vec := make([]float32, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("embedding: line %d: component %d: %w", lineNo, i, err)
			}
			vec[i] = float32(v)
		}
		if err := store.Add(word, vec); err != nil {
			return nil, fmt.Errorf("embedding: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return store, nil
}

// WriteText writes the store in the word2vec text format, including the
// "count dim" header line, preserving enumeration order.
func WriteText(w io.Writer, store Store) error {
	words := store.Words()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", len(words), store.Dim()); err != nil {
		return err
	}
	for _, word := range words {
		vec, ok := store.Vector(word)
		if !ok {
			return fmt.Errorf("embedding: word %q disappeared during write", word)
		}
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		for _, v := range vec {
			if _, err := fmt.Fprintf(bw, " %g", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
