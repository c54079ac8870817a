package sim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Save writes the current grid as plain text: two comment lines followed by
// height rows of width single-character type symbols. Temperature is not
// persisted.
func (w *World) Save(out io.Writer) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintln(bw, "# Falling sand save file")
	fmt.Fprintf(bw, "# Width: %d Height: %d\n", w.w, w.h)
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			bw.WriteByte(w.Get(x, y).Symbol())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	return nil
}

// Load clears the grid, then decodes symbol rows from in. Leading comment
// lines are skipped, but only before the first data row: data rows begin
// with the Stone wall symbol '#', so a comment is recognized by carrying
// bytes that are not cell symbols. Blank lines are skipped, rows beyond
// the grid height and columns beyond its width are ignored, and short rows
// leave the remaining columns as Clear left them. Boundary positions stay
// Stone whatever symbol the file holds, and all loaded cells start at
// ambient temperature.
func (w *World) Load(in io.Reader) error {
	w.Clear()

	sc := bufio.NewScanner(in)
	y := 0
	header := true
	for sc.Scan() && y < w.h {
		line := sc.Text()
		if line == "" {
			continue
		}
		if header && strings.HasPrefix(line, "#") && !symbolRow(line) {
			continue
		}
		header = false
		for x := 0; x < len(line) && x < w.w; x++ {
			if w.isBoundary(x, y) {
				continue
			}
			w.Set(x, y, FromSymbol(line[x]))
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading save: %w", err)
	}
	return nil
}

// symbolRow reports whether every byte of line is a known cell symbol.
// It tells grid rows apart from header comments, which also begin with
// '#' but carry prose bytes no particle uses.
func symbolRow(line string) bool {
	for i := 0; i < len(line); i++ {
		if b := line[i]; b != ' ' && symbolTable[b] == Empty {
			return false
		}
	}
	return true
}

// SaveFile writes the grid to path, replacing any existing file.
func (w *World) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating save file: %w", err)
	}
	if err := w.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing save file: %w", err)
	}
	return nil
}

// LoadFile restores the grid from path. A missing file is not an error: the
// grid is left untouched.
func (w *World) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening save file: %w", err)
	}
	defer f.Close()
	return w.Load(f)
}
