package keyfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/mtree"
)

// chunkSize is the number of keys inserted between progress broadcasts.
const chunkSize = 1024

// Progress is the message type broadcast to subscribers while a file is
// being loaded. The final message of a load carries Done=true.
type Progress struct {
	Keys     int  // keys inserted so far
	Rejected int  // lines the parser refused
	Done     bool // loading has finished
}

// Loader loads keys from a single file into a single tree.
//
// The target tree must not be read or modified by the client until Wait
// has returned.
type Loader[T any] struct {
	tree      *mtree.Tree[T]
	parse     func(string) (T, error)
	cast      *caster.Caster // broadcaster for async progress messages
	done      chan struct{}
	keys      int
	rejected  int
	lastError error
}

// Load opens a file and starts loading its keys into tree. parse converts
// a trimmed input line to a key; lines it rejects are counted and skipped.
//
// Loading is done asynchronously. Call Wait to block until the tree is
// complete, or Subscribe to watch progress.
func Load[T any](tree *mtree.Tree[T], name string, parse func(string) (T, error)) (*Loader[T], error) {
	if tree == nil || parse == nil {
		return nil, fmt.Errorf("%w: loader needs a tree and a parser", mtree.ErrInvalidConfig)
	}
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	ld := &Loader[T]{
		tree:  tree,
		parse: parse,
		cast:  caster.New(nil), // we will broadcast messages when chunks are loaded
		done:  make(chan struct{}),
	}
	tracer().Debugf("loading %d bytes of keys from %s", fi.Size(), name)
	go ld.loadAllKeys(file)
	return ld, nil
}

// Subscribe registers a listener for Progress messages. The returned channel
// is closed when loading has finished. ok is false if loading has already
// finished.
func (ld *Loader[T]) Subscribe() (ch <-chan interface{}, ok bool) {
	return ld.cast.Sub(context.Background(), 1)
}

// Wait blocks until loading has finished. It returns the number of keys
// inserted and the first I/O error encountered, if any.
func (ld *Loader[T]) Wait() (int, error) {
	<-ld.done
	return ld.keys, ld.lastError
}

// Rejected returns the number of input lines the parser refused.
// Valid after Wait has returned.
func (ld *Loader[T]) Rejected() int {
	return ld.rejected
}

// loadAllKeys runs as a goroutine, reading lines and inserting keys until
// the file is exhausted.
func (ld *Loader[T]) loadAllKeys(file *os.File) {
	defer func() {
		ld.cast.Pub(Progress{Keys: ld.keys, Rejected: ld.rejected, Done: true})
		ld.cast.Close()
		file.Close()
		close(ld.done)
	}()
	scanner := bufio.NewScanner(file)
	inchunk := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, err := ld.parse(line)
		if err != nil {
			ld.rejected++
			continue
		}
		ld.tree.Add(key)
		ld.keys++
		if inchunk++; inchunk >= chunkSize {
			inchunk = 0
			ld.cast.Pub(Progress{Keys: ld.keys, Rejected: ld.rejected})
		}
	}
	if err := scanner.Err(); err != nil {
		ld.lastError = fmt.Errorf("error loading keys: %w", err)
	}
}

// --- Convenience loaders ---------------------------------------------------

// LoadStrings synchronously loads a file of string keys into tree and
// returns the number of keys inserted.
func LoadStrings(tree *mtree.Tree[string], name string) (int, error) {
	ld, err := Load(tree, name, func(line string) (string, error) {
		return line, nil
	})
	if err != nil {
		return 0, err
	}
	return ld.Wait()
}

// LoadInts synchronously loads a file of integer keys into tree and
// returns the number of keys inserted. Non-numeric lines are skipped.
func LoadInts(tree *mtree.Tree[int], name string) (int, error) {
	ld, err := Load(tree, name, strconv.Atoi)
	if err != nil {
		return 0, err
	}
	return ld.Wait()
}
