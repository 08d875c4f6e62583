// Package demo prints sweeps of the linear mapper, one "<x> <y>" line per
// value and a blank line after each block.
package demo

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"linmap-go/errcode"
	"linmap-go/linmap"
)

// Block is one demonstration sweep.
type Block struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
	In    [2]int `yaml:"in"`
	Out   [2]int `yaml:"out"`
}

type document struct {
	Blocks []Block `yaml:"blocks"`
}

func (b Block) label(i int) string {
	if b.Name != "" {
		return strconv.Quote(b.Name)
	}
	return "#" + strconv.Itoa(i)
}

// DefaultBlocks returns the embedded block table.
func DefaultBlocks() ([]Block, error) {
	raw, ok := EmbeddedBlocksLookup()
	if !ok || len(raw) == 0 {
		return nil, errcode.New(errcode.InvalidPayload, "demo.DefaultBlocks", "no embedded block table")
	}
	return ParseBlocks(raw)
}

// ParseBlocks decodes and validates a YAML block table. Unknown keys are rejected.
func ParseBlocks(raw []byte) ([]Block, error) {
	const op = "demo.ParseBlocks"
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errcode.New(errcode.InvalidPayload, op, "empty document")
		}
		return nil, errcode.Wrap(errcode.InvalidPayload, op, err)
	}
	if len(doc.Blocks) == 0 {
		return nil, errcode.New(errcode.InvalidPayload, op, "no blocks")
	}
	for i, b := range doc.Blocks {
		if b.Count <= 0 {
			return nil, errcode.New(errcode.InvalidParams, op,
				fmt.Sprintf("block %s: count must be positive, got %d", b.label(i), b.Count))
		}
		if b.In[0] == b.In[1] {
			return nil, errcode.New(errcode.InvalidRange, op,
				fmt.Sprintf("block %s: input range [%d, %d] has zero width", b.label(i), b.In[0], b.In[1]))
		}
	}
	return doc.Blocks, nil
}

// Run writes every block to w.
func Run(w io.Writer, blocks []Block) error {
	bw := bufio.NewWriter(w)
	for i, b := range blocks {
		m, err := linmap.New(linmap.Range[int]{Min: b.In[0], Max: b.In[1]},
			linmap.Range[int]{Min: b.Out[0], Max: b.Out[1]})
		if err != nil {
			return fmt.Errorf("block %s: %w", b.label(i), err)
		}
		klog.V(2).Infof("demo: block %s %s -> %s, %d values", b.label(i), m.In, m.Out, b.Count)

		for p, err := range m.Sweep(b.Count) {
			if err != nil {
				return fmt.Errorf("block %s: %w", b.label(i), err)
			}
			if _, err := fmt.Fprintln(bw, p.X, p.Y); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
