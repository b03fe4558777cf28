package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-door-keeper/models"
)

// Tag is the simulated memory of one tag.
type Tag struct {
	UID    string         `json:"uid"`
	Blocks map[int]string `json:"blocks,omitempty"`
	KeyA   []string       `json:"keya,omitempty"`
	KeyB   []string       `json:"keyb,omitempty"`
}

func NewTag(uid string) *Tag {
	return &Tag{UID: uid, Blocks: map[int]string{}}
}

// LoadTag reads the tag from path. A missing file yields a blank tag with
// the given uid.
func LoadTag(path, uid string) (*Tag, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewTag(uid), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tag state: %w", err)
	}

	tag := NewTag(uid)
	if err = json.Unmarshal(raw, tag); err != nil {
		return nil, fmt.Errorf("decode tag state %s: %w", path, err)
	}
	if uid != "" && tag.UID != uid {
		// another tag is presented; its memory is unknown
		return NewTag(uid), nil
	}
	if tag.Blocks == nil {
		tag.Blocks = map[int]string{}
	}
	return tag, nil
}

// Save writes the tag to path atomically.
func (t *Tag) Save(path string) error {
	raw, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tag state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write tag state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write tag state: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write tag state: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write tag state: %w", err)
	}
	return nil
}

// Read returns at most n characters of block.
func (t *Tag) Read(block, n int) string {
	text := t.Blocks[block]
	if n > 0 && len(text) > n {
		return text[:n]
	}
	return text
}

func (t *Tag) Write(block int, text string) {
	t.Blocks[block] = text
}

// Provision applies an init response: every data block gets its filler,
// the anti-tamper block its first value, and the sector keys are replaced.
func (t *Tag) Provision(resp models.Response) {
	for block, text := range resp.Filler {
		if text != "" {
			t.Blocks[block] = text
		}
	}
	t.Blocks[resp.WriteBlock] = resp.Text
	t.KeyA = resp.KeyA
	t.KeyB = resp.KeyB
}

// Wipe returns the tag to factory state.
func (t *Tag) Wipe() {
	t.Blocks = map[int]string{}
	t.KeyA = nil
	t.KeyB = nil
}

func (t *Tag) String() string {
	return t.UID + " (" + strconv.Itoa(len(t.Blocks)) + " blocks)"
}
