// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"strconv"

	"github.com/MKhiriev/go-door-keeper/internal/utils"
)

const (
	textOffset        = 8
	AntiTamperTextLen = 16
	SectorKeyTextLen  = 12
)

type hmacCodeGenerator struct {
	hasher *utils.Hasher
}

// NewCodeGenerator returns a [CodeGenerator] keyed with masterSecret.
func NewCodeGenerator(masterSecret string) CodeGenerator {
	return &hmacCodeGenerator{hasher: utils.NewHasher([]byte(masterSecret))}
}

func (g *hmacCodeGenerator) AntiTamperText(keyName string, num int64) string {
	return g.derive(keyName, num, AntiTamperTextLen)
}

func (g *hmacCodeGenerator) SectorKeyText(keyName string, num int64) string {
	return g.derive(keyName, num, SectorKeyTextLen)
}

func (g *hmacCodeGenerator) CheckAntiTamperText(keyName string, num int64, candidate string) bool {
	want := g.AntiTamperText(keyName, num)
	return subtle.ConstantTimeCompare([]byte(want), []byte(candidate)) == 1
}

// derive takes n characters of the hex digest of keyName||num starting at
// textOffset.
func (g *hmacCodeGenerator) derive(keyName string, num int64, n int) string {
	sum := g.hasher.HexSum(keyName + strconv.FormatInt(num, 10))
	return sum[textOffset : textOffset+n]
}
