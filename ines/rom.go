package ines

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	headerSize      = 16
	trainerSize     = 512
	prgPageSize     = 0x4000
	chrPageSize     = 0x2000
	magicNES0, magicNES1, magicNES2, magicNES3 = 'N', 'E', 'S', 0x1A
)

// Mirroring is the nametable layout a ROM header can declare. Its values do
// not line up with nes.Mirroring, which adds two single-screen modes, so the
// nes package converts between them explicitly (mirrorFromINES).
type Mirroring byte

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFour
)

// ROM is the parsed result of an iNES 1.0 file: PRG/CHR banks sliced out
// of the body, plus the header fields the nes package's mapper factory and
// Cartridge need.
type ROM struct {
	PRG      []byte
	CHR      []byte
	Mapper   byte
	Mirror   Mirroring
	Battery  bool
	PRGPages int
	CHRPages int
}

// Load reads path and parses it as an iNES 1.0 ROM.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ines: read %s", path)
	}
	return Parse(data)
}

// LoadReader parses an iNES 1.0 ROM from an already-open reader, for
// callers that don't have a filesystem path (embedded test fixtures,
// network fetches).
func LoadReader(r io.Reader) (*ROM, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "ines: read rom")
	}
	return Parse(data)
}

// Parse validates the 16-byte iNES header and slices PRG/CHR out of the
// body. It rejects anything that isn't exactly iNES 1.0: a missing "NES\x1A"
// magic, or flags7's NES 2.0 marker (bits 2-3 of byte 7 equal to 2).
func Parse(data []byte) (*ROM, error) {
	if len(data) < headerSize {
		return nil, newFormatError("file too short for an iNES header (%d bytes)", len(data))
	}
	header := data[:headerSize]
	if header[0] != magicNES0 || header[1] != magicNES1 || header[2] != magicNES2 || header[3] != magicNES3 {
		return nil, newFormatError("missing \"NES\\x1A\" magic bytes")
	}

	flags6 := header[6]
	flags7 := header[7]

	if (flags7>>2)&0x3 == 2 {
		return nil, newFormatError("NES 2.0 format is not supported")
	}

	mapper := (flags7 & 0xf0) | (flags6 >> 4)

	fourScreen := flags6&0x08 != 0
	vertical := flags6&0x01 != 0
	mirror := MirrorHorizontal
	switch {
	case fourScreen:
		mirror = MirrorFour
	case vertical:
		mirror = MirrorVertical
	}

	battery := flags6&0x02 != 0
	hasTrainer := flags6&0x04 != 0

	prgPages := int(header[4])
	chrPages := int(header[5])
	prgSize := prgPages * prgPageSize
	chrSize := chrPages * chrPageSize

	offset := headerSize
	if hasTrainer {
		offset += trainerSize
	}

	if len(data) < offset+prgSize {
		return nil, newFormatError("PRG-ROM truncated: need %d bytes, have %d", prgSize, len(data)-offset)
	}
	prg := data[offset : offset+prgSize]
	offset += prgSize

	var chr []byte
	if chrSize > 0 {
		if len(data) < offset+chrSize {
			return nil, newFormatError("CHR-ROM truncated: need %d bytes, have %d", chrSize, len(data)-offset)
		}
		chr = data[offset : offset+chrSize]
	}

	return &ROM{
		PRG:      prg,
		CHR:      chr,
		Mapper:   mapper,
		Mirror:   mirror,
		Battery:  battery,
		PRGPages: prgPages,
		CHRPages: chrPages,
	}, nil
}
