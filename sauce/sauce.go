/*
Package sauce implements the SAUCE 00 metadata record appended to ANSI
art files.

The record is 128 bytes preceded by an EOF byte (0x1a) so text-mode
viewers stop before the metadata; Size counts both. String fields are
space padded except TInfoS which is zero padded remainder-of-field.
*/
package sauce

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Size is the byte length of a marshalled record, including the
// leading EOF byte.
const Size = 129

const signature = "SAUCE00"

// Data and file type identifiers for character-based ANSI art.
const (
	DataTypeCharacter = 1
	FileTypeANSI      = 1
)

var (
	errBadLength    = errors.New("sauce: record is not 129 bytes")
	errBadSignature = errors.New("sauce: missing SAUCE00 signature")
)

// Record is a SAUCE 00 trailer. The zero value marshals to a valid,
// empty record; for ANSI output set DataType, FileType, FileSize,
// TInfo1 (columns), TInfo2 (rows) and TInfoS (font name).
type Record struct {
	Title    string // at most 35 bytes
	Author   string // at most 20 bytes
	Group    string // at most 20 bytes
	Date     string // CCYYMMDD, at most 8 bytes
	FileSize uint32 // byte length of the stream before the trailer
	DataType uint8
	FileType uint8
	TInfo1   uint16
	TInfo2   uint16
	TInfo3   uint16
	TInfo4   uint16
	Comments uint8
	TFlags   uint8
	TInfoS   string // at most 22 bytes
}

func writePadded(b *bytes.Buffer, s string, width int, pad byte) error {
	if len(s) > width {
		return fmt.Errorf("sauce: %q longer than %d bytes", s, width)
	}
	b.WriteString(s)
	b.Write(bytes.Repeat([]byte{pad}, width-len(s)))
	return nil
}

// MarshalBinary encodes the record into its 129-byte binary form.
func (r *Record) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	b.Grow(Size)
	b.WriteByte(0x1a)
	b.WriteString(signature)

	for _, f := range []struct {
		value string
		width int
		pad   byte
	}{
		{r.Title, 35, ' '},
		{r.Author, 20, ' '},
		{r.Group, 20, ' '},
		{r.Date, 8, ' '},
	} {
		if err := writePadded(b, f.value, f.width, f.pad); err != nil {
			return nil, err
		}
	}

	for _, v := range []interface{}{
		r.FileSize,
		r.DataType,
		r.FileType,
		r.TInfo1,
		r.TInfo2,
		r.TInfo3,
		r.TInfo4,
		r.Comments,
		r.TFlags,
	} {
		if err := binary.Write(b, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}

	if err := writePadded(b, r.TInfoS, 22, 0x00); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes a 129-byte trailer into the record.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return errBadLength
	}
	if data[0] != 0x1a || string(data[1:8]) != signature {
		return errBadSignature
	}

	r.Title = trimField(data[8:43], ' ')
	r.Author = trimField(data[43:63], ' ')
	r.Group = trimField(data[63:83], ' ')
	r.Date = trimField(data[83:91], ' ')
	r.FileSize = binary.LittleEndian.Uint32(data[91:95])
	r.DataType = data[95]
	r.FileType = data[96]
	r.TInfo1 = binary.LittleEndian.Uint16(data[97:99])
	r.TInfo2 = binary.LittleEndian.Uint16(data[99:101])
	r.TInfo3 = binary.LittleEndian.Uint16(data[101:103])
	r.TInfo4 = binary.LittleEndian.Uint16(data[103:105])
	r.Comments = data[105]
	r.TFlags = data[106]
	r.TInfoS = trimField(data[107:129], 0x00)

	return nil
}

func trimField(b []byte, pad byte) string {
	return string(bytes.TrimRight(b, string(pad)))
}
