package record

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	TagPut    byte = 0x00
	TagDelete byte = 0x01
)

// Tag (1) + KeyLen (4) + ValueLen (4)
const HeaderSize = 9

const (
	MaxKeySize   = 1 << 24
	MaxValueSize = 1 << 30
)

var (
	// ErrMalformed marks a record that cannot have been produced by the
	// encoder: truncated bytes, an unknown tag, an out-of-bounds length or a
	// delete record declaring value bytes.
	ErrMalformed = errors.New("record: malformed record")

	ErrKeyTooLarge   = fmt.Errorf("record: key exceeds %d bytes", MaxKeySize)
	ErrValueTooLarge = fmt.Errorf("record: value exceeds %d bytes", MaxValueSize)
)

type Record struct {
	Tag   byte // TagPut or TagDelete
	Key   []byte
	Value []byte // always empty for TagDelete
}

func CreatePutRecord(key, value []byte) Record {
	return Record{
		Tag:   TagPut,
		Key:   key,
		Value: value,
	}
}

func CreateDeleteRecord(key []byte) Record {
	return Record{
		Tag:   TagDelete,
		Key:   key,
		Value: nil,
	}
}

// EncodeRecord serializes a record into its on-disk form. Bounds are checked
// here so an oversized key or value is rejected before any byte reaches the
// log.
func EncodeRecord(r *Record) ([]byte, error) {
	if r.Tag != TagPut && r.Tag != TagDelete {
		return nil, fmt.Errorf("%w: unknown tag %#x", ErrMalformed, r.Tag)
	}
	if len(r.Key) > MaxKeySize {
		return nil, ErrKeyTooLarge
	}
	if len(r.Value) > MaxValueSize {
		return nil, ErrValueTooLarge
	}
	if r.Tag == TagDelete && len(r.Value) != 0 {
		return nil, fmt.Errorf("%w: delete record cannot carry a value", ErrMalformed)
	}

	buf := &bytes.Buffer{}

	if err := buf.WriteByte(r.Tag); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(r.Key))); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(r.Value))); err != nil {
		return nil, err
	}
	if _, err := buf.Write(r.Key); err != nil {
		return nil, err
	}
	if _, err := buf.Write(r.Value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ReadRecord consumes exactly one record from rd and reports how many bytes
// it took. A stream ending before the first header byte is a clean boundary
// and returns io.EOF untouched; a stream ending anywhere inside a record is
// ErrMalformed. Read errors other than a short read pass through unchanged.
func ReadRecord(rd io.Reader) (*Record, int64, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(rd, header); err != nil {
		if err == io.EOF {
			return nil, 0, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, 0, fmt.Errorf("%w: truncated header", ErrMalformed)
		}
		return nil, 0, err
	}

	tag := header[0]
	keyLen := binary.LittleEndian.Uint32(header[1:5])
	valueLen := binary.LittleEndian.Uint32(header[5:9])

	if tag != TagPut && tag != TagDelete {
		return nil, 0, fmt.Errorf("%w: unknown tag %#x", ErrMalformed, tag)
	}
	if keyLen > MaxKeySize {
		return nil, 0, fmt.Errorf("%w: key length %d exceeds %d", ErrMalformed, keyLen, MaxKeySize)
	}
	if valueLen > MaxValueSize {
		return nil, 0, fmt.Errorf("%w: value length %d exceeds %d", ErrMalformed, valueLen, MaxValueSize)
	}
	if tag == TagDelete && valueLen != 0 {
		return nil, 0, fmt.Errorf("%w: delete record declares %d value bytes", ErrMalformed, valueLen)
	}

	key := make([]byte, keyLen)
	if _, err := io.ReadFull(rd, key); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, 0, fmt.Errorf("%w: truncated key", ErrMalformed)
		}
		return nil, 0, err
	}

	value := make([]byte, valueLen)
	if _, err := io.ReadFull(rd, value); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, 0, fmt.Errorf("%w: truncated value", ErrMalformed)
		}
		return nil, 0, err
	}

	size := int64(HeaderSize) + int64(keyLen) + int64(valueLen)
	return &Record{Tag: tag, Key: key, Value: value}, size, nil
}
