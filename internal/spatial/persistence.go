package spatial

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var magicBytes = [4]byte{'F', 'R', 'S', 'P'}

const (
	version1 uint16 = 1
	version2 uint16 = 2
)

// Save persists the index to path. When metadata is present (built via
// BuildWithMetadata), the file is written in v2 format with an embedded
// checksum, release tag, and build timestamp; otherwise it is written as
// a plain v1 tree.
func (idx *SpatialIndex) Save(path string) error {
	var buf bytes.Buffer
	buf.Write(magicBytes[:])

	if idx.metadata != nil {
		binary.Write(&buf, binary.LittleEndian, version2)
		buf.Write(idx.metadata.Checksum[:])
		tagBytes := []byte(idx.metadata.ReleaseTag)
		binary.Write(&buf, binary.LittleEndian, uint16(len(tagBytes)))
		buf.Write(tagBytes)
		binary.Write(&buf, binary.LittleEndian, idx.metadata.BuildTimestamp)
	} else {
		binary.Write(&buf, binary.LittleEndian, version1)
	}

	var points []Point
	flatten(idx.root, &points)
	binary.Write(&buf, binary.LittleEndian, uint32(len(points)))
	for _, p := range points {
		binary.Write(&buf, binary.LittleEndian, p.ID)
		binary.Write(&buf, binary.LittleEndian, p.X)
		binary.Write(&buf, binary.LittleEndian, p.Y)
		binary.Write(&buf, binary.LittleEndian, p.Z)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), fmt.Sprintf(".%s.tmp-*", filepath.Base(path)))
	if err != nil {
		return NewIndexIOError(err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return NewIndexIOError(err)
	}
	if err := tmp.Close(); err != nil {
		return NewIndexIOError(err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return NewIndexIOError(err)
	}
	return nil
}

// Load reads a persisted index from path. The second return value is
// nil for a v1 file (MetadataAbsent semantics are the caller's concern
// via VerifyFreshness, not Load itself).
func Load(path string) (*SpatialIndex, *DatasetMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, NewIndexIOError(err)
	}
	r := bytes.NewReader(data)

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil || magic != magicBytes {
		return nil, nil, NewCorruptIndexError("bad magic bytes")
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, nil, NewCorruptIndexError("truncated version field")
	}
	if version != version1 && version != version2 {
		return nil, nil, NewCorruptIndexError("unsupported spatial index version")
	}

	var meta *DatasetMetadata
	if version == version2 {
		m := DatasetMetadata{}
		if _, err := io.ReadFull(r, m.Checksum[:]); err != nil {
			return nil, nil, NewCorruptIndexError("truncated checksum")
		}
		var tagLen uint16
		if err := binary.Read(r, binary.LittleEndian, &tagLen); err != nil {
			return nil, nil, NewCorruptIndexError("truncated release tag length")
		}
		tagBytes := make([]byte, tagLen)
		if _, err := io.ReadFull(r, tagBytes); err != nil {
			return nil, nil, NewCorruptIndexError("truncated release tag")
		}
		m.ReleaseTag = string(tagBytes)
		if err := binary.Read(r, binary.LittleEndian, &m.BuildTimestamp); err != nil {
			return nil, nil, NewCorruptIndexError("truncated build timestamp")
		}
		meta = &m
	}

	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, nil, NewCorruptIndexError("truncated node count")
	}

	points := make([]Point, 0, nodeCount)
	for i := uint32(0); i < nodeCount; i++ {
		var p Point
		if err := binary.Read(r, binary.LittleEndian, &p.ID); err != nil {
			return nil, nil, NewCorruptIndexError("truncated point record")
		}
		if err := binary.Read(r, binary.LittleEndian, &p.X); err != nil {
			return nil, nil, NewCorruptIndexError("truncated point record")
		}
		if err := binary.Read(r, binary.LittleEndian, &p.Y); err != nil {
			return nil, nil, NewCorruptIndexError("truncated point record")
		}
		if err := binary.Read(r, binary.LittleEndian, &p.Z); err != nil {
			return nil, nil, NewCorruptIndexError("truncated point record")
		}
		points = append(points, p)
	}

	return &SpatialIndex{root: buildKDTree(points, 0), metadata: meta, count: len(points)}, meta, nil
}
