package archive

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"strings"

	"github.com/FocuswithJustin/Aozora/core/errors"
)

// ZIP signatures: a local file header and the end-of-central-directory
// record of an archive with no entries.
var (
	zipLocalMagic = []byte{'P', 'K', 0x03, 0x04}
	zipEmptyMagic = []byte{'P', 'K', 0x05, 0x06}
)

// IsZip reports whether data starts with a ZIP signature.
func IsZip(data []byte) bool {
	return bytes.HasPrefix(data, zipLocalMagic) || bytes.HasPrefix(data, zipEmptyMagic)
}

// UnzipFirstTxt extracts the first .txt entry (case-insensitive) from a
// ZIP archive held in memory. Aozora Bunko archives occasionally carry
// wrong CRC values, so entries are read through OpenRaw and decompressed
// directly, bypassing the CRC check that Open would apply.
func UnzipFirstTxt(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.NewParse("ZIP", "", err.Error())
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(f.Name), ".txt") {
			continue
		}
		// General purpose bit 0 marks an encrypted entry.
		if f.Flags&0x1 != 0 {
			return nil, errors.NewUnsupported("ZIP entry", "encrypted entries are not supported")
		}
		return readZipEntry(f)
	}
	return nil, errors.NewNotFound("text entry in ZIP archive", "")
}

func readZipEntry(f *zip.File) ([]byte, error) {
	raw, err := f.OpenRaw()
	if err != nil {
		return nil, errors.NewIO("read", f.Name, err)
	}

	switch f.Method {
	case zip.Store:
		content, err := io.ReadAll(raw)
		if err != nil {
			return nil, errors.NewIO("read", f.Name, err)
		}
		return content, nil
	case zip.Deflate:
		fr := flate.NewReader(raw)
		defer fr.Close()
		content, err := io.ReadAll(fr)
		if err != nil {
			return nil, errors.NewIO("decompress", f.Name, err)
		}
		return content, nil
	default:
		return nil, errors.NewUnsupported("compression method", fmt.Sprintf("%d", f.Method))
	}
}
