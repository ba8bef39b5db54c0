package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
)

// validator is satisfied by every document type in this package.
type validator interface {
	Validate() error
}

// readDocument slurps the file at path, undoing LZ4 frame compression when
// the extension asks for it, and returns the raw bytes with the inner codec.
func readDocument(path string) ([]byte, Codec, error) {
	codec, compressed, err := codecFor(path)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if compressed {
		reader = lz4.NewReader(file)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("read document: %w", err)
	}

	return data, codec, nil
}

// load decodes the document at path into doc and runs its shape validation.
func load(path string, doc validator) error {
	data, codec, err := readDocument(path)
	if err != nil {
		return err
	}

	err = codec.Decode(bytes.NewReader(data), doc)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return doc.Validate()
}

// LoadDataset reads an observation set from path.
func LoadDataset(path string) (*Dataset, error) {
	var doc Dataset

	err := load(path, &doc)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadDistribution reads a discrete distribution from path. JSON documents
// are schema-validated before decoding so malformed files fail with a
// field-level report instead of a decode error.
func LoadDistribution(path string) (*Distribution, error) {
	data, codec, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	if codec.Extension() == jsonExtension {
		err = ValidateDistributionJSON(data)
		if err != nil {
			return nil, err
		}
	}

	var doc Distribution

	err = codec.Decode(bytes.NewReader(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	err = doc.Validate()
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadXYSeries reads a paired sample from path.
func LoadXYSeries(path string) (*XYSeries, error) {
	var doc XYSeries

	err := load(path, &doc)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// LoadJoint reads a joint distribution table from path.
func LoadJoint(path string) (*Joint, error) {
	var doc Joint

	err := load(path, &doc)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Save writes doc to path using the codec its extension selects, compressing
// when the path carries the ".lz4" suffix.
func Save(path string, doc any) error {
	codec, compressed, err := codecFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	defer file.Close()

	if !compressed {
		return codec.Encode(file, doc)
	}

	writer := lz4.NewWriter(file)

	err = codec.Encode(writer, doc)
	if err != nil {
		return err
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("flush lz4 frame: %w", err)
	}

	return nil
}
