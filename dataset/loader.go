// This file converts parsed records into validated cluster.Cluster values.
package dataset

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/watlab/hbnet/cluster"
)

// Parse reads every cluster record from src. name labels the source in
// error messages (a file name, or "" for in-memory input).
//
// Syntax errors fail the whole parse; record-level integrity violations
// surface as cluster.ErrDataIntegrity wrapped with the offending record's
// ID, so callers can branch with errors.Is.
func Parse(name, src string) ([]*cluster.Cluster, error) {
	ast, err := recordParser.ParseString(name, src)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: parsing %q", name)
	}

	clusters := make([]*cluster.Cluster, 0, len(ast.Records))
	for _, rec := range ast.Records {
		c, err := fromRecord(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset: %q record %q", name, rec.ID)
		}
		clusters = append(clusters, c)
	}

	return clusters, nil
}

// Load reads and parses every record from r.
func Load(name string, r io.Reader) ([]*cluster.Cluster, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: reading %q", name)
	}

	return Parse(name, string(src))
}

// LoadFile reads and parses every record from the file at path.
func LoadFile(path string) ([]*cluster.Cluster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: open")
	}
	defer f.Close()

	return Load(path, f)
}

// fromRecord converts one parsed record into an immutable Cluster,
// shifting the format's 1-based molecule indices down to 0-based.
func fromRecord(rec *recordAST) (*cluster.Cluster, error) {
	energy, err := strconv.ParseFloat(rec.Energy, 64)
	if err != nil {
		return nil, errors.Wrap(err, "energy")
	}

	bonds := make([]cluster.Bond, 0, len(rec.Bonds))
	for _, b := range rec.Bonds {
		bonds = append(bonds, cluster.Bond{From: b.From - 1, To: b.To - 1})
	}

	return cluster.New(rec.ID, rec.N, energy, bonds)
}
