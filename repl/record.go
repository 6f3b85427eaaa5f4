package repl

import (
	"math"
	"os"

	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"

	"github.com/ratiorepl/ratiorepl/expr"
)

// SessionRecord is one archived evaluation, written to the --record file
// as a sequence of BSON documents (each is self-delimiting via its own
// length prefix, so no additional framing is needed on top).
type SessionRecord struct {
	Line      string `bson:"line"`
	TruthNum  string `bson:"truth_num"`
	TruthDen  string `bson:"truth_den"`
	FloatBits int64  `bson:"float_bits"`
	LCP       int    `bson:"lcp"`
}

// NewSessionRecord builds a SessionRecord from one evaluated root
// value. lcp is the LCP index between the float's and truth's rendered
// DecimalTuples, or -1 when the two rendered identically.
func NewSessionRecord(line string, val expr.Value, lcp int) SessionRecord {
	return SessionRecord{
		Line:      line,
		TruthNum:  val.Rat.Num().String(),
		TruthDen:  val.Rat.Denom().String(),
		FloatBits: int64(math.Float64bits(val.Float)),
		LCP:       lcp,
	}
}

// RecordWriter appends SessionRecords to a file as raw BSON documents.
type RecordWriter struct {
	f *os.File
}

// OpenRecordWriter opens (creating/truncating) the file at path for
// session recording.
func OpenRecordWriter(path string) (*RecordWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening record file %q", path)
	}
	return &RecordWriter{f: f}, nil
}

// Write appends one record.
func (w *RecordWriter) Write(rec SessionRecord) error {
	buf, err := bson.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshaling session record")
	}
	if _, err := w.f.Write(buf); err != nil {
		return errors.Wrap(err, "writing session record")
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *RecordWriter) Close() error {
	return w.f.Close()
}

// ReadAllRecords reads every BSON document from path in sequence. Used
// by tooling that inspects a prior session's recording, not by the
// REPL itself.
func ReadAllRecords(path string) ([]SessionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading record file %q", path)
	}
	var out []SessionRecord
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, errors.New("truncated BSON document in record file")
		}
		size := int(int32(data[0]) | int32(data[1])<<8 | int32(data[2])<<16 | int32(data[3])<<24)
		if size <= 0 || size > len(data) {
			return nil, errors.New("malformed BSON document length in record file")
		}
		var rec SessionRecord
		if err := bson.Unmarshal(data[:size], &rec); err != nil {
			return nil, errors.Wrap(err, "unmarshaling session record")
		}
		out = append(out, rec)
		data = data[size:]
	}
	return out, nil
}
