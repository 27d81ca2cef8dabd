package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	stdstrings "strings"

	"gopkg.in/yaml.v3"

	"policycore/internal/registration/models"
	id "policycore/pkg/domain"
	dErrors "policycore/pkg/domain-errors"
	pstrings "policycore/pkg/platform/strings"
)

// loadRecords reads registration records from a YAML file. The document may
// hold a single record or a sequence of records. path "-" reads stdin.
func loadRecords(path string, stdin io.Reader) ([]models.Record, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "open record file")
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "open record file")
		}
		defer f.Close()
		r = f
	}
	return decodeRecords(r)
}

func decodeRecords(r io.Reader) ([]models.Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "record file is empty")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode records")
	}

	var records []models.Record
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&records); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode records")
		}
	case yaml.MappingNode:
		var rec models.Record
		if err := root.Decode(&rec); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "decode record")
		}
		records = append(records, rec)
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "record file must hold a mapping or a sequence of mappings")
	}

	for i := range records {
		rec, err := normalizeRecord(records[i])
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("record %d", i))
		}
		records[i] = rec
	}
	return records, nil
}

// normalizeRecord trims the student ID and name and deduplicates completed
// courses. Flag and file input both pass through it.
// Schedule slots are trimmed but kept as-is so duplicates still collide.
func normalizeRecord(rec models.Record) (models.Record, error) {
	sid, err := id.ParseStudentID(rec.StudentID.String())
	if err != nil {
		return models.Record{}, err
	}
	rec.StudentID = sid
	rec.StudentName = stdstrings.TrimSpace(rec.StudentName)
	rec.CompletedCourses = pstrings.DedupeAndTrim(rec.CompletedCourses)
	rec.ScheduleSlots = pstrings.TrimEmpty(rec.ScheduleSlots)
	return rec, nil
}
