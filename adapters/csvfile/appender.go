package csvfile

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BertrandGueri09/Pojet-personnel-recherche/domain/survey"
	"github.com/BertrandGueri09/Pojet-personnel-recherche/internal/errors"
)

// Candidate bounds enforced on appended responses, matching the entry form.
const (
	MinAge    = 18
	MaxAge    = 60
	MaxSalary = 100000
)

// requiredColumns must be present on a candidate record before it is
// accepted.
var requiredColumns = []string{
	survey.ColAge, survey.ColSex, survey.ColDegree, survey.ColField,
}

// Append validates a candidate record, re-reads the persisted source fresh
// (never the session's in-memory dataset, which may be stale), assigns the
// next identifier and rewrites the whole table with the candidate as its
// last row. The caller is responsible for triggering a reload afterwards;
// nothing in memory is updated here.
//
// Concurrent appends from independent sessions race on the whole file
// (last writer wins). That is an accepted limitation of the flat-CSV source.
func Append(path string, candidate survey.Record) (int, error) {
	if err := ValidateCandidate(candidate); err != nil {
		return 0, err
	}

	dataset, err := readForAppend(path)
	if err != nil {
		return 0, err
	}

	if len(dataset.Schema.Columns) == 0 {
		dataset.Schema = survey.Schema{Columns: survey.DefaultColumns}
	}

	id := dataset.MaxID() + 1
	rec := candidate.Clone()
	rec[survey.ColID] = strconv.Itoa(id)

	// Pad columns the form did not supply so the row stays aligned with
	// the header.
	for _, column := range dataset.Schema.Columns {
		if _, ok := rec[column]; !ok {
			rec[column] = ""
		}
	}

	dataset.Records = append(dataset.Records, rec)
	if err := Write(path, dataset); err != nil {
		return 0, err
	}
	return id, nil
}

// readForAppend loads the current persisted table. A missing file starts a
// brand-new table; any other read problem aborts the append as a
// WRITE_FAILURE so the form can surface the cause.
func readForAppend(path string) (survey.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return survey.Dataset{}, nil
	}
	dataset, err := Load(path)
	if err != nil {
		return survey.Dataset{}, errors.WriteFailure(path, err)
	}
	return dataset, nil
}

// ValidateCandidate checks the candidate against the form's bounds.
func ValidateCandidate(candidate survey.Record) error {
	for _, column := range requiredColumns {
		if candidate.IsMissing(column) {
			return errors.InvalidInput(fmt.Sprintf("%s is required", column))
		}
	}
	age, ok := candidate.Int(survey.ColAge)
	if !ok || age < MinAge || age > MaxAge {
		return errors.InvalidInput(fmt.Sprintf("%s must be between %d and %d", survey.ColAge, MinAge, MaxAge))
	}
	if salary, present := candidate.Float(survey.ColSalary); present && (salary < 0 || salary > MaxSalary) {
		return errors.InvalidInput(fmt.Sprintf("%s must be between 0 and %d", survey.ColSalary, MaxSalary))
	}
	if training, present := candidate.Int(survey.ColTraining); present && (training < 1 || training > 5) {
		return errors.InvalidInput(fmt.Sprintf("%s must be between 1 and 5", survey.ColTraining))
	}
	return nil
}
