package controller

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/kashee337/solve_digest/model"
)

const (
	DBMS string = "sqlite3"
)

// Archive appends each run's today-set to a sqlite file. The pipeline never
// reads it back.
type Archive struct {
	db    *gorm.DB
	runId string
}

func OpenArchive(db_path string) (*Archive, error) {
	DbConnection, err := gorm.Open(DBMS, db_path)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive %s", db_path)
	}
	if !(DbConnection.HasTable(&model.Solved{})) {
		if err := DbConnection.CreateTable(&model.Solved{}).Error; err != nil {
			DbConnection.Close()
			return nil, errors.Wrap(err, "create table")
		}
	}
	return &Archive{db: DbConnection, runId: uuid.NewString()}, nil
}

func (a *Archive) RunId() string {
	return a.runId
}

// Save stores every record of d under day. Records already archived by an
// earlier run keep their first row.
func (a *Archive) Save(d model.Digest, day string) (int, error) {
	rows := make([]model.Solved, 0, d.Total())
	for _, s := range d.Leetcode {
		rows = append(rows, model.Solved{
			Judge:        "leetcode",
			SubmissionId: s.Id,
			Title:        s.Title,
			ProblemUrl:   s.ProblemUrl(),
			Verdict:      "OK",
			EpochSecond:  int64(s.Timestamp),
		})
	}
	for _, s := range d.Codeforces {
		rows = append(rows, model.Solved{
			Judge:        "codeforces",
			SubmissionId: strconv.FormatInt(s.Id, 10),
			Title:        s.Problem.Name,
			ProblemUrl:   s.ProblemUrl(),
			Verdict:      s.Verdict,
			EpochSecond:  s.CreationTimeSeconds,
		})
	}

	created := 0
	for _, row := range rows {
		row.RunId = a.runId
		row.Day = day
		res := a.db.Where(model.Solved{Judge: row.Judge, SubmissionId: row.SubmissionId}).FirstOrCreate(&row)
		if res.Error != nil {
			return created, errors.Wrapf(res.Error, "archive %s/%s", row.Judge, row.SubmissionId)
		}
		if row.RunId == a.runId {
			created++
		}
	}
	return created, nil
}

func (a *Archive) savedOn(day string) ([]model.Solved, error) {
	rows := []model.Solved{}
	err := a.db.Where("day = ?", day).Order("epoch_second DESC").Find(&rows).Error
	return rows, errors.Wrap(err, "query archive")
}

func (a *Archive) Close() error {
	return a.db.Close()
}
