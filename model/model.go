package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// EpochSecond is a unix second count sent either as a number or as a
// quoted number.
type EpochSecond int64

func (e *EpochSecond) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if string(b) == "null" {
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("epoch second %q: %v", b, err)
	}
	*e = EpochSecond(v)
	return nil
}

// LeetcodeSubmission is one entry of recentAcSubmissionList.
type LeetcodeSubmission struct {
	Id        string      `json:"id"`
	Title     string      `json:"title"`
	TitleSlug string      `json:"titleSlug"`
	Timestamp EpochSecond `json:"timestamp"`
}

func (s LeetcodeSubmission) ProblemUrl() string {
	return fmt.Sprintf("https://leetcode.com/problems/%s/", s.TitleSlug)
}

type LeetcodeResponse struct {
	Data struct {
		RecentAcSubmissionList []LeetcodeSubmission `json:"recentAcSubmissionList"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type CodeforcesProblem struct {
	ContestId int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Points    float64  `json:"points"`
	Tags      []string `json:"tags"`
}

type CodeforcesMember struct {
	Handle string `json:"handle"`
}

type CodeforcesAuthor struct {
	ContestId        int                `json:"contestId"`
	Members          []CodeforcesMember `json:"members"`
	ParticipantType  string             `json:"participantType"`
	Ghost            bool               `json:"ghost"`
	Room             int                `json:"room"`
	StartTimeSeconds int64              `json:"startTimeSeconds"`
}

type CodeforcesSubmission struct {
	Id                  int64             `json:"id"`
	ContestId           int               `json:"contestId"`
	CreationTimeSeconds int64             `json:"creationTimeSeconds"`
	RelativeTimeSeconds int64             `json:"relativeTimeSeconds"`
	Problem             CodeforcesProblem `json:"problem"`
	Author              CodeforcesAuthor  `json:"author"`
	ProgrammingLanguage string            `json:"programmingLanguage"`
	Verdict             string            `json:"verdict"`
}

func (s CodeforcesSubmission) ProblemUrl() string {
	return fmt.Sprintf("https://codeforces.com/contest/%d/problem/%s", s.ContestId, s.Problem.Index)
}

type CodeforcesResponse struct {
	Status string                 `json:"status"`
	Result []CodeforcesSubmission `json:"result"`
}

// Digest is the today-set of both judges for one run.
type Digest struct {
	Leetcode   []LeetcodeSubmission
	Codeforces []CodeforcesSubmission
}

func (d Digest) Total() int {
	return len(d.Leetcode) + len(d.Codeforces)
}

// Solved is an archive row. Judge and SubmissionId together identify it.
type Solved struct {
	Judge        string `gorm:"primary_key" json:"judge"`
	SubmissionId string `gorm:"primary_key" json:"submission_id"`
	RunId        string `json:"run_id"`
	Day          string `json:"day"`
	Title        string `json:"title"`
	ProblemUrl   string `json:"problem_url"`
	Verdict      string `json:"verdict"`
	EpochSecond  int64  `json:"epoch_second"`
}

type Payload struct {
	Text string `json:"text"`
}
