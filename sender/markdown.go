package sender

import (
	"strings"
	"text/template"
	"time"

	"github.com/pkg/errors"

	"github.com/kashee337/solve_digest/model"
)

const pageTemplate = `---
title: {{.Title}}
layout: {{.Layout}}
date: {{.Date}}
summary: {{.Total}} submissions today
---

## Leetcode

<ul>
    {{range .Leetcode}}<li>
    <a href="{{.ProblemUrl}}" class="text-blue-600 underline underline-offset-4" target="_blank"> {{html .Title}} </a>
    </li>{{end}}
</ul>

## Codeforces

<ul>
    {{range .Codeforces}}<li>
    <div class="flex flex-col md:flex-row md:justify-between">
    <a href="{{.ProblemUrl}}" class="text-blue-600 underline underline-offset-4" target="_blank"> {{html .Problem.Name}} </a>
    <p> {{html .Verdict}} </p>
    </div>
    </li>{{end}}
</ul>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Title      string
	Layout     string
	Date       string
	Total      int
	Leetcode   []model.LeetcodeSubmission
	Codeforces []model.CodeforcesSubmission
}

// DateString is the human readable day used for the page title and file name.
func DateString(now time.Time) string {
	return now.Format("Mon Jan 02 2006")
}

// Render builds the summary page. Output depends only on its arguments.
// Problem titles and verdicts are HTML-escaped before they reach the markup.
func Render(d model.Digest, now time.Time, layout string) (string, error) {
	var sb strings.Builder
	err := page.Execute(&sb, pageData{
		Title:      DateString(now),
		Layout:     layout,
		Date:       now.UTC().Format("2006-01-02T15:04:05.000Z"),
		Total:      d.Total(),
		Leetcode:   d.Leetcode,
		Codeforces: d.Codeforces,
	})
	if err != nil {
		return "", errors.Wrap(err, "render page")
	}
	return sb.String(), nil
}
