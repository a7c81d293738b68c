package controller

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kashee337/solve_digest/logger"
	"github.com/kashee337/solve_digest/model"
	"github.com/pkg/errors"
)

const recentAcQuery = `query recentAcSubmissions($username: String!, $limit: Int!) { recentAcSubmissionList(username: $username, limit: $limit) { id title titleSlug timestamp }}`

type LeetcodeClient struct {
	Url    string
	User   string
	Client *http.Client
	Log    logger.Sink
}

// Fetch returns the user's most recent accepted submissions, newest first.
// Any failure is logged and reported as an empty list.
func (c LeetcodeClient) Fetch(limit int) []model.LeetcodeSubmission {
	c.Log.Info("leetcode: fetching %d submissions", limit)
	sub_list, err := c.fetch(limit)
	if err != nil {
		c.Log.Error("leetcode: %v", err)
		return []model.LeetcodeSubmission{}
	}
	c.Log.Info("leetcode: got %d submissions", len(sub_list))
	return sub_list
}

func (c LeetcodeClient) fetch(limit int) ([]model.LeetcodeSubmission, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": recentAcQuery,
		"variables": map[string]interface{}{
			"username": c.User,
			"limit":    limit,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode query")
	}
	req, err := http.NewRequest(http.MethodPost, c.Url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	res := model.LeetcodeResponse{}
	if err := doJSON(httpClient(c.Client), req, &res); err != nil {
		return nil, err
	}
	if len(res.Errors) != 0 {
		return nil, errors.Errorf("graphql error: %s", res.Errors[0].Message)
	}
	if res.Data.RecentAcSubmissionList == nil {
		return []model.LeetcodeSubmission{}, nil
	}
	return res.Data.RecentAcSubmissionList, nil
}

type CodeforcesClient struct {
	Url    string
	Handle string
	Client *http.Client
	Log    logger.Sink
}

// Fetch returns the handle's most recent submissions of any verdict,
// newest first. Any failure is logged and reported as an empty list.
func (c CodeforcesClient) Fetch(limit int) []model.CodeforcesSubmission {
	c.Log.Info("codeforces: fetching %d submissions", limit)
	sub_list, err := c.fetch(limit)
	if err != nil {
		c.Log.Error("codeforces: %v", err)
		return []model.CodeforcesSubmission{}
	}
	c.Log.Info("codeforces: got %d submissions", len(sub_list))
	return sub_list
}

func (c CodeforcesClient) fetch(limit int) ([]model.CodeforcesSubmission, error) {
	req_url, err := url.Parse(c.Url)
	if err != nil {
		return nil, errors.Wrap(err, "parse url")
	}
	q := req_url.Query()
	q.Set("handle", c.Handle)
	q.Set("from", "1")
	q.Set("count", strconv.Itoa(limit))
	req_url.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, req_url.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	res := model.CodeforcesResponse{}
	if err := doJSON(httpClient(c.Client), req, &res); err != nil {
		return nil, err
	}
	if res.Status != "" && res.Status != "OK" {
		return nil, errors.Errorf("api status %s", res.Status)
	}
	if res.Result == nil {
		return []model.CodeforcesSubmission{}, nil
	}
	return res.Result, nil
}

func httpClient(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}

func doJSON(client *http.Client, req *http.Request, v interface{}) error {
	res, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Host)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errors.Errorf("%s %s: status %d", req.Method, req.URL.Host, res.StatusCode)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, "decode body")
	}
	return nil
}
