package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashee337/solve_digest/logger"
	"github.com/kashee337/solve_digest/model"
)

func TestLeetcodeFetchSendsQueryAndDecodes(t *testing.T) {
	var got struct {
		Query     string `json:"query"`
		Variables struct {
			Username string `json:"username"`
			Limit    int    `json:"limit"`
		} `json:"variables"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":{"recentAcSubmissionList":[
			{"id":"1","title":"Two Sum","titleSlug":"two-sum","timestamp":"1700000000"},
			{"id":"2","title":"Add Two Numbers","titleSlug":"add-two-numbers","timestamp":"1699990000"}]}}`))
	}))
	defer srv.Close()

	rec := &logger.Recorder{}
	c := LeetcodeClient{Url: srv.URL, User: "alice", Client: srv.Client(), Log: rec}
	subs := c.Fetch(20)

	require.Len(t, subs, 2)
	assert.Equal(t, "two-sum", subs[0].TitleSlug)
	assert.Equal(t, model.EpochSecond(1700000000), subs[0].Timestamp)
	assert.Equal(t, "alice", got.Variables.Username)
	assert.Equal(t, 20, got.Variables.Limit)
	assert.Contains(t, got.Query, "recentAcSubmissionList")
	assert.Equal(t, []string{"leetcode: fetching 20 submissions", "leetcode: got 2 submissions"}, rec.Messages("INFO"))
	assert.Empty(t, rec.Messages("ERROR"))
}

func TestCodeforcesFetchSendsQueryAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "bob", r.URL.Query().Get("handle"))
		assert.Equal(t, "1", r.URL.Query().Get("from"))
		assert.Equal(t, "30", r.URL.Query().Get("count"))
		w.Write([]byte(`{"status":"OK","result":[{"id":99,"contestId":1850,"creationTimeSeconds":1700000000,
			"problem":{"contestId":1850,"index":"C","name":"Word on the Paper","tags":["strings"]},
			"author":{"members":[{"handle":"bob"}]},"programmingLanguage":"GNU C++17","verdict":"OK"}]}`))
	}))
	defer srv.Close()

	rec := &logger.Recorder{}
	c := CodeforcesClient{Url: srv.URL, Handle: "bob", Client: srv.Client(), Log: rec}
	subs := c.Fetch(30)

	require.Len(t, subs, 1)
	assert.Equal(t, int64(99), subs[0].Id)
	assert.Equal(t, "C", subs[0].Problem.Index)
	assert.Equal(t, "bob", subs[0].Author.Members[0].Handle)
	assert.Equal(t, "OK", subs[0].Verdict)
	assert.Empty(t, rec.Messages("ERROR"))
}

func TestFetchFailuresYieldEmptyList(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"status":"FAILED","comment":"handle: User not found"}`))
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			rec := &logger.Recorder{}
			lc := LeetcodeClient{Url: srv.URL, User: "alice", Client: srv.Client(), Log: rec}
			cf := CodeforcesClient{Url: srv.URL, Handle: "bob", Client: srv.Client(), Log: rec}

			lcSubs := lc.Fetch(10)
			cfSubs := cf.Fetch(10)
			assert.NotNil(t, lcSubs)
			assert.Empty(t, lcSubs)
			assert.NotNil(t, cfSubs)
			assert.Empty(t, cfSubs)
			assert.Len(t, rec.Messages("ERROR"), 2)
		})
	}
}

func TestFetchTransportFailureYieldsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := &logger.Recorder{}
	lc := LeetcodeClient{Url: url, User: "alice", Log: rec}
	assert.Empty(t, lc.Fetch(10))
	require.Len(t, rec.Messages("ERROR"), 1)
	assert.Contains(t, rec.Messages("ERROR")[0], "leetcode:")
}

func TestCodeforcesNonOkStatusYieldsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"FAILED","result":[]}`))
	}))
	defer srv.Close()

	rec := &logger.Recorder{}
	cf := CodeforcesClient{Url: srv.URL, Handle: "bob", Client: srv.Client(), Log: rec}
	assert.Empty(t, cf.Fetch(10))
	assert.Equal(t, []string{"codeforces: api status FAILED"}, rec.Messages("ERROR"))
}

func TestLeetcodeTimestampAcceptsNumberOrString(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
	}{
		{"quoted", `"1700000000"`},
		{"bare number", `1700000000`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"recentAcSubmissionList":[
					{"id":"1","title":"Two Sum","titleSlug":"two-sum","timestamp":` + tt.timestamp + `}]}}`))
			}))
			defer srv.Close()

			rec := &logger.Recorder{}
			c := LeetcodeClient{Url: srv.URL, User: "alice", Client: srv.Client(), Log: rec}
			subs := c.Fetch(10)

			require.Len(t, subs, 1)
			assert.Equal(t, model.EpochSecond(1700000000), subs[0].Timestamp)
			assert.Empty(t, rec.Messages("ERROR"))
		})
	}
}

func TestLeetcodeGraphqlErrorYieldsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"That user does not exist."}],"data":{"recentAcSubmissionList":null}}`))
	}))
	defer srv.Close()

	rec := &logger.Recorder{}
	lc := LeetcodeClient{Url: srv.URL, User: "ghost", Client: srv.Client(), Log: rec}
	assert.Empty(t, lc.Fetch(10))
	assert.Equal(t, []string{"leetcode: graphql error: That user does not exist."}, rec.Messages("ERROR"))
	assert.Equal(t, []string{"leetcode: fetching 10 submissions"}, rec.Messages("INFO"))
}
