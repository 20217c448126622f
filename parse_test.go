// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ghactivity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/ghactivity"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

func TestSplitArray(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{`[]`, nil, false},
		{"  [ \n\t ]\n", nil, false},
		{"\v[]", nil, false},
		{"\u00a0[{\"a\":1}]\u3000", []string{`{"a":1}`}, false},
		{`[{}]`, []string{`{}`}, false},
		{`[ {"a":1} , {"b":{"c":2}} ]`, []string{`{"a":1}`, `{"b":{"c":2}}`}, false},
		{"[\n  {\"a\": 1},\n  {\"b\": 2}\n]", []string{`{"a": 1}`, `{"b": 2}`}, false},
		{`[1, "x", {"a":1}, null]`, []string{`{"a":1}`}, false},
		{`[{"a":1}, {"b":2`, nil, true}, // no closing bracket
		{`[{"a":1}, {"b":2]`, []string{`{"a":1}`}, false},
		{`[{"s":"}{"},{"t":"\"}"}]`, []string{`{"s":"}{"}`, `{"t":"\"}"}`}, false},
		{`["{", {"a":1}]`, []string{`{"a":1}`}, false},
	}
	for _, test := range tests {
		objs, err := ghactivity.SplitArray(mem.S(test.input))
		if gotErr := err != nil; gotErr != test.wantErr {
			t.Errorf("SplitArray(%#q): got error %v, want error %v", test.input, err, test.wantErr)
			continue
		}
		var got []string
		for _, obj := range objs {
			got = append(got, obj.String())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("SplitArray(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestSplitArray_structure(t *testing.T) {
	tests := []string{
		"", "   ", "[", "]", "{}", `{"a":[]}`, "[}", "{]", "x[]", "[]x", `"[]"`,
	}
	for _, input := range tests {
		objs, err := ghactivity.SplitArray(mem.S(input))
		var serr *ghactivity.StructureError
		if !errors.As(err, &serr) {
			t.Errorf("SplitArray(%#q): got (%d objects, %v), want *StructureError", input, len(objs), err)
		} else {
			t.Logf("SplitArray(%#q): got expected error: %v", input, err)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ghactivity.Event
	}{
		{"Empty", `[]`, []ghactivity.Event{}},
		{"EmptySpaced", " \n [ \n ] \n", []ghactivity.Event{}},

		{"Push", `[{"type":"PushEvent","repo":{"name":"a/b"},"payload":{"size":3}}]`, []ghactivity.Event{
			{Kind: "PushEvent", Repo: "a/b", Payload: ghactivity.Push{Commits: 3}},
		}},
		{"PushDefault", `[{"type":"PushEvent","repo":{"name":"a/b"}}]`, []ghactivity.Event{
			{Kind: "PushEvent", Repo: "a/b", Payload: ghactivity.Push{Commits: 1}},
		}},
		{"PushNoSize", `[{"type":"PushEvent","repo":{"name":"a/b"},"payload":{"ref":"main"}}]`, []ghactivity.Event{
			{Kind: "PushEvent", Repo: "a/b", Payload: ghactivity.Push{Commits: 1}},
		}},
		{"Watch", `[{"type":"WatchEvent","repo":{"name":"a/b"}}]`, []ghactivity.Event{
			{Kind: "WatchEvent", Repo: "a/b", Payload: ghactivity.Watch{}},
		}},
		{"NoType", `[{"repo":{"name":"a/b"}}]`, []ghactivity.Event{}},
		{"NoRepo", `[{"type":"ForkEvent"}]`, []ghactivity.Event{}},
		{"NoRepoName", `[{"type":"ForkEvent","repo":{"id":1}}]`, []ghactivity.Event{}},
		{"RepoNotObject", `[{"type":"ForkEvent","repo":"a/b"}]`, []ghactivity.Event{}},

		{"Unknown", `[{"type":"GollumEvent","repo":{"name":"w/iki"},"payload":{"pages":[]}}]`, []ghactivity.Event{
			{Kind: "GollumEvent", Repo: "w/iki", Payload: ghactivity.Unrecognized{Kind: "GollumEvent"}},
		}},

		{"SkipAndContinue", `[
  {"repo":{"name":"bad/one"}},
  {"type":"ForkEvent","repo":{"name":"good/one"}},
  {"type":"IssuesEvent"},
  {"type":"IssuesEvent","repo":{"name":"good/two"},"payload":{"action":"closed"}}
]`, []ghactivity.Event{
			{Kind: "ForkEvent", Repo: "good/one", Payload: ghactivity.Fork{}},
			{Kind: "IssuesEvent", Repo: "good/two", Payload: ghactivity.Issues{Action: "closed"}},
		}},

		{"AllKinds", `[
{"type":"IssuesEvent","repo":{"name":"r/1"},"payload":{"action":"opened"}},
{"type":"IssuesEvent","repo":{"name":"r/2"}},
{"type":"PullRequestEvent","repo":{"name":"r/3"},"payload":{"action":"closed","number":4}},
{"type":"PullRequestEvent","repo":{"name":"r/4"},"payload":{}},
{"type":"CreateEvent","repo":{"name":"r/5"},"payload":{"ref":"v1","ref_type":"tag"}},
{"type":"CreateEvent","repo":{"name":"r/6"}},
{"type":"DeleteEvent","repo":{"name":"r/7"},"payload":{"ref_type":"branch"}},
{"type":"DeleteEvent","repo":{"name":"r/8"}},
{"type":"ReleaseEvent","repo":{"name":"r/9"},"payload":{"action":"edited"}},
{"type":"ReleaseEvent","repo":{"name":"r/10"}},
{"type":"IssueCommentEvent","repo":{"name":"r/11"},"payload":{"action":"created"}},
{"type":"PullRequestReviewCommentEvent","repo":{"name":"r/12"}},
{"type":"CommitCommentEvent","repo":{"name":"r/13"}}
]`, []ghactivity.Event{
			{Kind: "IssuesEvent", Repo: "r/1", Payload: ghactivity.Issues{Action: "opened"}},
			{Kind: "IssuesEvent", Repo: "r/2", Payload: ghactivity.Issues{Action: "unknown"}},
			{Kind: "PullRequestEvent", Repo: "r/3", Payload: ghactivity.PullRequest{Action: "closed"}},
			{Kind: "PullRequestEvent", Repo: "r/4", Payload: ghactivity.PullRequest{Action: "unknown"}},
			{Kind: "CreateEvent", Repo: "r/5", Payload: ghactivity.Create{RefType: "tag"}},
			{Kind: "CreateEvent", Repo: "r/6", Payload: ghactivity.Create{RefType: "unknown"}},
			{Kind: "DeleteEvent", Repo: "r/7", Payload: ghactivity.Delete{RefType: "branch"}},
			{Kind: "DeleteEvent", Repo: "r/8", Payload: ghactivity.Delete{RefType: "unknown"}},
			{Kind: "ReleaseEvent", Repo: "r/9", Payload: ghactivity.Release{Action: "edited"}},
			{Kind: "ReleaseEvent", Repo: "r/10", Payload: ghactivity.Release{Action: "published"}},
			{Kind: "IssueCommentEvent", Repo: "r/11", Payload: ghactivity.IssueComment{}},
			{Kind: "PullRequestReviewCommentEvent", Repo: "r/12", Payload: ghactivity.PullRequestReviewComment{}},
			{Kind: "CommitCommentEvent", Repo: "r/13", Payload: ghactivity.CommitComment{}},
		}},

		// A brace in a string value must not throw off object matching.
		{"BraceInString", `[
{"type":"CreateEvent","repo":{"name":"a/b"},"payload":{"description":"uses { and }}","ref_type":"repository"}},
{"type":"WatchEvent","repo":{"name":"c/d"}}
]`, []ghactivity.Event{
			{Kind: "CreateEvent", Repo: "a/b", Payload: ghactivity.Create{RefType: "repository"}},
			{Kind: "WatchEvent", Repo: "c/d", Payload: ghactivity.Watch{}},
		}},

		// Escapes in values are not decoded.
		{"EscapedName", `[{"type":"ForkEvent","repo":{"name":"a\"b"}}]`, []ghactivity.Event{
			{Kind: "ForkEvent", Repo: `a\"b`, Payload: ghactivity.Fork{}},
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ghactivity.ParseString(test.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse %#q: (-want, +got)\n%s", test.input, diff)
			}
		})
	}
}

func TestParse_structureError(t *testing.T) {
	for _, input := range []string{``, `{"type":"PushEvent"}`, `[{"type":"PushEvent"}`, `null`} {
		evts, err := ghactivity.Parse([]byte(input))
		var serr *ghactivity.StructureError
		if !errors.As(err, &serr) {
			t.Errorf("Parse(%#q): got (%v, %v), want *StructureError", input, evts, err)
		}
		if evts != nil {
			t.Errorf("Parse(%#q): got %d events with error, want none", input, len(evts))
		}
	}
}

func TestParser_Skipped(t *testing.T) {
	const input = `[
  {"type":"WatchEvent","repo":{"name":"a/b"}},
  {"repo":{"name":"c/d"}},
  {"type":"WatchEvent","repo":{}},
  {"type":"WatchEvent"}
]`
	type skip struct {
		Text string
		Pos  int
	}
	var skipped []skip
	var errs []error
	p := ghactivity.Parser{Skipped: func(obj ghactivity.View, err error) {
		skipped = append(skipped, skip{obj.String(), obj.Pos})
		errs = append(errs, err)
	}}
	evts, err := p.Parse(mem.S(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(evts) != 1 {
		t.Errorf("Parse: got %d events, want 1", len(evts))
	}

	want := []skip{
		{`{"repo":{"name":"c/d"}}`, strings.Index(input, `{"repo"`)},
		{`{"type":"WatchEvent","repo":{}}`, strings.Index(input, `{"type":"WatchEvent","repo":{}}`)},
		{`{"type":"WatchEvent"}`, strings.LastIndex(input, `{"type"`)},
	}
	if diff := cmp.Diff(want, skipped); diff != "" {
		t.Errorf("Skipped objects: (-want, +got)\n%s", diff)
	}
	for i, err := range errs {
		if !errors.Is(err, ghactivity.ErrMissingField) {
			t.Errorf("Skip %d: got error %v, want %v", i+1, err, ghactivity.ErrMissingField)
		}
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		input string
		want  string // error text, or "" for success
	}{
		{`{"type":"WatchEvent","repo":{"name":"a/b"}}`, ""},
		{`{"repo":{"name":"a/b"}}`, `missing required field "type"`},
		{`{"type":"WatchEvent"}`, `missing required field "repo"`},
		{`{"type":"WatchEvent","repo":{"url":"x"}}`, `missing required field "repo.name"`},
		{`{"type":1,"repo":{"name":"a/b"}}`, `missing required field "type"`},
	}
	for _, test := range tests {
		_, err := ghactivity.ParseEvent(view(test.input))
		var got string
		if err != nil {
			got = err.Error()
		}
		if got != test.want {
			t.Errorf("ParseEvent(%#q): got error %q, want %q", test.input, got, test.want)
		}
	}
}

func TestParse_githubShape(t *testing.T) {
	// An abbreviated response in the format served by the GitHub API.
	const input = `[
  {
    "id": "45678901234",
    "type": "PushEvent",
    "actor": {
      "id": 1024025,
      "login": "octocat",
      "display_login": "octocat",
      "url": "https://api.github.com/users/octocat"
    },
    "repo": {
      "id": 1296269,
      "name": "octocat/Hello-World",
      "url": "https://api.github.com/repos/octocat/Hello-World"
    },
    "payload": {
      "repository_id": 1296269,
      "push_id": 21016547203,
      "size": 2,
      "distinct_size": 2,
      "ref": "refs/heads/main",
      "commits": [
        {"sha": "6dcb09b", "message": "Fix {bracket} parsing", "distinct": true},
        {"sha": "7a3e1f0", "message": "Update README", "distinct": true}
      ]
    },
    "public": true,
    "created_at": "2026-09-30T12:00:00Z"
  },
  {
    "id": "45678901235",
    "type": "PullRequestEvent",
    "actor": {"id": 1024025, "login": "octocat"},
    "repo": {"id": 1296270, "name": "octocat/Spoon-Knife"},
    "payload": {
      "action": "opened",
      "number": 12,
      "pull_request": {"title": "Add feature", "state": "open"}
    },
    "public": true
  }
]`
	got, err := ghactivity.ParseString(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []ghactivity.Event{
		{Kind: "PushEvent", Repo: "octocat/Hello-World", Payload: ghactivity.Push{Commits: 2}},
		{Kind: "PullRequestEvent", Repo: "octocat/Spoon-Knife", Payload: ghactivity.PullRequest{Action: "opened"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse: (-want, +got)\n%s", diff)
	}

	// The commits array is available to the general-purpose extractors.
	objs, err := ghactivity.SplitArray(mem.S(input))
	if err != nil {
		t.Fatalf("SplitArray failed: %v", err)
	}
	payload, ok := ghactivity.ObjectField(objs[0], "payload")
	if !ok {
		t.Fatal("ObjectField: payload not found")
	}
	if n, ok := ghactivity.ArrayLen(payload, "commits"); !ok || n != 2 {
		t.Errorf("ArrayLen(commits): got (%d, %v), want (2, true)", n, ok)
	}
}
