// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ghactivity extracts GitHub user activity events from the raw text
// of a GitHub "list events" API response.
//
// This is not a general JSON parser. It recognizes just enough structure to
// pull a fixed set of fields out of an array of event objects, scanning the
// input text directly rather than building a syntax tree.
//
// # Parsing
//
// Call Parse with the complete response body:
//
//	evts, err := ghactivity.Parse(body)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	for _, e := range evts {
//	   log.Printf("%s in %s", e.Kind, e.Repo)
//	}
//
// Parse reports an error only when the input as a whole is not a JSON array;
// such errors have concrete type [*StructureError]. An individual object that
// lacks a "type" field or a "repo.name" field is silently omitted from the
// result. To observe omitted objects, use a Parser with a Skipped hook:
//
//	p := ghactivity.Parser{Skipped: func(obj ghactivity.View, err error) {
//	   log.Printf("Skipped object at %d: %v", obj.Pos, err)
//	}}
//	evts, err := p.Parse(mem.B(body))
//
// # Payloads
//
// The Payload of an Event is selected by its Kind:
//
//	Kind                          | Payload                  | Default
//	----------------------------- | ------------------------ | -----------
//	PushEvent                     | Push                     | 1 commit
//	IssuesEvent                   | Issues                   | "unknown"
//	PullRequestEvent              | PullRequest              | "unknown"
//	CreateEvent                   | Create                   | "unknown"
//	DeleteEvent                   | Delete                   | "unknown"
//	ReleaseEvent                  | Release                  | "published"
//	WatchEvent                    | Watch                    | --
//	ForkEvent                     | Fork                     | --
//	IssueCommentEvent             | IssueComment             | --
//	PullRequestReviewCommentEvent | PullRequestReviewComment | --
//	CommitCommentEvent            | CommitComment            | --
//	(anything else)               | Unrecognized             | --
//
// # Field extraction
//
// The building blocks of the parser are exported for use on other inputs of
// similar shape. SplitArray divides an array into views of its objects, and
// StringField, UintField, ObjectField and ArrayLen extract member values from
// a view. A View refers to the original input without copying it; call its
// String method to obtain an independent copy of the text.
//
// Field values are located by searching for the literal text "key": in the
// object, so a key must be written with no space before its colon. String
// values are returned as written, with escape sequences undecoded. Braces and
// brackets inside string values are ignored when matching nested structure.
package ghactivity
