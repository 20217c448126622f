// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ghactivity

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// ErrMissingField is reported by ParseEvent when an object lacks one of the
// fields every event must have.
var ErrMissingField = errors.New("missing required field")

// Parse parses a JSON array of GitHub event objects from src. Objects that do
// not have the required fields are skipped. Parse reports an error only if
// src as a whole is not an array, in which case it has concrete type
// [*StructureError].
//
// The caller must not modify src until Parse returns.
func Parse(src []byte) ([]Event, error) { return Parser{}.Parse(mem.B(src)) }

// ParseString is as Parse, but reads its input from a string.
func ParseString(src string) ([]Event, error) { return Parser{}.Parse(mem.S(src)) }

// A Parser converts the text of an event listing into events.
// A zero Parser is ready for use.
type Parser struct {
	// If non-nil, Skipped is called for each object that is discarded
	// because it could not be converted to an event, with a view of the
	// object text and the reason it was discarded.
	Skipped func(obj View, err error)
}

// Parse parses a JSON array of GitHub event objects from src, as the
// package-level Parse function does.
func (p Parser) Parse(src mem.RO) ([]Event, error) {
	objs, err := SplitArray(src)
	if err != nil {
		return nil, err
	}
	evts := make([]Event, 0, len(objs))
	for _, obj := range objs {
		evt, err := ParseEvent(obj)
		if err != nil {
			if p.Skipped != nil {
				p.Skipped(obj, err)
			}
			continue
		}
		evts = append(evts, evt)
	}
	return evts, nil
}

// ParseEvent converts the text of a single event object into an Event.
// The "type" field and the "name" field of the nested "repo" object are
// required; if either is missing, ParseEvent reports an error wrapping
// ErrMissingField. Missing payload fields are given default values.
func ParseEvent(obj View) (Event, error) {
	kind, ok := StringField(obj, "type")
	if !ok {
		return Event{}, missingField("type")
	}
	repo, ok := ObjectField(obj, "repo")
	if !ok {
		return Event{}, missingField("repo")
	}
	name, ok := StringField(repo, "name")
	if !ok {
		return Event{}, missingField("repo.name")
	}

	k := kind.String()
	evt := Event{Kind: k, Repo: name.String()}
	if parse, ok := payloadParsers[k]; ok {
		evt.Payload = parse(obj)
	} else {
		evt.Payload = Unrecognized{Kind: k}
	}
	return evt, nil
}

func missingField(name string) error { return fmt.Errorf("%w %q", ErrMissingField, name) }

// payloadParsers maps each recognized event kind to a function that
// constructs its payload from the complete event object.
var payloadParsers = map[string]func(obj View) Payload{
	"PushEvent": func(obj View) Payload {
		n, ok := UintField(payloadOf(obj), "size")
		if !ok {
			n = 1
		}
		return Push{Commits: n}
	},
	"IssuesEvent": func(obj View) Payload {
		return Issues{Action: stringOr(payloadOf(obj), "action", "unknown")}
	},
	"PullRequestEvent": func(obj View) Payload {
		return PullRequest{Action: stringOr(payloadOf(obj), "action", "unknown")}
	},
	"CreateEvent": func(obj View) Payload {
		return Create{RefType: stringOr(payloadOf(obj), "ref_type", "unknown")}
	},
	"DeleteEvent": func(obj View) Payload {
		return Delete{RefType: stringOr(payloadOf(obj), "ref_type", "unknown")}
	},
	"ReleaseEvent": func(obj View) Payload {
		return Release{Action: stringOr(payloadOf(obj), "action", "published")}
	},

	"WatchEvent":                    fixed(Watch{}),
	"ForkEvent":                     fixed(Fork{}),
	"IssueCommentEvent":             fixed(IssueComment{}),
	"PullRequestReviewCommentEvent": fixed(PullRequestReviewComment{}),
	"CommitCommentEvent":            fixed(CommitComment{}),
}

func fixed(p Payload) func(View) Payload { return func(View) Payload { return p } }

// payloadOf returns the "payload" object of obj, or an empty view if there
// is none, so that lookups in it find nothing.
func payloadOf(obj View) View {
	if p, ok := ObjectField(obj, "payload"); ok {
		return p
	}
	return obj.sub(0, 0)
}

func stringOr(obj View, key, dflt string) string {
	if v, ok := StringField(obj, key); ok {
		return v.String()
	}
	return dflt
}
