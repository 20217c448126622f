// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ghactivity

// An Event is a single entry of a GitHub user activity listing.
type Event struct {
	Kind    string  // the event type, e.g. "PushEvent"
	Repo    string  // the full name of the repository, e.g. "owner/name"
	Payload Payload // type-specific data, selected by Kind
}

// A Payload carries the type-specific data of an Event. The concrete type of
// a Payload is one of the types defined in this package; a kind that is not
// otherwise recognized is represented by Unrecognized.
type Payload interface{ isPayload() }

// Push is the payload of a PushEvent.
type Push struct {
	Commits uint64 // the number of commits pushed
}

// Issues is the payload of an IssuesEvent.
type Issues struct {
	Action string // e.g. "opened", "closed", "reopened"
}

// PullRequest is the payload of a PullRequestEvent.
type PullRequest struct {
	Action string // e.g. "opened", "closed"
}

// Watch is the payload of a WatchEvent (starring a repository).
type Watch struct{}

// Fork is the payload of a ForkEvent.
type Fork struct{}

// Create is the payload of a CreateEvent.
type Create struct {
	RefType string // "branch", "tag", or "repository"
}

// Delete is the payload of a DeleteEvent.
type Delete struct {
	RefType string // "branch" or "tag"
}

// Release is the payload of a ReleaseEvent.
type Release struct {
	Action string // e.g. "published"
}

// IssueComment is the payload of an IssueCommentEvent.
type IssueComment struct{}

// PullRequestReviewComment is the payload of a PullRequestReviewCommentEvent.
type PullRequestReviewComment struct{}

// CommitComment is the payload of a CommitCommentEvent.
type CommitComment struct{}

// Unrecognized is the payload of an event whose kind is not one of the kinds
// listed above.
type Unrecognized struct {
	Kind string // the original event type
}

func (Push) isPayload()                     {}
func (Issues) isPayload()                   {}
func (PullRequest) isPayload()              {}
func (Watch) isPayload()                    {}
func (Fork) isPayload()                     {}
func (Create) isPayload()                   {}
func (Delete) isPayload()                   {}
func (Release) isPayload()                  {}
func (IssueComment) isPayload()             {}
func (PullRequestReviewComment) isPayload() {}
func (CommitComment) isPayload()            {}
func (Unrecognized) isPayload()             {}
