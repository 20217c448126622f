// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package format renders GitHub activity events as human-readable text.
package format

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/creachadair/ghactivity"
)

// Event returns a one-line description of e, for example:
//
//	Pushed 3 commits to octocat/Hello-World
func Event(e ghactivity.Event) string {
	switch p := e.Payload.(type) {
	case ghactivity.Push:
		return fmt.Sprintf("Pushed %d %s to %s", p.Commits, plural(p.Commits, "commit"), e.Repo)
	case ghactivity.Issues:
		return fmt.Sprintf("%s an issue in %s", Capitalize(p.Action), e.Repo)
	case ghactivity.PullRequest:
		return fmt.Sprintf("%s a pull request in %s", Capitalize(p.Action), e.Repo)
	case ghactivity.Watch:
		return "Starred " + e.Repo
	case ghactivity.Fork:
		return "Forked " + e.Repo
	case ghactivity.Create:
		return fmt.Sprintf("Created a %s in %s", p.RefType, e.Repo)
	case ghactivity.Delete:
		return fmt.Sprintf("Deleted a %s in %s", p.RefType, e.Repo)
	case ghactivity.Release:
		return fmt.Sprintf("%s a release in %s", Capitalize(p.Action), e.Repo)
	case ghactivity.IssueComment:
		return "Commented on an issue in " + e.Repo
	case ghactivity.PullRequestReviewComment:
		return "Commented on a pull request in " + e.Repo
	case ghactivity.CommitComment:
		return "Commented on a commit in " + e.Repo
	default:
		return fmt.Sprintf("Performed %s in %s", e.Kind, e.Repo)
	}
}

// Write writes one line to w for each of evts, in order.
func Write(w io.Writer, evts []ghactivity.Event) error {
	for _, e := range evts {
		if _, err := fmt.Fprintf(w, "- %s\n", Event(e)); err != nil {
			return err
		}
	}
	return nil
}

// Header returns the heading printed above the events for user.
func Header(user string, n int) string {
	return fmt.Sprintf("Recent activity for '%s':\nFound %d %s", user, n, plural(uint64(n), "event"))
}

// NoEvents returns the message printed when user has no visible events.
func NoEvents(user string) string {
	return fmt.Sprintf(`No recent activity found for user '%s'
This could mean:
  - The user has no public activity in the last 90 days
  - The user doesn't exist
  - The user has made their activity private`, user)
}

// Capitalize returns s with its first rune in upper case.
func Capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func plural(n uint64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
