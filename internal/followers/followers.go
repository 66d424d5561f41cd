// Package followers renders the follower listing of a user profile:
// a viewer-relative headline, per-follower profile cards with
// pluralized counters, and rows batched for a two-column grid.
//
// The package is pure presentation. All data (profile, viewer flag,
// follower records, message catalog) must be resolved by callers
// before invocation; no I/O happens here and concurrent calls for
// unrelated requests need no coordination.
package followers

import (
	"time"

	"github.com/ForumApp/user-service/internal/i18n"
)

// GridWidth is the follower grid's column count.
const GridWidth = 2

// Record is one follower of the profile, fully resolved upstream:
// URLs already generated, counters already aggregated, page already
// cut. Immutable for the duration of rendering.
type Record struct {
	Username     string
	ProfileURL   string
	AvatarURL    string
	Title        *string
	RankCSSClass *string
	JoinedOn     time.Time
	Posts        int64
	Threads      int64
	Followers    int64
}

// Card is a render-ready follower: the record plus its counter labels,
// formatted for the translator's locale at render time.
type Card struct {
	Record
	JoinedLabel    string
	PostsLabel     string
	ThreadsLabel   string
	FollowersLabel string
}

// ListResult is the renderable follower listing. Rows is empty iff
// TotalCount is zero; every row has GridWidth cards except possibly
// the last, which holds one card only when TotalCount is odd.
// EmptyMessage is set only when TotalCount is zero.
type ListResult struct {
	TotalCount   int
	Rows         [][]Card
	Headline     string
	EmptyMessage *string
}

// Render composes the follower listing for one request. It either
// returns a complete result or fails atomically before any output is
// constructed.
func Render(viewer Viewer, profile Profile, records []Record, t Translator) (*ListResult, error) {
	total := len(records)

	headline, err := ResolveHeadline(viewer, profile, int64(total), t)
	if err != nil {
		return nil, err
	}

	switch selectVariant(viewer, total) {
	case ownerEmpty, visitorEmpty:
		emptyMessage, err := ResolveEmptyMessage(viewer, profile, t)
		if err != nil {
			return nil, err
		}
		return &ListResult{
			TotalCount: 0,
			Headline: headline,
			EmptyMessage: &emptyMessage,
		}, nil
	}

	cards := make([]Card, 0, total)
	for _, record := range records {
		card, err := newCard(record, t)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	rows, err := Batch(cards, GridWidth)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		TotalCount: total,
		Rows: rows,
		Headline: headline,
	}, nil
}

func newCard(record Record, t Translator) (Card, error) {
	joinedTemplate, err := lookupMessage(t, "followers.joined_on")
	if err != nil {
		return Card{}, err
	}
	joinedLabel := i18n.Bind(joinedTemplate, "date", record.JoinedOn.Format("Jan 2, 2006"))

	postsLabel, err := countLabel(t, record.Posts, "followers.posts_single", "followers.posts_plural")
	if err != nil {
		return Card{}, err
	}
	threadsLabel, err := countLabel(t, record.Threads, "followers.threads_single", "followers.threads_plural")
	if err != nil {
		return Card{}, err
	}
	followersLabel, err := countLabel(t, record.Followers, "followers.followers_single", "followers.followers_plural")
	if err != nil {
		return Card{}, err
	}

	return Card{
		Record: record,
		JoinedLabel: joinedLabel,
		PostsLabel: postsLabel,
		ThreadsLabel: threadsLabel,
		FollowersLabel: followersLabel,
	}, nil
}

func countLabel(t Translator, count int64, singularKey string, pluralKey string) (string, error) {
	templates, err := lookupTemplates(t, singularKey, pluralKey)
	if err != nil {
		return "", err
	}
	return i18n.FormatCount(count, templates)
}
