package models

import (
	"encoding/json"
	"fmt"
)

// PushEvent mirrors the GitHub push webhook payload.
// https://docs.github.com/en/webhooks/webhook-events-and-payloads#push
type PushEvent struct {
	// The SHA of the most recent commit on ref after the push.
	After string `json:"after"`

	BaseRef *string `json:"base_ref,omitempty"`

	// The SHA of the most recent commit on ref before the push.
	Before string `json:"before"`

	// Pushed commits, capped by GitHub at 2048 per delivery; anything beyond
	// that has to come from the Commits API.
	Commits []Commit `json:"commits"`

	// URL that shows the changes in this ref update.
	Compare string `json:"compare"`

	// Whether this push created the ref.
	Created bool `json:"created"`

	// Whether this push deleted the ref.
	Deleted bool `json:"deleted"`

	// Whether this push was a force push of the ref.
	Forced bool `json:"forced"`

	HeadCommit Commit `json:"head_commit"`

	Pusher Identity `json:"pusher"`

	// The full git ref that was pushed, e.g. refs/heads/main or
	// refs/tags/v3.14.1.
	Ref string `json:"ref"`

	// Passthrough blobs GitHub attaches to deliveries. The receiver never
	// inspects these, so they stay raw rather than being modelled.
	Repository   json.RawMessage `json:"repository"`
	Sender       json.RawMessage `json:"sender,omitempty"`
	Organization json.RawMessage `json:"organization,omitempty"`
	Installation json.RawMessage `json:"installation,omitempty"`
	Enterprise   json.RawMessage `json:"enterprise,omitempty"`
}

// Commit is one commit record inside a push delivery.
type Commit struct {
	ID      string `json:"id"`
	TreeID  string `json:"tree_id"`
	Message string `json:"message"`

	// The ISO 8601 timestamp of the commit.
	Timestamp string `json:"timestamp"`

	// URL that points to the commit API resource.
	URL string `json:"url"`

	// Whether this commit is distinct from any that have been pushed before.
	Distinct bool `json:"distinct"`

	Author    Identity `json:"author"`
	Committer Identity `json:"committer"`

	// Changed file paths, capped by GitHub at 3000 per commit.
	Added    []string `json:"added"`
	Modified []string `json:"modified,omitempty"`
	Removed  []string `json:"removed,omitempty"`
}

// Identity holds git author/committer/pusher metadata.
type Identity struct {
	Date     string  `json:"date"`
	Email    *string `json:"email,omitempty"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
}

// Raw mirrors of the wire structs. Required fields are pointers so an
// absent field is distinguishable from a zero value and rejected, the same
// way request payloads are nil-checked elsewhere before use.
type rawPushEvent struct {
	After        *string         `json:"after"`
	BaseRef      *string         `json:"base_ref"`
	Before       *string         `json:"before"`
	Commits      *[]rawCommit    `json:"commits"`
	Compare      *string         `json:"compare"`
	Created      *bool           `json:"created"`
	Deleted      *bool           `json:"deleted"`
	Forced       *bool           `json:"forced"`
	HeadCommit   *rawCommit      `json:"head_commit"`
	Pusher       *rawIdentity    `json:"pusher"`
	Ref          *string         `json:"ref"`
	Repository   json.RawMessage `json:"repository"`
	Sender       json.RawMessage `json:"sender"`
	Organization json.RawMessage `json:"organization"`
	Installation json.RawMessage `json:"installation"`
	Enterprise   json.RawMessage `json:"enterprise"`
}

type rawCommit struct {
	ID        *string      `json:"id"`
	TreeID    *string      `json:"tree_id"`
	Message   *string      `json:"message"`
	Timestamp *string      `json:"timestamp"`
	URL       *string      `json:"url"`
	Distinct  *bool        `json:"distinct"`
	Author    *rawIdentity `json:"author"`
	Committer *rawIdentity `json:"committer"`
	Added     *[]string    `json:"added"`
	Modified  []string     `json:"modified"`
	Removed   []string     `json:"removed"`
}

type rawIdentity struct {
	Date     *string `json:"date"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Username *string `json:"username"`
}

// DecodePushEvent strictly deserializes a push delivery body. A required
// field that is absent or of the wrong JSON type fails the decode instead
// of silently defaulting.
func DecodePushEvent(data []byte) (PushEvent, error) {
	var raw rawPushEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return PushEvent{}, err
	}

	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"after", raw.After != nil},
		{"before", raw.Before != nil},
		{"commits", raw.Commits != nil},
		{"compare", raw.Compare != nil},
		{"created", raw.Created != nil},
		{"deleted", raw.Deleted != nil},
		{"forced", raw.Forced != nil},
		{"head_commit", raw.HeadCommit != nil},
		{"pusher", raw.Pusher != nil},
		{"ref", raw.Ref != nil},
		{"repository", raw.Repository != nil},
	} {
		if !f.ok {
			return PushEvent{}, fmt.Errorf("push payload: missing required field %q", f.name)
		}
	}

	commits := make([]Commit, 0, len(*raw.Commits))
	for i, rc := range *raw.Commits {
		commit, err := rc.validate(fmt.Sprintf("commits[%d]", i))
		if err != nil {
			return PushEvent{}, err
		}
		commits = append(commits, commit)
	}

	headCommit, err := raw.HeadCommit.validate("head_commit")
	if err != nil {
		return PushEvent{}, err
	}

	pusher, err := raw.Pusher.validate("pusher")
	if err != nil {
		return PushEvent{}, err
	}

	return PushEvent{
		After:        *raw.After,
		BaseRef:      raw.BaseRef,
		Before:       *raw.Before,
		Commits:      commits,
		Compare:      *raw.Compare,
		Created:      *raw.Created,
		Deleted:      *raw.Deleted,
		Forced:       *raw.Forced,
		HeadCommit:   headCommit,
		Pusher:       pusher,
		Ref:          *raw.Ref,
		Repository:   raw.Repository,
		Sender:       raw.Sender,
		Organization: raw.Organization,
		Installation: raw.Installation,
		Enterprise:   raw.Enterprise,
	}, nil
}

func (rc rawCommit) validate(where string) (Commit, error) {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"id", rc.ID != nil},
		{"tree_id", rc.TreeID != nil},
		{"message", rc.Message != nil},
		{"timestamp", rc.Timestamp != nil},
		{"url", rc.URL != nil},
		{"distinct", rc.Distinct != nil},
		{"author", rc.Author != nil},
		{"committer", rc.Committer != nil},
		{"added", rc.Added != nil},
	} {
		if !f.ok {
			return Commit{}, fmt.Errorf("push payload: missing required field %q in %s", f.name, where)
		}
	}

	author, err := rc.Author.validate(where + ".author")
	if err != nil {
		return Commit{}, err
	}

	committer, err := rc.Committer.validate(where + ".committer")
	if err != nil {
		return Commit{}, err
	}

	return Commit{
		ID:        *rc.ID,
		TreeID:    *rc.TreeID,
		Message:   *rc.Message,
		Timestamp: *rc.Timestamp,
		URL:       *rc.URL,
		Distinct:  *rc.Distinct,
		Author:    author,
		Committer: committer,
		Added:     *rc.Added,
		Modified:  rc.Modified,
		Removed:   rc.Removed,
	}, nil
}

func (ri rawIdentity) validate(where string) (Identity, error) {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"date", ri.Date != nil},
		{"name", ri.Name != nil},
		{"username", ri.Username != nil},
	} {
		if !f.ok {
			return Identity{}, fmt.Errorf("push payload: missing required field %q in %s", f.name, where)
		}
	}

	return Identity{
		Date:     *ri.Date,
		Email:    ri.Email,
		Name:     *ri.Name,
		Username: *ri.Username,
	}, nil
}
