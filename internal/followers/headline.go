package followers

import (
	"errors"
	"fmt"

	"github.com/ForumApp/user-service/internal/i18n"
)

// ErrMissingMessage means a required catalog key is absent from the
// supplied translator. Catalogs are validated at load, so hitting this
// at render time is a wiring bug.
var ErrMissingMessage = errors.New("message key missing from catalog")

// Translator supplies locale-resolved message templates. The engine
// treats them as opaque strings with at most one {count} and, for
// third-person forms, one {username} placeholder.
type Translator interface {
	Message(key string) (string, bool)
}

// Viewer is the requesting user, reduced to the one fact the engine
// needs: whether they are viewing their own follower list.
type Viewer struct {
	IsProfileOwner bool
}

// Profile is the user whose followers are listed.
type Profile struct {
	Username        string
	DisplayUsername string
}

// listVariant enumerates the four presentation cases explicitly so
// each can be exercised on its own.
type listVariant int

const (
	ownerEmpty listVariant = iota
	ownerListed
	visitorEmpty
	visitorListed
)

func selectVariant(viewer Viewer, total int) listVariant {
	if viewer.IsProfileOwner {
		if total == 0 {
			return ownerEmpty
		}
		return ownerListed
	}
	if total == 0 {
		return visitorEmpty
	}
	return visitorListed
}

// ResolveHeadline renders the follower-count narration in the voice
// matching the viewer: first person for the profile owner, third
// person otherwise.
func ResolveHeadline(viewer Viewer, profile Profile, count int64, t Translator) (string, error) {
	if count < 0 {
		return "", i18n.ErrNegativeCount
	}

	var singularKey, pluralKey string
	switch selectVariant(viewer, int(count)) {
	case ownerEmpty, ownerListed:
		singularKey = "followers.headline_own_single"
		pluralKey = "followers.headline_own_plural"
	case visitorEmpty, visitorListed:
		singularKey = "followers.headline_other_single"
		pluralKey = "followers.headline_other_plural"
	}

	templates, err := lookupTemplates(t, singularKey, pluralKey)
	if err != nil {
		return "", err
	}

	headline, err := i18n.FormatCount(count, templates)
	if err != nil {
		return "", err
	}

	if !viewer.IsProfileOwner {
		headline = i18n.Bind(headline, "username", profile.DisplayUsername)
	}

	return headline, nil
}

// ResolveEmptyMessage renders the fixed no-followers string for the
// viewer's voice. It carries no numeric placeholder and is used only
// when the follower count is zero.
func ResolveEmptyMessage(viewer Viewer, profile Profile, t Translator) (string, error) {
	if viewer.IsProfileOwner {
		return lookupMessage(t, "followers.empty_own")
	}

	message, err := lookupMessage(t, "followers.empty_other")
	if err != nil {
		return "", err
	}

	return i18n.Bind(message, "username", profile.DisplayUsername), nil
}

func lookupMessage(t Translator, key string) (string, error) {
	message, ok := t.Message(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingMessage, key)
	}
	return message, nil
}

func lookupTemplates(t Translator, singularKey string, pluralKey string) (i18n.PluralTemplates, error) {
	singular, err := lookupMessage(t, singularKey)
	if err != nil {
		return i18n.PluralTemplates{}, err
	}
	plural, err := lookupMessage(t, pluralKey)
	if err != nil {
		return i18n.PluralTemplates{}, err
	}
	return i18n.PluralTemplates{Singular: singular, Plural: plural}, nil
}
