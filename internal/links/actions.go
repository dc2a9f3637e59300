// Package links derives the external actions an org offers and hands
// their URLs to the platform.
package links

import (
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/trail-guidebook/internal/types"
)

// ActionKind names an external action.
type ActionKind string

const (
	ActionWebsite ActionKind = "website"
	ActionSocial  ActionKind = "social"
)

// Action is one link an org exposes, ready to hand to an Opener.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Title string     `json:"title"`
	URL   string     `json:"url"`
}

var validate = validator.New()

// ActionsFor returns the website action followed by the social action,
// each only when the org has a well-formed absolute http(s) URL for it.
// A missing or malformed URL drops the action; it is never replaced by
// a default.
func ActionsFor(org *types.Org) []Action {
	if org == nil {
		return nil
	}
	var actions []Action
	if u, ok := usable(org.Website); ok {
		actions = append(actions, Action{Kind: ActionWebsite, Title: "官網", URL: u})
	}
	if u, ok := usable(org.Facebook); ok {
		actions = append(actions, Action{Kind: ActionSocial, Title: "社群", URL: u})
	}
	return actions
}

// Find returns the org's action of the given kind.
func Find(org *types.Org, kind ActionKind) (Action, bool) {
	for _, a := range ActionsFor(org) {
		if a.Kind == kind {
			return a, true
		}
	}
	return Action{}, false
}

// IsOpenable reports whether raw is an absolute http or https URL.
func IsOpenable(raw string) bool {
	return validate.Var(raw, "required,http_url") == nil
}

func usable(raw *string) (string, bool) {
	if raw == nil || !IsOpenable(*raw) {
		return "", false
	}
	return *raw, true
}
