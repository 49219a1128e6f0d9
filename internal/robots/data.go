package robots

import (
	"net/url"
	"strings"
	"time"
)

// Permission modeling

type pathRule struct {
	prefix string
}

type ruleSet struct {
	host string

	// The user-agent these rules apply to (resolved, not raw)
	userAgent string

	// Path-based rules, evaluated in order of precedence
	allowRules    []pathRule
	disallowRules []pathRule

	// Metadata / observability
	fetchedAt time.Time
	sourceURL string

	// matchedGroup indicates if a user-agent group was matched in robots.txt
	// This is false when no group matches (not even wildcard *)
	matchedGroup bool

	// hasGroups indicates if the robots.txt file had any user-agent groups at all
	// This is false when the response had no groups (e.g., 404 or empty file)
	hasGroups bool
}

type DecisionReason string

const (
	AllowedByRobots     DecisionReason = "allowed_by_robots"
	DisallowedByRobots  DecisionReason = "disallowed_by_robots"
	UserAgentNotMatched DecisionReason = "user_agent_not_matched"
	EmptyRuleSet        DecisionReason = "empty_rule_set"
	NoMatchingRules     DecisionReason = "no_matching_rules"
)

type Decision struct {
	Url url.URL

	Allowed bool

	// Why this decision was made (for logging/debugging)
	Reason DecisionReason
}

// Evaluate decides whether target may be fetched under this rule set.
// The longest matching prefix wins; a tie between an allow and a
// disallow rule of equal length favors the allow rule.
func (r ruleSet) Evaluate(target url.URL) Decision {
	if !r.hasGroups {
		return Decision{Url: target, Allowed: true, Reason: EmptyRuleSet}
	}
	if !r.matchedGroup {
		return Decision{Url: target, Allowed: true, Reason: UserAgentNotMatched}
	}

	path := target.Path
	if path == "" {
		path = "/"
	}

	bestLen := -1
	allowed := true
	reason := NoMatchingRules

	for _, rule := range r.disallowRules {
		if matchesPrefix(path, rule.prefix) && len(rule.prefix) > bestLen {
			bestLen = len(rule.prefix)
			allowed = false
			reason = DisallowedByRobots
		}
	}
	for _, rule := range r.allowRules {
		if matchesPrefix(path, rule.prefix) && len(rule.prefix) >= bestLen {
			bestLen = len(rule.prefix)
			allowed = true
			reason = AllowedByRobots
		}
	}

	if bestLen == -1 {
		return Decision{Url: target, Allowed: true, Reason: NoMatchingRules}
	}
	return Decision{Url: target, Allowed: allowed, Reason: reason}
}

func matchesPrefix(path, prefix string) bool {
	return strings.HasPrefix(path, prefix)
}
