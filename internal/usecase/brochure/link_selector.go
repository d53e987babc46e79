package brochure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"company-brochure/internal/domain/entity"
	"company-brochure/internal/observability/metrics"
)

// LinkPolicy decides what happens to a selected URL that was not among the
// crawled links.
type LinkPolicy string

// Link policies.
const (
	// PolicyAccept keeps such URLs silently.
	PolicyAccept LinkPolicy = "accept"
	// PolicyFlag keeps them, marks them Suspect and logs them.
	PolicyFlag LinkPolicy = "flag"
	// PolicyReject drops them.
	PolicyReject LinkPolicy = "reject"
)

// ParseLinkPolicy maps a configuration value to a LinkPolicy.
func ParseLinkPolicy(s string) (LinkPolicy, error) {
	switch p := LinkPolicy(s); p {
	case PolicyAccept, PolicyFlag, PolicyReject:
		return p, nil
	case "":
		return PolicyFlag, nil
	default:
		return "", fmt.Errorf("unknown link policy %q", s)
	}
}

// selectionResponse is the JSON document the model is asked for.
type selectionResponse struct {
	Links []entity.RelevantLinkEntry `json:"links"`
}

// LinkSelector asks the model which discovered links belong in a brochure.
type LinkSelector struct {
	client  AIClient
	prompts PromptBuilder
	policy  LinkPolicy
	logger  *slog.Logger
}

// NewLinkSelector creates a LinkSelector. A nil prompts uses DefaultPrompts.
func NewLinkSelector(client AIClient, prompts PromptBuilder, policy LinkPolicy, logger *slog.Logger) *LinkSelector {
	if prompts == nil {
		prompts = DefaultPrompts{}
	}
	if policy == "" {
		policy = PolicyFlag
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkSelector{client: client, prompts: prompts, policy: policy, logger: logger}
}

// SelectRelevantLinks returns the links the model chose, in the model's
// order. A failed call or an unparsable reply yields an empty Selection
// with Err set.
func (s *LinkSelector) SelectRelevantLinks(ctx context.Context, baseURL string, links entity.LinkSet) entity.Selection {
	system := s.prompts.LinkSelectionSystemPrompt()
	user := s.prompts.LinkSelectionUserPrompt(baseURL, links.Links)

	reply, err := complete(ctx, s.client, system, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "link selection call failed",
			slog.String("base_url", baseURL),
			slog.Any("error", err))
		return entity.Selection{Entries: []entity.RelevantLinkEntry{}, Err: fmt.Errorf("%w: %w", ErrSelectionFailed, err)}
	}

	entries, err := parseSelection(reply)
	if err != nil {
		s.logger.ErrorContext(ctx, "link selection reply is not valid JSON",
			slog.String("base_url", baseURL),
			slog.Int("reply_length", len(reply)),
			slog.Any("error", err))
		return entity.Selection{Entries: []entity.RelevantLinkEntry{}, Err: err}
	}

	entries = s.applyPolicy(ctx, entries, links)

	s.logger.InfoContext(ctx, "relevant links selected",
		slog.String("base_url", baseURL),
		slog.Int("candidates", links.Len()),
		slog.Int("selected", len(entries)))
	return entity.Selection{Entries: entries}
}

// parseSelection decodes the whole reply and keeps entries that carry a URL.
func parseSelection(reply string) ([]entity.RelevantLinkEntry, error) {
	var resp selectionResponse
	if err := json.Unmarshal([]byte(reply), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSelection, err)
	}

	entries := make([]entity.RelevantLinkEntry, 0, len(resp.Links))
	for _, l := range resp.Links {
		if l.URL == "" {
			continue
		}
		entries = append(entries, entity.RelevantLinkEntry{Type: l.Type, URL: l.URL})
	}
	return entries, nil
}

func (s *LinkSelector) applyPolicy(ctx context.Context, entries []entity.RelevantLinkEntry, links entity.LinkSet) []entity.RelevantLinkEntry {
	if s.policy == PolicyAccept {
		return entries
	}

	kept := make([]entity.RelevantLinkEntry, 0, len(entries))
	suspect := 0
	for _, e := range entries {
		if links.Contains(e.URL) {
			kept = append(kept, e)
			continue
		}
		suspect++
		s.logger.WarnContext(ctx, "selected link was not crawled",
			slog.String("url", e.URL),
			slog.String("policy", string(s.policy)),
			slog.Any("error", entity.ErrSuspectLink))
		if s.policy == PolicyFlag {
			e.Suspect = true
			kept = append(kept, e)
		}
	}

	metrics.RecordSuspectLinks(string(s.policy), suspect)
	return kept
}
