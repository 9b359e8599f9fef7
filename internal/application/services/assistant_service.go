package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/entities"
	"github.com/lifelinecare/hospitalfinder/backend/internal/domain/repositories"
	apperrors "github.com/lifelinecare/hospitalfinder/backend/pkg/errors"
)

// GuidanceRule maps emergency keywords to first-aid advice and,
// optionally, a condition id used to recommend a hospital.
type GuidanceRule struct {
	ID          string   `json:"id"`
	Keywords    []string `json:"keywords"`
	ConditionID string   `json:"condition_id,omitempty"`
	Advice      string   `json:"advice"`
}

type assistantRulesFile struct {
	Fallback string         `json:"fallback"`
	Rules    []GuidanceRule `json:"rules"`
}

// AssistantReply is the assistant's answer to one user message
type AssistantReply struct {
	MessageID      string                 `json:"message_id"`
	Reply          string                 `json:"reply"`
	Recommendation *entities.ScoredResult `json:"recommendation,omitempty"`
}

// AssistantService answers free-text emergency messages with canned
// first-aid guidance plus a live hospital recommendation from the
// discovery pipeline. Matching is ordered keyword containment, not
// natural-language understanding.
type AssistantService struct {
	rules      []GuidanceRule
	fallback   string
	conditions repositories.ConditionCatalog
	discovery  *DiscoveryService
}

// NewAssistantService loads guidance rules from the config file
func NewAssistantService(rulesPath string, conditions repositories.ConditionCatalog, discovery *DiscoveryService) (*AssistantService, error) {
	data, err := os.ReadFile(rulesPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to read assistant rules", err)
	}

	var file assistantRulesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewConfigurationError("failed to parse assistant rules", err)
	}
	if len(file.Rules) == 0 {
		return nil, apperrors.NewConfigurationError("assistant rules file contains no rules", nil)
	}

	return &AssistantService{
		rules:      file.Rules,
		fallback:   file.Fallback,
		conditions: conditions,
		discovery:  discovery,
	}, nil
}

// Message answers a single user message. loc may be nil; the
// recommendation then comes from the default region.
func (s *AssistantService) Message(ctx context.Context, loc *entities.Location, text string) (*AssistantReply, error) {
	reply := &AssistantReply{MessageID: uuid.New().String()}

	rule := s.match(text)
	if rule == nil {
		reply.Reply = s.fallback
		return reply, nil
	}

	reply.Reply = rule.Advice

	if rule.ConditionID != "" {
		cond := s.conditions.ByID(rule.ConditionID)
		if cond != nil {
			res, err := s.discovery.Discover(ctx, loc, entities.SearchCriteria{
				Condition: cond,
				SortKey:   entities.SortByChance,
			})
			if err == nil && len(res.Results) > 0 {
				top := res.Results[0]
				reply.Recommendation = &top
				reply.Reply = fmt.Sprintf("%s %s (%.1f km) has %s available now with a %d%% admission chance.",
					rule.Advice, top.Hospital.Name, top.Hospital.DistanceValue,
					strings.Join(cond.Specialties, "/"), top.AdmissionChance)
			}
		}
	}

	return reply, nil
}

// match returns the first rule with a keyword contained in the message
func (s *AssistantService) match(text string) *GuidanceRule {
	lower := strings.ToLower(text)
	for i := range s.rules {
		for _, kw := range s.rules[i].Keywords {
			if strings.Contains(lower, kw) {
				return &s.rules[i]
			}
		}
	}
	return nil
}
