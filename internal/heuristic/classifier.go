package heuristic

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/janasetu/janasetu/internal/model"
)

// compiledRule holds a compiled regex pattern with its rule metadata.
type compiledRule struct {
	regex *regexp.Regexp
	Rule
}

// Classifier evaluates the rule table against message text. It is immutable
// after construction and safe for concurrent use.
type Classifier struct {
	rules         []compiledRule
	priorityRules []struct {
		regex    *regexp.Regexp
		priority model.Priority
	}
}

// NewClassifier compiles the given rules into a classifier. Rules are
// sorted by priority, highest first.
func NewClassifier(rules []Rule) (*Classifier, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		regexStr := r.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %s: %w", r.Name, err)
		}

		compiled = append(compiled, compiledRule{Rule: r, regex: regex})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	c := &Classifier{rules: compiled}

	for _, pr := range defaultPriorityRules() {
		c.priorityRules = append(c.priorityRules, struct {
			regex    *regexp.Regexp
			priority model.Priority
		}{regexp.MustCompile("(?i)" + pr.Regex), pr.Priority})
	}

	return c, nil
}

// NewDefaultClassifier compiles the canonical rule set. The default rules
// are known-good, so compilation cannot fail.
func NewDefaultClassifier() *Classifier {
	c, err := NewClassifier(DefaultRules())
	if err != nil {
		panic(fmt.Sprintf("default rules failed to compile: %v", err))
	}
	return c
}

// Categorize assigns a category to the text. The first matching rule in
// priority order wins; general_inquiry is the fallback. Never errors.
func (c *Classifier) Categorize(text string) model.Category {
	for _, r := range c.rules {
		if r.regex.MatchString(text) {
			return r.Category
		}
	}
	return model.CategoryGeneralInquiry
}

// Priority scores the urgency of the text independently of category.
func (c *Classifier) Priority(text string) model.Priority {
	for _, pr := range c.priorityRules {
		if pr.regex.MatchString(text) {
			return pr.priority
		}
	}
	return model.PriorityMedium
}

// Classify runs both passes and returns a complete result. An emergency is
// always urgent, whatever the wording; a general inquiry with no urgency
// keyword is low rather than the medium fallback.
func (c *Classifier) Classify(text string) (model.Category, model.Priority) {
	category := c.Categorize(text)
	priority := c.Priority(text)
	switch {
	case category == model.CategoryEmergency:
		priority = model.PriorityUrgent
	case category == model.CategoryGeneralInquiry && priority == model.PriorityMedium:
		priority = model.PriorityLow
	}
	return category, priority
}
