package srs

import (
	"fmt"

	"github.com/masddffee/FocusFlow-app-sub005/internal/domain"
)

// ReviewTemplate names one of the four review-task styles.
type ReviewTemplate string

// The available review templates, in round-robin order.
const (
	TemplateRecall      ReviewTemplate = "recall"
	TemplatePractice    ReviewTemplate = "practice"
	TemplateApplication ReviewTemplate = "application"
	TemplateSynthesis   ReviewTemplate = "synthesis"
)

// templateOrder fixes the round-robin cycle.
var templateOrder = []ReviewTemplate{
	TemplateRecall,
	TemplatePractice,
	TemplateApplication,
	TemplateSynthesis,
}

// Title renders the review task title for the original item's title.
func (t ReviewTemplate) Title(itemTitle string) string {
	switch t {
	case TemplatePractice:
		return fmt.Sprintf("Practice: %s", itemTitle)
	case TemplateApplication:
		return fmt.Sprintf("Apply: %s", itemTitle)
	case TemplateSynthesis:
		return fmt.Sprintf("Connect: %s", itemTitle)
	default:
		return fmt.Sprintf("Recall: %s", itemTitle)
	}
}

// Description renders the fixed review-task wording for the template.
func (t ReviewTemplate) Description(itemTitle string) string {
	switch t {
	case TemplatePractice:
		return fmt.Sprintf("Work through an exercise that uses %q without looking at your notes, then check the result.", itemTitle)
	case TemplateApplication:
		return fmt.Sprintf("Apply %q to a new problem or real situation you have not tried before.", itemTitle)
	case TemplateSynthesis:
		return fmt.Sprintf("Explain how %q connects to at least two other topics you have studied.", itemTitle)
	default:
		return fmt.Sprintf("Write down everything you remember about %q from memory, then compare against your notes.", itemTitle)
	}
}

// TemplateSelector picks the review template for a record. Implementations
// must be deterministic for a given record so review synthesis is testable.
type TemplateSelector func(record *domain.ReviewRecord) ReviewTemplate

// RoundRobinSelector cycles through the four templates using the counter
// stored on the record. It is the default selector.
func RoundRobinSelector(record *domain.ReviewRecord) ReviewTemplate {
	idx := record.TemplateCounter % len(templateOrder)
	if idx < 0 {
		idx += len(templateOrder)
	}
	return templateOrder[idx]
}

// FixedSelector returns a selector that always picks the given template.
func FixedSelector(template ReviewTemplate) TemplateSelector {
	return func(*domain.ReviewRecord) ReviewTemplate {
		return template
	}
}
