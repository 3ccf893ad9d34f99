package usecase

import "timefilter-core/internal/domain/entity"

// The few-shot examples below keep the model's answers in a parseable shape.
// Changing a single byte here changes what the model emits.
const filterSystemPrompt = "You are a tool to identify time filters to apply to a user query for " +
	"a downstream search application. The downstream application is able to " +
	"use a recency bias or apply a hard cutoff to remove all documents " +
	"before the cutoff. Identify the correct filters to apply for the user " +
	"query.\n\n" +
	"Always answer with ONLY a json which contains the keys " +
	`"filter_type", "filter_value", "value_multiple" and "date".` + "\n\n" +
	`The valid values for "filter_type" are "hard cutoff", ` +
	`"favors recent", or "not time sensitive".` + "\n" +
	`The valid values for "filter_value" are "day", "week", "month", ` +
	`"quarter", "half", or "year".` + "\n" +
	`The valid values for "value_multiple" is any number.` + "\n" +
	`The valid values for "date" is a date in format MM/DD/YYYY.`

var filterExamples = []entity.PromptTurn{
	{Role: entity.RoleUser, Content: "What documents in Confluence were written in the last two quarters"},
	{Role: entity.RoleAssistant, Content: `{"filter_type": "hard cutoff", "filter_value": "quarter", "value_multiple": 2}`},
	{Role: entity.RoleUser, Content: "What's the latest on project Corgies?"},
	{Role: entity.RoleAssistant, Content: `{"filter_type": "favor recent"}`},
	{Role: entity.RoleUser, Content: "Which customer asked about security features in February of 2022?"},
	{Role: entity.RoleAssistant, Content: `{"filter_type": "hard cutoff", "date": "02/01/2022"}`},
}

// FilterPrompt returns the full conversation sent to the filter model for query.
func FilterPrompt(query string) []entity.PromptTurn {
	turns := make([]entity.PromptTurn, 0, len(filterExamples)+2)
	turns = append(turns, entity.PromptTurn{Role: entity.RoleSystem, Content: filterSystemPrompt})
	turns = append(turns, filterExamples...)
	return append(turns, entity.PromptTurn{Role: entity.RoleUser, Content: query})
}
