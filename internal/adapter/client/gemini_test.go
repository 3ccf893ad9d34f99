package client

import (
	"testing"

	"timefilter-core/internal/domain/entity"

	"google.golang.org/genai"
)

func TestToContents(t *testing.T) {
	system, contents := toContents([]entity.PromptTurn{
		{Role: entity.RoleSystem, Content: "be terse"},
		{Role: entity.RoleUser, Content: "last week?"},
		{Role: entity.RoleAssistant, Content: `{"filter_type": "favor recent"}`},
		{Role: entity.RoleUser, Content: "and now?"},
	})

	if system == nil || system.Parts[0].Text != "be terse" {
		t.Fatalf("expected system instruction, got %+v", system)
	}
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	wantRoles := []string{string(genai.RoleUser), string(genai.RoleModel), string(genai.RoleUser)}
	for i, c := range contents {
		if c.Role != wantRoles[i] {
			t.Errorf("content %d: expected role %q, got %q", i, wantRoles[i], c.Role)
		}
	}
	if contents[2].Parts[0].Text != "and now?" {
		t.Errorf("unexpected final text %q", contents[2].Parts[0].Text)
	}
}

func TestToContentsWithoutSystem(t *testing.T) {
	system, contents := toContents([]entity.PromptTurn{{Role: entity.RoleUser, Content: "hi"}})
	if system != nil {
		t.Errorf("expected no system instruction, got %+v", system)
	}
	if len(contents) != 1 {
		t.Errorf("expected 1 content, got %d", len(contents))
	}
}
