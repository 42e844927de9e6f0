package memory

import (
	"testing"
	"time"

	"github.com/synapticlabs/synaptic/core/tool"
)

func TestConstructors(t *testing.T) {
	before := time.Now().UTC()

	user := NewUserMem("hi")
	if user.Role != RoleUser {
		t.Errorf("role = %q, want user", user.Role)
	}
	if user.Created.Before(before) {
		t.Error("created timestamp not stamped")
	}
	if user.Created.Location() != time.UTC {
		t.Error("created timestamp should be UTC")
	}

	system := NewSystemMem("rules")
	if system.Role != RoleSystem {
		t.Errorf("role = %q, want system", system.Role)
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleUser, RoleAssistant, RoleSystem} {
		if !role.Valid() {
			t.Errorf("%q should be valid", role)
		}
	}
	if Role("moderator").Valid() {
		t.Error("unknown role should be invalid")
	}
}

func TestNewResponseMem(t *testing.T) {
	calls := []tool.Call{{Name: "greet", Args: map[string]any{"name": "X"}}}
	response := NewResponseMem("calling greet", calls)

	if response.Role != RoleAssistant {
		t.Errorf("role = %q, want assistant", response.Role)
	}
	if len(response.ToolCalls) != 1 || response.ToolCalls[0].Name != "greet" {
		t.Errorf("tool calls = %v", response.ToolCalls)
	}
	if response.ToolResults == nil || len(response.ToolResults) != 0 {
		t.Errorf("tool results should start empty and non-nil, got %v", response.ToolResults)
	}
}
