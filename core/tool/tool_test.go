package tool

import (
	"context"
	"errors"
	"testing"
)

func TestNewRejectsNilFunction(t *testing.T) {
	_, err := New("broken", nil, nil)
	if !errors.Is(err, ErrInvalidTool) {
		t.Fatalf("expected ErrInvalidTool, got %v", err)
	}
}

func TestRunMergesDefaults(t *testing.T) {
	echo, err := New("echo", nil, func(_ context.Context, args map[string]any) (any, error) {
		return args["a"], nil
	}, WithDefaults(map[string]any{"a": 1}))
	if err != nil {
		t.Fatal(err)
	}

	// Default applies when the caller omits the key.
	got, err := echo.Run(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("default value: got %v, want 1", got)
	}

	// Caller-supplied arguments win on collision.
	got, err = echo.Run(context.Background(), map[string]any{"a": 2})
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("override value: got %v, want 2", got)
	}
}

func TestRunDoesNotMutateDefaults(t *testing.T) {
	defaults := map[string]any{"a": 1}
	echo, err := New("echo", nil, func(_ context.Context, args map[string]any) (any, error) {
		args["a"] = 99
		return nil, nil
	}, WithDefaults(defaults))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := echo.Run(context.Background(), map[string]any{"b": 2}); err != nil {
		t.Fatal(err)
	}
	if defaults["a"] != 1 {
		t.Errorf("defaults mutated: %v", defaults)
	}
}

func TestRunPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	failing, err := New("fail", nil, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, boom
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := failing.Run(context.Background(), nil); !errors.Is(err, boom) {
		t.Errorf("Run should propagate the function's error, got %v", err)
	}
}

func TestNewTyped(t *testing.T) {
	type addInput struct {
		A float64 `json:"a"`
		B float64 `json:"b"`
	}

	add, err := NewTyped("add", "Adds two numbers.",
		func(_ context.Context, in addInput) (float64, error) {
			return in.A + in.B, nil
		})
	if err != nil {
		t.Fatal(err)
	}

	if add.Declaration == nil || add.Declaration.Type != "object" {
		t.Fatalf("declaration not derived: %+v", add.Declaration)
	}
	if add.Declaration.Description != "Adds two numbers." {
		t.Errorf("description = %q", add.Declaration.Description)
	}
	if _, ok := add.Declaration.Properties["a"]; !ok {
		t.Error("declaration missing property a")
	}

	got, err := add.Run(context.Background(), map[string]any{"a": 2.0, "b": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if got != 5.0 {
		t.Errorf("add(2, 3) = %v, want 5", got)
	}
}

func TestNewTypedRejectsNil(t *testing.T) {
	_, err := NewTyped[struct{}, string]("broken", "", nil)
	if !errors.Is(err, ErrInvalidTool) {
		t.Fatalf("expected ErrInvalidTool, got %v", err)
	}
}

func TestResultSum(t *testing.T) {
	ok := Success("add", 5)
	if ok.Failed() || ok.Value != 5 {
		t.Errorf("unexpected success result: %+v", ok)
	}

	fail := Failure("add", "boom")
	if !fail.Failed() || fail.Err != "boom" || fail.Value != nil {
		t.Errorf("unexpected failure result: %+v", fail)
	}
}

func TestCallHelpers(t *testing.T) {
	call := Call{Name: "greet", Args: map[string]any{"name": "X", "lang": "en"}}

	v, ok := call.Arg("name")
	if !ok || v != "X" {
		t.Errorf("Arg(name) = %v, %v", v, ok)
	}
	if _, ok := call.Arg("missing"); ok {
		t.Error("Arg should report absence")
	}

	names := call.ArgNames()
	if len(names) != 2 || names[0] != "lang" || names[1] != "name" {
		t.Errorf("ArgNames = %v", names)
	}
}
