package parse

import (
	"testing"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestStringAsPrimitives(t *testing.T) {
	if got, err := StringAs[int]("42"); err != nil || got != 42 {
		t.Errorf("int: got %v, %v", got, err)
	}
	if got, err := StringAs[bool]("true"); err != nil || !got {
		t.Errorf("bool: got %v, %v", got, err)
	}
	if got, err := StringAs[float64]("3.5"); err != nil || got != 3.5 {
		t.Errorf("float: got %v, %v", got, err)
	}
	if got, err := StringAs[string]("plain text"); err != nil || got != "plain text" {
		t.Errorf("string: got %q, %v", got, err)
	}
}

func TestStringAsStruct(t *testing.T) {
	got, err := StringAs[person](`{"name":"Ada","age":36}`)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Ada" || got.Age != 36 {
		t.Errorf("got %+v", got)
	}
}

func TestStringAsRepairsJSON(t *testing.T) {
	// Single quotes and unquoted keys are the classic LLM JSON mistakes.
	got, err := StringAs[person](`{name: 'Ada', age: 36}`)
	if err != nil {
		t.Fatalf("repair should recover malformed JSON: %v", err)
	}
	if got.Name != "Ada" || got.Age != 36 {
		t.Errorf("got %+v", got)
	}
}

func TestStringAsPrimitiveError(t *testing.T) {
	if _, err := StringAs[int]("not a number"); err == nil {
		t.Error("expected error for unparseable int")
	}
}

func TestArgs(t *testing.T) {
	args, err := Args(`{"a": 2, "b": 3}`)
	if err != nil {
		t.Fatal(err)
	}
	if args["a"] != float64(2) || args["b"] != float64(3) {
		t.Errorf("args = %v", args)
	}
}

func TestArgsEmpty(t *testing.T) {
	args, err := Args("")
	if err != nil {
		t.Fatal(err)
	}
	if args == nil || len(args) != 0 {
		t.Errorf("empty payload should yield empty non-nil map, got %v", args)
	}
}

func TestArgsRepaired(t *testing.T) {
	args, err := Args(`{city: 'Rome', days: 2,}`)
	if err != nil {
		t.Fatal(err)
	}
	if args["city"] != "Rome" {
		t.Errorf("args = %v", args)
	}
}
