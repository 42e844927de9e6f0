package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// StringAs parses LLM-produced text into the target type T. Primitive targets
// (string, bool, integers, floats) are converted directly; everything else is
// JSON-unmarshaled. Because models routinely emit almost-JSON (single quotes,
// trailing commas, unquoted keys), a failed unmarshal is retried once after
// running the content through jsonrepair.
func StringAs[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(strings.TrimSpace(content))
		if err != nil {
			return result, fmt.Errorf("parse %q as bool: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("parse %q as int: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("parse %q as uint: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
		if err != nil {
			return result, fmt.Errorf("parse %q as float: %w", content, err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	default:
		if err := unmarshalRepaired(content, &result); err != nil {
			return result, err
		}
		return result, nil
	}
}

// Args decodes a provider tool-call argument payload into a generic argument
// map. An empty payload yields an empty, non-nil map so callers can merge
// defaults into it without a nil check.
func Args(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}

	args := map[string]any{}
	if err := unmarshalRepaired(raw, &args); err != nil {
		return nil, fmt.Errorf("decode tool arguments: %w", err)
	}
	return args, nil
}

// unmarshalRepaired unmarshals content into target, retrying once with a
// jsonrepair pass when the content is not valid JSON.
func unmarshalRepaired(content string, target any) error {
	err := json.Unmarshal([]byte(content), target)
	if err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return fmt.Errorf("unmarshal as %T: %w (repair also failed: %v)", target, err, repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), target); err != nil {
		return fmt.Errorf("unmarshal repaired JSON as %T: %w (original: %s)",
			target, err, content)
	}
	return nil
}
