package data

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DecodeItem parses one export line into an attribute value map.
// Lines are DynamoDB S3 exports in DYNAMODB_JSON format: {"Item": {...}}.
// The "Item" key is matched exactly.
func DecodeItem(line []byte) (map[string]types.AttributeValue, error) {
	if !utf8.Valid(line) {
		return nil, ErrInvalidUTF8
	}
	var l map[string]json.RawMessage
	if err := json.Unmarshal(line, &l); err != nil {
		return nil, fmt.Errorf("could not unmarshal json: %w", err)
	}
	rawItem, ok := lookup(l, "Item")
	if !ok {
		return nil, fmt.Errorf("%w: Item", ErrMissingField)
	}
	var item map[string]json.RawMessage
	if err := json.Unmarshal(rawItem, &item); err != nil {
		return nil, fmt.Errorf("could not unmarshal Item: %w", err)
	}
	return decodeAttributeMap(item)
}

func decodeAttributeMap(raw map[string]json.RawMessage) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(raw))
	for name, v := range raw {
		av, err := decodeAttributeValue(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}

// decodeAttributeValue converts {"<type>": <value>} into the SDK's
// attribute value member for that type.
func decodeAttributeValue(raw json.RawMessage) (types.AttributeValue, error) {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tagged); err != nil {
		return nil, err
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("expected one type descriptor, got %d", len(tagged))
	}
	for tag, v := range tagged {
		switch tag {
		case "S":
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberS{Value: s}, nil
		case "N":
			var n string
			if err := json.Unmarshal(v, &n); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberN{Value: n}, nil
		case "B":
			var b []byte
			if err := json.Unmarshal(v, &b); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberB{Value: b}, nil
		case "BOOL":
			var b bool
			if err := json.Unmarshal(v, &b); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberBOOL{Value: b}, nil
		case "NULL":
			var b bool
			if err := json.Unmarshal(v, &b); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberNULL{Value: b}, nil
		case "SS":
			var ss []string
			if err := json.Unmarshal(v, &ss); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberSS{Value: ss}, nil
		case "NS":
			var ns []string
			if err := json.Unmarshal(v, &ns); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberNS{Value: ns}, nil
		case "BS":
			var bs [][]byte
			if err := json.Unmarshal(v, &bs); err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberBS{Value: bs}, nil
		case "M":
			var m map[string]json.RawMessage
			if err := json.Unmarshal(v, &m); err != nil {
				return nil, err
			}
			avs, err := decodeAttributeMap(m)
			if err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberM{Value: avs}, nil
		case "L":
			var l []json.RawMessage
			if err := json.Unmarshal(v, &l); err != nil {
				return nil, err
			}
			avs := make([]types.AttributeValue, 0, len(l))
			for i, e := range l {
				av, err := decodeAttributeValue(e)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", i, err)
				}
				avs = append(avs, av)
			}
			return &types.AttributeValueMemberL{Value: avs}, nil
		default:
			return nil, fmt.Errorf("unsupported type descriptor %q", tag)
		}
	}
	return nil, nil
}
