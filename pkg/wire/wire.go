// Package wire is the external JSON boundary for an Edit: the on-wire
// shape SPEC_FULL.md §6.1 pins so this repo interoperates with the
// reference rich-text OT type. It is deliberately kept separate from
// pkg/richtext's pure algebra — marshalling/unmarshalling is I/O-adjacent
// boundary code, not part of the compose/transform/normalise core.
//
// Grounded on the teacher's transport/protocol.go, which uses the same
// encoding/json struct-tag style (omitempty fields, json.RawMessage for
// payloads whose shape varies by message type) for its wire messages.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/texere-ot/richtext/pkg/richtext"
)

// document is the top-level wire shape: { "ops": [ <op>, ... ] }.
type document struct {
	Ops []json.RawMessage `json:"ops"`
}

// outOp is the shape written for a single operation. Only one of
// Retain/Insert/Delete is ever populated for a given op; the others are
// omitted via omitempty so the four op shapes from SPEC_FULL.md §6.1 never
// collide on the wire.
type outOp struct {
	Retain     *int                   `json:"retain,omitempty"`
	Insert     interface{}            `json:"insert,omitempty"`
	Delete     *int                   `json:"delete,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// inOp mirrors outOp but keeps Insert as a RawMessage so Unmarshal can tell
// a string insert (InsertText) from a numeric one (InsertCode) before
// committing to either.
type inOp struct {
	Retain     *int                       `json:"retain"`
	Insert     json.RawMessage            `json:"insert"`
	Delete     *int                       `json:"delete"`
	Attributes map[string]json.RawMessage `json:"attributes"`
}

// Marshal renders e in the wire format: { "ops": [ ... ] }. "attributes" is
// omitted entirely on an op with no attributes — never emitted as {} or
// null.
func Marshal(e richtext.Edit) ([]byte, error) {
	ops := e.Ops()
	raw := make([]json.RawMessage, len(ops))
	for i, op := range ops {
		b, err := marshalOp(op)
		if err != nil {
			return nil, err
		}
		raw[i] = b
	}
	return json.Marshal(document{Ops: raw})
}

func marshalOp(op richtext.Op) (json.RawMessage, error) {
	out := outOp{Attributes: attrsToWire(op.Attrs())}
	switch op.Kind() {
	case richtext.OpRetain:
		n := op.Length()
		out.Retain = &n
	case richtext.OpInsertText:
		out.Insert = op.Text()
	case richtext.OpInsertCode:
		out.Insert = op.Code()
	case richtext.OpDelete:
		n := op.Length()
		out.Delete = &n
	default:
		return nil, fmt.Errorf("wire: marshal: unknown op kind %v", op.Kind())
	}
	return json.Marshal(out)
}

func attrsToWire(m richtext.Map) map[string]interface{} {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		switch v.Kind() {
		case richtext.KindString:
			out[k] = v.String()
		case richtext.KindNumber:
			out[k] = v.Number()
		case richtext.KindBoolean:
			out[k] = v.Boolean()
		default: // KindNull
			out[k] = nil
		}
	}
	return out
}

// Unmarshal parses the wire format back into an Edit. It reports a plain
// error on malformed JSON, an unrecognised op shape, or a non-object
// "attributes" value — these are boundary errors, not the algebra's
// ErrIncompatibleEdits, and never surface from pkg/richtext itself.
func Unmarshal(data []byte) (richtext.Edit, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return richtext.Edit{}, fmt.Errorf("wire: unmarshal: %w", err)
	}
	ops := make([]richtext.Op, 0, len(doc.Ops))
	for i, raw := range doc.Ops {
		op, err := unmarshalOp(raw)
		if err != nil {
			return richtext.Edit{}, fmt.Errorf("wire: op %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return richtext.NewEdit(ops)
}

func unmarshalOp(raw json.RawMessage) (richtext.Op, error) {
	var in inOp
	if err := json.Unmarshal(raw, &in); err != nil {
		return richtext.Op{}, err
	}
	attrs, err := attrsFromWire(in.Attributes)
	if err != nil {
		return richtext.Op{}, err
	}

	// Validate before calling the richtext constructors: those panic on a
	// malformed length (a programming-error signal for algebra-internal
	// misuse), but a malformed wire payload is this package's problem to
	// report as a plain error, not to let escape as a panic.
	switch {
	case in.Retain != nil:
		if *in.Retain < 1 {
			return richtext.Op{}, fmt.Errorf("wire: \"retain\" must be positive, got %d", *in.Retain)
		}
		return richtext.Retain(*in.Retain, attrs), nil
	case in.Delete != nil:
		if *in.Delete < 1 {
			return richtext.Op{}, fmt.Errorf("wire: \"delete\" must be positive, got %d", *in.Delete)
		}
		return richtext.Delete(*in.Delete), nil
	case len(in.Insert) > 0:
		var asString string
		if err := json.Unmarshal(in.Insert, &asString); err == nil {
			if asString == "" {
				return richtext.Op{}, fmt.Errorf("wire: \"insert\" string must be non-empty")
			}
			return richtext.InsertText(asString, attrs), nil
		}
		var asNumber float64
		if err := json.Unmarshal(in.Insert, &asNumber); err == nil {
			if asNumber < 0 {
				return richtext.Op{}, fmt.Errorf("wire: \"insert\" code must be non-negative, got %v", asNumber)
			}
			return richtext.InsertCode(int(asNumber), attrs), nil
		}
		return richtext.Op{}, fmt.Errorf("wire: \"insert\" must be a string or a number")
	default:
		return richtext.Op{}, fmt.Errorf("wire: op has none of retain/insert/delete")
	}
}

func attrsFromWire(raw map[string]json.RawMessage) (richtext.Map, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(richtext.Map, len(raw))
	for k, r := range raw {
		var v interface{}
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, err
		}
		switch vv := v.(type) {
		case string:
			out[k] = richtext.StringValue(vv)
		case float64:
			out[k] = richtext.NumberValue(vv)
		case bool:
			out[k] = richtext.BooleanValue(vv)
		case nil:
			out[k] = richtext.NullValue
		default:
			return nil, fmt.Errorf("wire: unsupported attribute value type %T for key %q", v, k)
		}
	}
	return out, nil
}
