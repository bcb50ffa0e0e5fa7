// Package jsref is a conformance oracle: a small JS reimplementation of
// the compose/transform algebra, run through an embedded goja runtime, so
// pkg/richtext's Go algebra can be cross-checked against an independent
// implementation of the same semantics on the same wire shape instead of
// only against itself.
//
// Grounded on e2e/transport_test.go's goja.Runtime usage (vm.RunString,
// vm.Set, goja.AssertFunction) for embedding and driving a JS runtime from
// Go test code.
package jsref

import (
	"fmt"

	"github.com/dop251/goja"
)

// algebraSource is the JS reference implementation of compose and
// transform over the package's wire shape: an array of
// {retain|insert|delete, attributes?} objects. It mirrors
// pkg/richtext/compose.go and pkg/richtext/transform.go structurally —
// same iterator-based lock-step approach, same pairwise case tables — but
// was written independently in JS so a Go-only bug in the algebra has a
// chance of not being repeated here.
const algebraSource = `
function opLength(op) {
  if (op.retain !== undefined) return op.retain;
  if (op.delete !== undefined) return op.delete;
  if (typeof op.insert === "string") return op.insert.length;
  if (typeof op.insert === "number") return 1;
  throw new Error("malformed op");
}
function isInsert(op) { return op.insert !== undefined; }
function isDelete(op) { return op.delete !== undefined; }

function makeIterator(ops) {
  return { ops: ops, index: 0, offset: 0 };
}
function iterHasNext(it) {
  return it.index < it.ops.length && (opLength(it.ops[it.index]) - it.offset) > 0;
}
function iterPeekType(it) {
  if (it.index >= it.ops.length) return "retain";
  var op = it.ops[it.index];
  if (isInsert(op)) return "insert";
  if (isDelete(op)) return "delete";
  return "retain";
}
function iterPeekLength(it) {
  if (it.index >= it.ops.length) return Infinity;
  return opLength(it.ops[it.index]) - it.offset;
}
function iterNext(it, n) {
  var op = it.ops[it.index];
  var rem = opLength(op) - it.offset;
  var take = Math.min(n, rem);
  if (take < 1) take = 1;
  var frag;
  if (op.retain !== undefined) {
    frag = { retain: take };
    if (op.attributes) frag.attributes = op.attributes;
  } else if (op.delete !== undefined) {
    frag = { delete: take };
  } else if (typeof op.insert === "string") {
    frag = { insert: op.insert.substr(it.offset, take) };
    if (op.attributes) frag.attributes = op.attributes;
  } else {
    frag = { insert: op.insert };
    if (op.attributes) frag.attributes = op.attributes;
    take = 1;
  }
  it.offset += take;
  if (it.offset >= opLength(op)) { it.index++; it.offset = 0; }
  return frag;
}
function iterNextAll(it) { return iterNext(it, iterPeekLength(it)); }

function composeAttrs(left, right, keepNull) {
  left = left || {}; right = right || {};
  var out = {};
  for (var k in left) out[k] = left[k];
  for (var k2 in right) out[k2] = right[k2];
  if (!keepNull) {
    for (var k3 in out) if (out[k3] === null) delete out[k3];
  }
  return Object.keys(out).length ? out : undefined;
}
function transformAttrs(left, right, priority) {
  left = left || {}; right = right || {};
  var out = {};
  if (priority) {
    for (var k in right) out[k] = right[k];
    for (var k2 in left) out[k2] = left[k2];
  } else {
    for (var k3 in left) out[k3] = left[k3];
    for (var k4 in right) out[k4] = right[k4];
  }
  return Object.keys(out).length ? out : undefined;
}

function composeSlice(left, right) {
  if (left.retain !== undefined && right.retain !== undefined) {
    var r = { retain: left.retain };
    var a = composeAttrs(left.attributes, right.attributes, true);
    if (a) r.attributes = a;
    return r;
  }
  if (left.retain !== undefined && right.delete !== undefined) {
    return { delete: right.delete };
  }
  if (isInsert(left) && right.retain !== undefined) {
    var r2 = { insert: left.insert };
    var a2 = composeAttrs(left.attributes, right.attributes, false);
    if (a2) r2.attributes = a2;
    return r2;
  }
  if (isInsert(left) && right.delete !== undefined) {
    return null;
  }
  throw new Error("composeSlice: unreachable pairing");
}

function compose(a, b) {
  var ai = makeIterator(a), bi = makeIterator(b);
  var out = [];
  while (iterHasNext(ai) || iterHasNext(bi)) {
    if (iterHasNext(bi) && iterPeekType(bi) === "insert") {
      out.push(iterNextAll(bi));
    } else if (iterHasNext(ai) && iterPeekType(ai) === "delete") {
      out.push(iterNextAll(ai));
    } else if (iterHasNext(ai) && iterHasNext(bi)) {
      var n = Math.min(iterPeekLength(ai), iterPeekLength(bi));
      var left = iterNext(ai, n), right = iterNext(bi, n);
      var frag = composeSlice(left, right);
      if (frag) out.push(frag);
    } else {
      throw new Error("compose: unreachable iterator state");
    }
  }
  return out;
}

function transformSlice(left, right, priority) {
  if (left.delete !== undefined) return null;
  if (right.delete !== undefined) return { delete: right.delete };
  if (left.retain !== undefined && right.retain !== undefined) {
    var r = { retain: left.retain };
    var a = transformAttrs(left.attributes, right.attributes, priority);
    if (a) r.attributes = a;
    return r;
  }
  throw new Error("transformSlice: unreachable pairing");
}

function transform(t, o, priority) {
  var ti = makeIterator(t), oi = makeIterator(o);
  var out = [];
  while (iterHasNext(ti) || iterHasNext(oi)) {
    if (iterHasNext(ti) && iterPeekType(ti) === "insert" && (priority || iterPeekType(oi) !== "insert")) {
      var frag = iterNextAll(ti);
      out.push({ retain: opLength(frag) });
    } else if (iterHasNext(oi) && iterPeekType(oi) === "insert") {
      out.push(iterNextAll(oi));
    } else if (iterHasNext(ti) && iterHasNext(oi)) {
      var n = Math.min(iterPeekLength(ti), iterPeekLength(oi));
      var left = iterNext(ti, n), right = iterNext(oi, n);
      var f = transformSlice(left, right, priority);
      if (f) out.push(f);
    } else {
      throw new Error("transform: unreachable iterator state");
    }
  }
  return out;
}
`

// Runtime wraps a goja.Runtime preloaded with the JS algebra, so a test
// can call Compose/Transform repeatedly without re-parsing the source
// each time.
type Runtime struct {
	vm *goja.Runtime
}

// New returns a Runtime with the reference algebra loaded.
func New() (*Runtime, error) {
	vm := goja.New()
	if _, err := vm.RunString(algebraSource); err != nil {
		return nil, fmt.Errorf("jsref: loading algebra source: %w", err)
	}
	return &Runtime{vm: vm}, nil
}

// Compose runs the JS reference's compose(a, b) over two op slices given
// as []interface{} (the shape produced by json.Unmarshal into
// interface{} on a wire document's "ops" array) and returns the composed
// op slice in the same shape.
func (r *Runtime) Compose(a, b []interface{}) ([]interface{}, error) {
	fn, ok := goja.AssertFunction(r.vm.Get("compose"))
	if !ok {
		return nil, fmt.Errorf("jsref: compose is not callable")
	}
	result, err := fn(goja.Undefined(), r.vm.ToValue(a), r.vm.ToValue(b))
	if err != nil {
		return nil, fmt.Errorf("jsref: compose: %w", err)
	}
	return exportOps(result)
}

// Transform runs the JS reference's transform(t, o, priority).
func (r *Runtime) Transform(t, o []interface{}, priority bool) ([]interface{}, error) {
	fn, ok := goja.AssertFunction(r.vm.Get("transform"))
	if !ok {
		return nil, fmt.Errorf("jsref: transform is not callable")
	}
	result, err := fn(goja.Undefined(), r.vm.ToValue(t), r.vm.ToValue(o), r.vm.ToValue(priority))
	if err != nil {
		return nil, fmt.Errorf("jsref: transform: %w", err)
	}
	return exportOps(result)
}

func exportOps(v goja.Value) ([]interface{}, error) {
	exported := v.Export()
	ops, ok := exported.([]interface{})
	if !ok {
		return nil, fmt.Errorf("jsref: expected an array result, got %T", exported)
	}
	return ops, nil
}
