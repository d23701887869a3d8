package interp_test

import (
	"strings"
	"testing"

	"github.com/emberlang/ember/lang/interp"
	"github.com/emberlang/ember/lang/parser"
	"github.com/emberlang/ember/lang/resolver"
	"github.com/emberlang/ember/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run scans, parses, resolves and evaluates src end to end, returning
// whatever `print` wrote and the error from evaluation (if any). This is
// the same pipeline internal/maincmd.RunSource drives, exercised directly
// so these tests don't depend on the CLI layer.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(toks)
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var out strings.Builder
	it := interp.New(&out)
	err = it.Run(stmts, locals)
	return out.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenationCoercion(t *testing.T) {
	out, err := run(t, `print "count: " + 4;`)
	require.NoError(t, err)
	assert.Equal(t, "count: 4\n", out)
}

func TestTruthiness(t *testing.T) {
	out, err := run(t, `
if (0) print "zero is truthy"; else print "zero is falsy";
if ("") print "empty string is truthy"; else print "empty string is falsy";
if (nil) print "nil is truthy"; else print "nil is falsy";
`)
	require.NoError(t, err)
	assert.Equal(t, "zero is truthy\nempty string is truthy\nnil is falsy\n", out)
}

func TestEqualityAcrossKinds(t *testing.T) {
	out, err := run(t, `print 1 == "1"; print nil == false; print 1 == 1.0;`)
	require.NoError(t, err)
	assert.Equal(t, "false\nfalse\ntrue\n", out)
}

func TestShortCircuitOr(t *testing.T) {
	out, err := run(t, `
fun boom() { print "called"; return true; }
print false or "fallback";
print true or boom();
`)
	require.NoError(t, err)
	assert.Equal(t, "fallback\ntrue\n", out)
}

func TestShortCircuitAnd(t *testing.T) {
	out, err := run(t, `
fun boom() { print "called"; return true; }
print true and "second";
print false and boom();
`)
	require.NoError(t, err)
	assert.Equal(t, "second\nfalse\n", out)
}

func TestClosureCapturesByReference(t *testing.T) {
	out, err := run(t, `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    print count;
  }
  return increment;
}
var counter = makeCounter();
counter();
counter();
counter();
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestLexicalOverDynamicScoping(t *testing.T) {
	// Classic closure test: `showA` must keep printing the global `a` it
	// closed over, even after a local `a` shadows it at the call site.
	out, err := run(t, `
var a = "global";
fun showA() { print a; }
fun run() {
  showA();
  var a = "block";
  showA();
}
run();
`)
	require.NoError(t, err)
	assert.Equal(t, "global\nglobal\n", out)
}

func TestReturnUnwindsNestedBlocks(t *testing.T) {
	out, err := run(t, `
fun find() {
  var i = 0;
  while (true) {
    if (i == 3) {
      return i;
    }
    i = i + 1;
  }
}
print find();
`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestClassInstanceFieldsAndMethods(t *testing.T) {
	out, err := run(t, `
class Counter {
  value() { return this.n; }
}
var c = Counter();
c.n = 41;
c.n = c.n + 1;
print c.value();
`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestBoundMethodCapturesReceiver(t *testing.T) {
	out, err := run(t, `
class Greeter {
  greet() { print this.name; }
}
var g = Greeter();
g.name = "Ember";
var bound = g.greet;
bound();
`)
	require.NoError(t, err)
	assert.Equal(t, "Ember\n", out)
}

func TestInstanceIdentityEquality(t *testing.T) {
	out, err := run(t, `
class Box {}
var a = Box();
var b = Box();
print a == a;
print a == b;
`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
fun add(a, b) { return a + b; }
add(1);
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestDivideByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't divide by zero.")
}

func TestUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, err := run(t, `
class Box {}
var b = Box();
print b.missing;
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined property 'missing'.")
}

func TestAssertBuiltin(t *testing.T) {
	_, err := run(t, `assert(1 == 2);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Assertion failed")
}

func TestClockBuiltinReturnsNumber(t *testing.T) {
	out, err := run(t, `print clock() > 0;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
